package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/veritext/veritext/internal/model"
)

// fakeBackend is an in-memory Backend recording call order.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	docs        []model.DocumentSummary
	details     map[int]*model.DocumentDetail
	sentences   map[int][]model.Sentence
	corrections map[int][]model.Correction

	listErr        error
	getErr         map[int]error
	updateErr      error
	analyzeErr     error
	sentencesErr   error
	correctionsErr map[int]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		details:        make(map[int]*model.DocumentDetail),
		sentences:      make(map[int][]model.Sentence),
		corrections:    make(map[int][]model.Correction),
		getErr:         make(map[int]error),
		correctionsErr: make(map[int]error),
	}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeBackend) ListDocuments(ctx context.Context, userID int) ([]model.DocumentSummary, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.docs, nil
}

func (f *fakeBackend) GetDocument(ctx context.Context, id int) (*model.DocumentDetail, error) {
	f.record(fmt.Sprintf("get:%d", id))
	if err := f.getErr[id]; err != nil {
		return nil, err
	}
	doc, ok := f.details[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeBackend) CreateDocument(ctx context.Context, userID int, payload model.DocumentPayload) (*model.DocumentDetail, error) {
	f.record("create")
	id := len(f.details) + 1
	doc := &model.DocumentDetail{DocumentID: id, Title: payload.Title, Content: payload.Content, UserID: userID}
	f.details[id] = doc
	copied := *doc
	return &copied, nil
}

func (f *fakeBackend) UpdateDocument(ctx context.Context, id int, payload model.DocumentPayload) (*model.DocumentDetail, error) {
	f.record(fmt.Sprintf("update:%d", id))
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	doc := &model.DocumentDetail{DocumentID: id, Title: payload.Title, Content: payload.Content}
	f.details[id] = doc
	copied := *doc
	return &copied, nil
}

func (f *fakeBackend) DeleteDocument(ctx context.Context, id int) error {
	f.record(fmt.Sprintf("delete:%d", id))
	delete(f.details, id)
	return nil
}

func (f *fakeBackend) Analyze(ctx context.Context, id int) error {
	f.record(fmt.Sprintf("analyze:%d", id))
	return f.analyzeErr
}

func (f *fakeBackend) ListSentences(ctx context.Context, id int) ([]model.Sentence, error) {
	f.record(fmt.Sprintf("sentences:%d", id))
	if f.sentencesErr != nil {
		return nil, f.sentencesErr
	}
	return f.sentences[id], nil
}

func (f *fakeBackend) ListCorrections(ctx context.Context, sentenceID int) ([]model.Correction, error) {
	f.record(fmt.Sprintf("corrections:%d", sentenceID))
	if err := f.correctionsErr[sentenceID]; err != nil {
		return nil, err
	}
	return f.corrections[sentenceID], nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
