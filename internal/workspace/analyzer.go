package workspace

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/veritext/veritext/internal/model"
)

// Precondition failures for an analysis run.
var (
	ErrUnsavedDocument = errors.New("save the document before running analysis")
	ErrEmptyTitle      = errors.New("title is required before running analysis")
	ErrEmptyContent    = errors.New("nothing to analyze: document content is empty")
)

// RunResult is one consistent analysis collection, produced atomically. The
// caller installs it via Session.ApplyRun.
type RunResult struct {
	Analyses         []model.SentenceAnalysis
	ActiveSentenceID int // First sentence carrying corrections, 0 if none
	CompletedAt      time.Time
	Saved            *model.DocumentDetail // Non-nil when save-before-analyze persisted edits
}

// Analyzer runs one full analysis cycle against the backend.
type Analyzer struct {
	backend Backend
	workers int
	log     zerolog.Logger
}

// NewAnalyzer creates an analyzer; workers bounds the concurrent per-sentence
// correction fetches.
func NewAnalyzer(backend Backend, workers int, log zerolog.Logger) *Analyzer {
	if workers <= 0 {
		workers = 8
	}
	return &Analyzer{backend: backend, workers: workers, log: log}
}

// Run executes save → trigger → fetch sentences → fetch corrections and
// returns the merged collection. A failure at save, trigger or the sentence
// list aborts the whole run with no partial result; a failure fetching one
// sentence's corrections degrades to zero corrections for that sentence.
func (a *Analyzer) Run(ctx context.Context, working *WorkingCopy) (*RunResult, error) {
	if working.DocumentID == 0 {
		return nil, ErrUnsavedDocument
	}
	title := strings.TrimSpace(working.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(working.Content) == "" {
		return nil, ErrEmptyContent
	}

	result := &RunResult{}

	// 1. Persist pending edits before triggering; the run must analyze what
	// the user sees.
	if working.Dirty() {
		saved, err := a.backend.UpdateDocument(ctx, working.DocumentID, model.DocumentPayload{
			Title:   title,
			Content: working.Content,
		})
		if err != nil {
			return nil, err
		}
		working.Rebase(saved)
		result.Saved = saved
	}

	// 2. Trigger the backend run.
	if err := a.backend.Analyze(ctx, working.DocumentID); err != nil {
		return nil, err
	}

	// 3. Pull the sentence list.
	sentences, err := a.backend.ListSentences(ctx, working.DocumentID)
	if err != nil {
		return nil, err
	}

	// 4. Pull corrections per sentence, concurrently and fail-soft.
	corrections := a.fetchCorrections(ctx, sentences)

	// 5. Merge into one collection; this value is the atomic swap point.
	analyses := make([]model.SentenceAnalysis, len(sentences))
	for i, sentence := range sentences {
		analyses[i] = model.SentenceAnalysis{
			Sentence:    sentence,
			Corrections: corrections[i],
		}
	}
	result.Analyses = analyses
	result.CompletedAt = time.Now().UTC()

	for _, analysis := range analyses {
		if len(analysis.Corrections) > 0 {
			result.ActiveSentenceID = analysis.SentenceID
			break
		}
	}

	return result, nil
}

// fetchCorrections fans out one fetch per sentence under a worker bound.
// Results land by index; a failed fetch leaves that slot empty.
func (a *Analyzer) fetchCorrections(ctx context.Context, sentences []model.Sentence) [][]model.Correction {
	out := make([][]model.Correction, len(sentences))
	if len(sentences) == 0 {
		return out
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, a.workers)

	for i, sentence := range sentences {
		wg.Add(1)
		go func(idx, sentenceID int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			corrections, err := a.backend.ListCorrections(ctx, sentenceID)
			if err != nil {
				a.log.Debug().Err(err).Int("sentence_id", sentenceID).Msg("correction fetch failed")
				return
			}
			out[idx] = corrections
		}(i, sentence.SentenceID)
	}

	wg.Wait()
	return out
}
