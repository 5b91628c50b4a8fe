package workspace

import (
	"context"
	"strconv"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/veritext/veritext/internal/model"
)

// SelectionKind discriminates the workspace selection.
type SelectionKind int

const (
	SelectNone     SelectionKind = iota // No document open
	SelectNew                           // Unsaved draft
	SelectDocument                      // A persisted document
)

// Selection identifies what the workspace currently has open.
type Selection struct {
	Kind       SelectionKind
	DocumentID int // Valid only for SelectDocument
}

// SelectID returns a selection pointing at a persisted document.
func SelectID(id int) Selection {
	return Selection{Kind: SelectDocument, DocumentID: id}
}

// Library keeps the user's document summaries, the active selection and a
// content preview cache in sync with backend state. Refresh and the
// background preview backfill both mutate the cache as replace-by-id writes,
// so last write wins under the mutex.
type Library struct {
	mu       sync.Mutex
	backend  Backend
	previews *gocache.Cache
	workers  int
	log      zerolog.Logger

	docs      []model.DocumentSummary
	selection Selection

	// generation invalidates in-flight preview fetches: results arriving
	// after a newer Refresh are discarded.
	generation uint64
}

// NewLibrary creates an empty library.
func NewLibrary(backend Backend, cfg model.CacheConfig, previewWorkers int, log zerolog.Logger) *Library {
	if previewWorkers <= 0 {
		previewWorkers = 4
	}
	return &Library{
		backend:  backend,
		previews: gocache.New(cfg.PreviewTTL, cfg.CleanupInterval),
		workers:  previewWorkers,
		log:      log,
	}
}

// Refresh replaces the summary list for userID, prunes previews of vanished
// documents and re-resolves the selection: an explicit target wins;
// otherwise the previous selection is kept when still present, falling back
// to the first document, else none. On fetch failure all prior state is left
// untouched.
func (l *Library) Refresh(ctx context.Context, userID int, target *Selection) error {
	docs, err := l.backend.ListDocuments(ctx, userID)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.docs = docs
	l.generation++

	valid := make(map[int]struct{}, len(docs))
	for _, doc := range docs {
		valid[doc.DocumentID] = struct{}{}
	}
	for key := range l.previews.Items() {
		if id, err := strconv.Atoi(key); err != nil {
			l.previews.Delete(key)
		} else if _, ok := valid[id]; !ok {
			l.previews.Delete(key)
		}
	}

	if target != nil {
		l.selection = *target
		return nil
	}

	switch l.selection.Kind {
	case SelectDocument:
		if _, ok := valid[l.selection.DocumentID]; ok {
			return nil
		}
		if len(docs) > 0 {
			l.selection = SelectID(docs[0].DocumentID)
		} else {
			l.selection = Selection{Kind: SelectNone}
		}
	default:
		// SelectNone and SelectNew survive a refresh unchanged.
	}
	return nil
}

// BackfillPreviews fetches full content for every summary without a cached
// preview. Best-effort: a failed fetch is logged and skipped, and results
// from a superseded refresh are dropped on arrival.
func (l *Library) BackfillPreviews(ctx context.Context) {
	l.mu.Lock()
	gen := l.generation
	var missing []int
	for _, doc := range l.docs {
		if _, ok := l.previews.Get(strconv.Itoa(doc.DocumentID)); !ok {
			missing = append(missing, doc.DocumentID)
		}
	}
	l.mu.Unlock()

	if len(missing) == 0 {
		return
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, l.workers)

	for _, id := range missing {
		wg.Add(1)
		go func(documentID int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			doc, err := l.backend.GetDocument(ctx, documentID)
			if err != nil {
				l.log.Debug().Err(err).Int("document_id", documentID).Msg("preview fetch failed")
				return
			}

			l.mu.Lock()
			if l.generation == gen {
				l.previews.SetDefault(strconv.Itoa(documentID), doc.Content)
			}
			l.mu.Unlock()
		}(id)
	}

	wg.Wait()
}

// Preview returns the cached content for a document, if present.
func (l *Library) Preview(documentID int) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.previews.Get(strconv.Itoa(documentID)); ok {
		return v.(string), true
	}
	return "", false
}

// SetPreview replaces one document's cached content. Called on document open
// and save, where fresher content is already in hand.
func (l *Library) SetPreview(documentID int, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.previews.SetDefault(strconv.Itoa(documentID), content)
}

// DropPreview removes one document's cached content.
func (l *Library) DropPreview(documentID int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.previews.Delete(strconv.Itoa(documentID))
}

// Documents returns a copy of the current summary list.
func (l *Library) Documents() []model.DocumentSummary {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.DocumentSummary, len(l.docs))
	copy(out, l.docs)
	return out
}

// Selection returns the active selection.
func (l *Library) Selection() Selection {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selection
}

// Select replaces the active selection.
func (l *Library) Select(sel Selection) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selection = sel
}

// Generation returns the current refresh generation; callers attach it to
// in-flight requests and drop results whose generation no longer matches.
func (l *Library) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}
