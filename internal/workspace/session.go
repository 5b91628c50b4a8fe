package workspace

import (
	"time"

	"github.com/veritext/veritext/internal/model"
)

// WorkingCopy is the locally edited title/content pair for the open
// document, diverging from the persisted baseline until a save.
type WorkingCopy struct {
	DocumentID int // 0 for an unsaved draft
	Title      string
	Content    string

	baseTitle   string
	baseContent string
}

// NewWorkingCopy initializes a working copy from a persisted document, or an
// empty draft when detail is nil.
func NewWorkingCopy(detail *model.DocumentDetail) *WorkingCopy {
	if detail == nil {
		return &WorkingCopy{}
	}
	return &WorkingCopy{
		DocumentID:  detail.DocumentID,
		Title:       detail.Title,
		Content:     detail.Content,
		baseTitle:   detail.Title,
		baseContent: detail.Content,
	}
}

// Dirty reports whether the working copy differs from the persisted
// baseline. Drafts are dirty as soon as they carry any text.
func (w *WorkingCopy) Dirty() bool {
	if w.DocumentID == 0 {
		return w.Title != "" || w.Content != ""
	}
	return w.Title != w.baseTitle || w.Content != w.baseContent
}

// Rebase adopts a freshly persisted detail as the new baseline.
func (w *WorkingCopy) Rebase(detail *model.DocumentDetail) {
	w.DocumentID = detail.DocumentID
	w.Title = detail.Title
	w.Content = detail.Content
	w.baseTitle = detail.Title
	w.baseContent = detail.Content
}

// Revert discards local edits back to the baseline.
func (w *WorkingCopy) Revert() {
	w.Title = w.baseTitle
	w.Content = w.baseContent
}

// Session is the editing state for one open document: the working copy, the
// analysis collection from the most recent run, and the staleness tracker.
// It is owned by a single goroutine; concurrency lives in the orchestrators.
type Session struct {
	Working          *WorkingCopy
	Analyses         []model.SentenceAnalysis
	ActiveSentenceID int // 0 when no sentence is active
	LastRunAt        time.Time
	Tracker          *Tracker
}

// NewSession opens a document (or a draft when detail is nil) with no
// analysis results and the tracker in its initial state.
func NewSession(detail *model.DocumentDetail) *Session {
	return &Session{
		Working: NewWorkingCopy(detail),
		Tracker: NewTracker(),
	}
}

// SetTitle applies a title edit, feeding the staleness tracker.
func (s *Session) SetTitle(title string) {
	if title == s.Working.Title {
		return
	}
	s.Working.Title = title
	s.Tracker.NoteEdit(len(s.Analyses) > 0)
}

// SetContent applies a content edit, feeding the staleness tracker.
func (s *Session) SetContent(content string) {
	if content == s.Working.Content {
		return
	}
	s.Working.Content = content
	s.Tracker.NoteEdit(len(s.Analyses) > 0)
}

// ApplyRun installs a completed analysis run: the collection is swapped
// wholesale, the tracker goes Fresh, and the active sentence moves to the
// run's pick. No observer ever sees a mix of old and new sentences.
func (s *Session) ApplyRun(res *RunResult) {
	s.Analyses = res.Analyses
	s.ActiveSentenceID = res.ActiveSentenceID
	s.LastRunAt = res.CompletedAt
	s.Tracker.MarkRun()
}

// SelectSentence marks one sentence as active and returns its analysis.
func (s *Session) SelectSentence(sentenceID int) (model.SentenceAnalysis, bool) {
	for _, a := range s.Analyses {
		if a.SentenceID == sentenceID {
			s.ActiveSentenceID = sentenceID
			return a, true
		}
	}
	return model.SentenceAnalysis{}, false
}
