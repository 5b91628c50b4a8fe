package workspace

import (
	"testing"
	"time"

	"github.com/veritext/veritext/internal/model"
)

func TestTracker_InitialStateIsStale(t *testing.T) {
	tr := NewTracker()
	if !tr.IsStale() {
		t.Error("new tracker should start Stale (no run yet)")
	}
}

func TestTracker_EditWhileFreshGoesStale(t *testing.T) {
	tr := NewTracker()
	tr.MarkRun()
	if tr.IsStale() {
		t.Fatal("completed run should leave tracker Fresh")
	}

	tr.NoteEdit(true)
	if !tr.IsStale() {
		t.Error("edit with analyses present should move Fresh to Stale")
	}

	tr.MarkRun()
	if tr.IsStale() {
		t.Error("a subsequent run should restore Fresh")
	}
}

func TestTracker_EditWithoutAnalysesIsIgnored(t *testing.T) {
	tr := NewTracker()
	tr.MarkRun()

	tr.NoteEdit(false)
	if tr.IsStale() {
		t.Error("edit with no analyses present should not change state")
	}
}

func TestSession_EditTransitions(t *testing.T) {
	s := NewSession(&model.DocumentDetail{DocumentID: 1, Title: "t", Content: "body"})

	// No run yet: initial Stale, no analyses.
	if !s.Tracker.IsStale() || len(s.Analyses) != 0 {
		t.Fatal("new session should be Stale with no analyses")
	}

	s.ApplyRun(&RunResult{
		Analyses:    []model.SentenceAnalysis{{Sentence: model.Sentence{SentenceID: 1}}},
		CompletedAt: time.Now(),
	})
	if s.Tracker.IsStale() {
		t.Fatal("ApplyRun should mark Fresh")
	}

	s.SetContent("body edited")
	if !s.Tracker.IsStale() {
		t.Error("content edit after a run should mark Stale")
	}

	// Identical content is not an edit.
	s.ApplyRun(&RunResult{Analyses: s.Analyses, CompletedAt: time.Now()})
	s.SetContent("body edited")
	if s.Tracker.IsStale() {
		t.Error("no-op content assignment should not mark Stale")
	}
}

func TestSession_SelectSentence(t *testing.T) {
	s := NewSession(nil)
	s.Analyses = []model.SentenceAnalysis{
		{Sentence: model.Sentence{SentenceID: 4}},
		{Sentence: model.Sentence{SentenceID: 9}},
	}

	got, ok := s.SelectSentence(9)
	if !ok || got.SentenceID != 9 || s.ActiveSentenceID != 9 {
		t.Errorf("SelectSentence(9) = (%+v, %v), active=%d", got, ok, s.ActiveSentenceID)
	}

	if _, ok := s.SelectSentence(99); ok {
		t.Error("unknown sentence id should not select")
	}
	if s.ActiveSentenceID != 9 {
		t.Error("failed selection should not move the active sentence")
	}
}

func TestWorkingCopy_Dirty(t *testing.T) {
	draft := NewWorkingCopy(nil)
	if draft.Dirty() {
		t.Error("empty draft should be clean")
	}
	draft.Content = "x"
	if !draft.Dirty() {
		t.Error("draft with text should be dirty")
	}

	wc := NewWorkingCopy(&model.DocumentDetail{DocumentID: 2, Title: "t", Content: "c"})
	if wc.Dirty() {
		t.Error("freshly opened document should be clean")
	}
	wc.Title = "t2"
	if !wc.Dirty() {
		t.Error("title edit should make working copy dirty")
	}
	wc.Revert()
	if wc.Dirty() {
		t.Error("revert should restore the baseline")
	}
}
