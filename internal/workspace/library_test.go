package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veritext/veritext/internal/model"
)

func testCacheConfig() model.CacheConfig {
	return model.CacheConfig{PreviewTTL: time.Minute, CleanupInterval: time.Minute}
}

func summaries(ids ...int) []model.DocumentSummary {
	out := make([]model.DocumentSummary, len(ids))
	for i, id := range ids {
		out[i] = model.DocumentSummary{DocumentID: id, Title: "doc"}
	}
	return out
}

func TestLibrary_RefreshPreservesSelection(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(1, 2, 3)

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	l.Select(SelectID(2))

	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if sel := l.Selection(); sel.Kind != SelectDocument || sel.DocumentID != 2 {
		t.Errorf("selection = %+v, want document 2 preserved", sel)
	}
}

func TestLibrary_RefreshFallsBackToFirstWhenSelectionVanished(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(5, 6)

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	l.Select(SelectID(99))

	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if sel := l.Selection(); sel.DocumentID != 5 {
		t.Errorf("selection = %+v, want fallback to first document", sel)
	}

	backend.docs = nil
	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if sel := l.Selection(); sel.Kind != SelectNone {
		t.Errorf("selection = %+v, want none when the list is empty", sel)
	}
}

func TestLibrary_RefreshExplicitTargetWins(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(1, 2)

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	l.Select(SelectID(1))

	target := SelectID(2)
	if err := l.Refresh(context.Background(), 1, &target); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if sel := l.Selection(); sel.DocumentID != 2 {
		t.Errorf("selection = %+v, want explicit target", sel)
	}
}

func TestLibrary_RefreshFailureLeavesStateUntouched(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(1)

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	l.SetPreview(1, "cached")

	backend.listErr = errors.New("backend down")
	if err := l.Refresh(context.Background(), 1, nil); err == nil {
		t.Fatal("expected refresh error")
	}

	if got := l.Documents(); len(got) != 1 || got[0].DocumentID != 1 {
		t.Errorf("documents = %+v, want prior list preserved", got)
	}
	if _, ok := l.Preview(1); !ok {
		t.Error("preview cache should survive a failed refresh")
	}
}

func TestLibrary_RefreshPrunesVanishedPreviews(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(1, 2)

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	l.SetPreview(1, "one")
	l.SetPreview(2, "two")

	backend.docs = summaries(2)
	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if _, ok := l.Preview(1); ok {
		t.Error("preview for vanished document should be pruned")
	}
	if _, ok := l.Preview(2); !ok {
		t.Error("preview for surviving document should be kept")
	}
}

func TestLibrary_BackfillFetchesMissingPreviews(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(1, 2, 3)
	backend.details[1] = &model.DocumentDetail{DocumentID: 1, Content: "alpha"}
	backend.details[3] = &model.DocumentDetail{DocumentID: 3, Content: "gamma"}
	backend.getErr[2] = errors.New("flaky")

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	l.BackfillPreviews(context.Background())

	if got, ok := l.Preview(1); !ok || got != "alpha" {
		t.Errorf("preview 1 = (%q, %v), want alpha", got, ok)
	}
	if got, ok := l.Preview(3); !ok || got != "gamma" {
		t.Errorf("preview 3 = (%q, %v), want gamma", got, ok)
	}
	// One failed fetch must not block the others.
	if _, ok := l.Preview(2); ok {
		t.Error("failed fetch should leave no cache entry")
	}
}

func TestLibrary_BackfillSkipsCachedEntries(t *testing.T) {
	backend := newFakeBackend()
	backend.docs = summaries(1)
	backend.details[1] = &model.DocumentDetail{DocumentID: 1, Content: "fresh"}

	l := NewLibrary(backend, testCacheConfig(), 2, testLogger())
	if err := l.Refresh(context.Background(), 1, nil); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	l.SetPreview(1, "already here")

	l.BackfillPreviews(context.Background())

	if got, _ := l.Preview(1); got != "already here" {
		t.Errorf("preview = %q, cached entries must not be refetched", got)
	}
	for _, call := range backend.callLog() {
		if call == "get:1" {
			t.Error("backfill fetched a document whose preview was cached")
		}
	}
}
