package highlight

import (
	"reflect"
	"strings"
	"testing"

	"github.com/veritext/veritext/internal/model"
)

func analysis(id, start, end int, flags bool, corrections int) model.SentenceAnalysis {
	a := model.SentenceAnalysis{
		Sentence: model.Sentence{
			SentenceID: id,
			StartIndex: start,
			EndIndex:   end,
			Flags:      flags,
		},
	}
	for i := 0; i < corrections; i++ {
		a.Corrections = append(a.Corrections, model.Correction{CorrectionID: i + 1})
	}
	return a
}

func joined(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestBuild_RoundTrip(t *testing.T) {
	content := "The moon landing happened in 1969. Cheese is made from milk. Water boils at 90C."
	analyses := []model.SentenceAnalysis{
		analysis(3, 62, 81, true, 1),
		analysis(1, 0, 35, true, 0),
		analysis(2, 36, 61, false, 2),
	}

	spans := Build(content, analyses, 0)

	if got := joined(spans); got != content {
		t.Errorf("concatenated spans = %q, want original content", got)
	}

	highlights := 0
	for _, s := range spans {
		if s.Kind == SpanHighlight {
			highlights++
		}
	}
	if highlights != 3 {
		t.Errorf("expected 3 highlight spans, got %d", highlights)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	content := "Alpha beta gamma delta."
	analyses := []model.SentenceAnalysis{
		analysis(1, 0, 5, true, 0),
		analysis(2, 6, 10, true, 1),
	}

	first := Build(content, analyses, 2)
	second := Build(content, analyses, 2)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Build produced different spans:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuild_StableTieBreak(t *testing.T) {
	content := "Duplicated start offsets."
	analyses := []model.SentenceAnalysis{
		analysis(7, 5, 9, true, 0),
		analysis(3, 5, 15, true, 0),
	}

	spans := Build(content, analyses, 0)

	var order []int
	for _, s := range spans {
		if s.Kind == SpanHighlight {
			order = append(order, s.SentenceID)
		}
	}
	want := []int{7, 3}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("highlight order = %v, want insertion order %v", order, want)
	}
}

func TestBuild_ClampsStaleOffsets(t *testing.T) {
	content := "Hello world" // len 11
	analyses := []model.SentenceAnalysis{
		analysis(1, 5, 50, true, 0),
	}

	spans := Build(content, analyses, 0)

	if got := joined(spans); got != content {
		t.Fatalf("concatenated spans = %q, want %q", got, content)
	}
	for _, s := range spans {
		if s.Kind == SpanHighlight && s.Text != " world" {
			t.Errorf("highlight text = %q, want %q", s.Text, " world")
		}
	}
}

func TestBuild_NegativeAndInvertedOffsets(t *testing.T) {
	content := "abcdef"
	analyses := []model.SentenceAnalysis{
		analysis(1, -4, 2, true, 0),
		analysis(2, 5, 3, true, 0), // end before start clamps to zero length
	}

	spans := Build(content, analyses, 0)

	if got := joined(spans); got != content {
		t.Errorf("concatenated spans = %q, want %q", got, content)
	}
	for _, s := range spans {
		if s.Kind == SpanHighlight && s.SentenceID == 2 && s.Text != "" {
			t.Errorf("inverted range should produce empty highlight, got %q", s.Text)
		}
	}
}

func TestBuild_OverlappingRangesNeverMoveCursorBack(t *testing.T) {
	content := "0123456789"
	analyses := []model.SentenceAnalysis{
		analysis(1, 2, 8, true, 0),
		analysis(2, 4, 6, true, 0), // entirely inside sentence 1's range
	}

	spans := Build(content, analyses, 0)

	for _, s := range spans {
		if s.Kind == SpanPlain && s.Text == "" {
			t.Error("emitted empty plain span for overlapping input")
		}
	}
	// Head and tail plain text must still appear exactly once.
	all := joined(spans)
	if !strings.HasPrefix(all, "01") || !strings.HasSuffix(all, "89") {
		t.Errorf("overlap handling corrupted surrounding text: %q", all)
	}
}

func TestBuild_EmptyContent(t *testing.T) {
	spans := Build("", []model.SentenceAnalysis{analysis(1, 0, 4, true, 2)}, 0)

	if len(spans) != 1 || spans[0].Kind != SpanPlaceholder {
		t.Errorf("empty content should yield a single placeholder span, got %+v", spans)
	}
}

func TestBuild_WhitespaceOnlyContent(t *testing.T) {
	spans := Build("   \n\t", nil, 0)

	if len(spans) != 1 || spans[0].Kind != SpanPlaceholder {
		t.Errorf("whitespace-only content should yield a placeholder span, got %+v", spans)
	}
}

func TestBuild_UnflaggedSentencesAreNotInteractive(t *testing.T) {
	content := "Nothing to see here."
	analyses := []model.SentenceAnalysis{
		analysis(1, 0, 7, false, 0),
	}

	spans := Build(content, analyses, 0)

	if len(spans) != 1 || spans[0].Kind != SpanPlain || spans[0].Text != content {
		t.Errorf("unflagged analysis should render one plain span, got %+v", spans)
	}
}

func TestBuild_ActiveSentenceMarked(t *testing.T) {
	content := "one two three"
	analyses := []model.SentenceAnalysis{
		analysis(1, 0, 3, true, 0),
		analysis(2, 4, 7, true, 0),
	}

	spans := Build(content, analyses, 2)

	for _, s := range spans {
		if s.Kind != SpanHighlight {
			continue
		}
		if (s.SentenceID == 2) != s.Active {
			t.Errorf("sentence %d active = %v", s.SentenceID, s.Active)
		}
	}
}

func TestBuild_ZeroLengthHighlight(t *testing.T) {
	content := "abc"
	analyses := []model.SentenceAnalysis{
		analysis(1, 1, 1, true, 0),
	}

	spans := Build(content, analyses, 0)

	if got := joined(spans); got != content {
		t.Errorf("concatenated spans = %q, want %q", got, content)
	}
	found := false
	for _, s := range spans {
		if s.Kind == SpanHighlight {
			found = true
			if s.Text != "" {
				t.Errorf("zero-length range should yield empty highlight, got %q", s.Text)
			}
		}
	}
	if !found {
		t.Error("zero-length highlight span was dropped")
	}
}

func TestBuild_NoNegativeSpans(t *testing.T) {
	content := "a small document body for offset fuzzing"
	cases := [][2]int{
		{-10, -5}, {-1, 3}, {0, 0}, {3, 2}, {38, 120}, {120, 4}, {0, len(content)},
	}

	var analyses []model.SentenceAnalysis
	for i, c := range cases {
		analyses = append(analyses, analysis(i+1, c[0], c[1], true, 0))
	}

	spans := Build(content, analyses, 0)

	for _, s := range spans {
		if s.Kind == SpanPlain && len(s.Text) == 0 {
			t.Errorf("empty plain span emitted: %+v", s)
		}
	}
}
