package highlight

import (
	"sort"
	"strings"

	"github.com/veritext/veritext/internal/model"
)

// SpanKind distinguishes plain text from interactive highlights
type SpanKind int

const (
	SpanPlain       SpanKind = iota // Ordinary document text
	SpanHighlight                   // Flagged sentence, selectable
	SpanPlaceholder                 // Empty-document placeholder, carries no content
)

// Span is one display fragment of the reconciled document. Highlight spans
// carry the sentence they are bound to; Active marks the caller's current
// selection.
type Span struct {
	Kind       SpanKind
	Text       string
	SentenceID int  // Valid only for SpanHighlight
	Active     bool // Valid only for SpanHighlight
}

// Build partitions content into an ordered sequence of plain and highlighted
// spans from one analysis run. It is total over arbitrary inputs: offsets
// from a run that predates edits are clamped into range rather than rejected,
// and overlapping ranges never move the cursor backward.
func Build(content string, analyses []model.SentenceAnalysis, activeSentenceID int) []Span {
	if strings.TrimSpace(content) == "" {
		return []Span{{Kind: SpanPlaceholder}}
	}

	flagged := make([]model.SentenceAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if a.Flagged() {
			flagged = append(flagged, a)
		}
	}
	if len(flagged) == 0 {
		return []Span{{Kind: SpanPlain, Text: content}}
	}

	// Equal start offsets keep their insertion order.
	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].StartIndex < flagged[j].StartIndex
	})

	spans := make([]Span, 0, len(flagged)*2+1)
	cursor := 0

	for _, sentence := range flagged {
		start := clamp(sentence.StartIndex, 0, len(content))
		end := clamp(sentence.EndIndex, start, len(content))

		// A preceding range may already have consumed past start; plain spans
		// begin at the cursor so slices stay non-negative.
		if start > cursor {
			spans = append(spans, Span{Kind: SpanPlain, Text: content[cursor:start]})
		}

		// Zero-length highlights are permitted and render as empty regions.
		spans = append(spans, Span{
			Kind:       SpanHighlight,
			Text:       content[start:end],
			SentenceID: sentence.SentenceID,
			Active:     sentence.SentenceID == activeSentenceID,
		})

		if end > cursor {
			cursor = end
		}
	}

	if cursor < len(content) {
		spans = append(spans, Span{Kind: SpanPlain, Text: content[cursor:]})
	}

	return spans
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
