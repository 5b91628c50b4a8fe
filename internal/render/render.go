// Package render turns reconciled spans and analysis results into terminal
// output: styled text for interactive use, JSON for scripting.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/veritext/veritext/internal/highlight"
	"github.com/veritext/veritext/internal/model"
)

const placeholderText = "Start drafting to see Veritext highlights."

// Styles bundles the lipgloss styles for highlight rendering.
type Styles struct {
	Highlight   lipgloss.Style
	Active      lipgloss.Style
	Placeholder lipgloss.Style
	Heading     lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		Active:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Heading:     lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

// Spans renders a reconciled span sequence as one styled string.
func Spans(spans []highlight.Span, styles Styles) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case highlight.SpanPlaceholder:
			b.WriteString(styles.Placeholder.Render(placeholderText))
		case highlight.SpanHighlight:
			if span.Active {
				b.WriteString(styles.Active.Render(span.Text))
			} else {
				b.WriteString(styles.Highlight.Render(span.Text))
			}
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// Suggestions writes a human-readable report of every correction, with the
// parsed citation list.
func Suggestions(w io.Writer, analyses []model.SentenceAnalysis, styles Styles) {
	total := 0
	for _, analysis := range analyses {
		total += len(analysis.Corrections)
	}
	if total == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No suggestions raised for this draft."))
		return
	}

	for _, analysis := range analyses {
		for _, correction := range analysis.Corrections {
			fmt.Fprintln(w, styles.Heading.Render("Sentence:"), analysis.Content)
			fmt.Fprintln(w, styles.Heading.Render("Suggested:"), correction.Suggested)
			if correction.Reasoning != "" {
				fmt.Fprintln(w, styles.Heading.Render("Why:"), correction.Reasoning)
			}
			if sources := highlight.ParseSources(correction.Sources); len(sources) > 0 {
				fmt.Fprintln(w, styles.Heading.Render("Sources:"))
				for _, src := range sources {
					fmt.Fprintf(w, "  - %s\n", src)
				}
			}
			if correction.CreatedAt != "" {
				fmt.Fprintln(w, styles.Muted.Render("proposed "+correction.CreatedAt))
			}
			fmt.Fprintln(w)
		}
	}
}

// Report is the JSON output shape of `veritext analyze --json`.
type Report struct {
	Document model.DocumentDetail     `json:"document"`
	Analyses []model.SentenceAnalysis `json:"analyses"`
	Flagged  int                      `json:"flagged"`
	RanAt    string                   `json:"ran_at"`
}

// WriteJSON writes the report to path, or stdout when path is "-".
func WriteJSON(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
