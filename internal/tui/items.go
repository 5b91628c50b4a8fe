package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/veritext/veritext/internal/model"
	"github.com/veritext/veritext/internal/workspace"
)

const previewSnippetLen = 220

// docItem is one picker entry: a summary plus its cached preview snippet.
type docItem struct {
	summary model.DocumentSummary
	preview string
}

func (d docItem) Title() string {
	if strings.TrimSpace(d.summary.Title) == "" {
		return "Untitled document"
	}
	return d.summary.Title
}

func (d docItem) Description() string {
	snippet := previewSnippet(d.preview)
	if d.summary.UpdatedAt != "" {
		return "updated " + d.summary.UpdatedAt + "  " + snippet
	}
	return snippet
}

func (d docItem) FilterValue() string {
	return d.summary.Title
}

// previewSnippet trims and caps cached content for the picker.
func previewSnippet(content string) string {
	normalized := strings.TrimSpace(content)
	if normalized == "" {
		return "Open this draft to start shaping your story."
	}
	if len(normalized) <= previewSnippetLen {
		return normalized
	}
	return normalized[:previewSnippetLen-3] + "..."
}

// pickerItems builds the picker entries from library state.
func pickerItems(library *workspace.Library) []list.Item {
	docs := library.Documents()
	items := make([]list.Item, len(docs))
	for i, doc := range docs {
		preview, _ := library.Preview(doc.DocumentID)
		items[i] = docItem{summary: doc, preview: preview}
	}
	return items
}
