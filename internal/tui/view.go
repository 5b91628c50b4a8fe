package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/veritext/veritext/internal/highlight"
)

// View renders the active screen.
func (m Model) View() string {
	if m.view == viewPicker {
		return m.viewPicker()
	}
	return m.viewEditor()
}

func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.picker.View())
	b.WriteString("\n")

	if m.listPending {
		b.WriteString(m.styles.Muted.Render("Loading your drafts..."))
	} else if m.detailPending {
		b.WriteString(m.styles.Muted.Render("Opening document..."))
	} else if m.notice != "" {
		b.WriteString(m.notice)
	} else {
		b.WriteString(m.styles.Muted.Render("enter open · n new · r refresh · / filter · q quit"))
	}
	return b.String()
}

func (m Model) viewEditor() string {
	if m.session == nil {
		return m.styles.Muted.Render("No document open.")
	}

	header := m.editorHeader()
	left := m.styles.PaneBorder.Render(m.title.View() + "\n\n" + m.editor.View())
	right := m.styles.PaneBorder.Render(m.preview.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(m.suggestionsSummary())
	b.WriteString("\n")
	b.WriteString(m.editorFooter())
	return b.String()
}

func (m Model) editorHeader() string {
	title := m.session.Working.Title
	if strings.TrimSpace(title) == "" {
		title = "Untitled document"
	}

	badge := m.styles.FreshBadge.Render("analysis current")
	if len(m.session.Analyses) == 0 {
		badge = m.styles.Muted.Render("not analyzed yet")
	} else if m.session.Tracker.IsStale() {
		badge = m.styles.StaleBadge.Render("results may be outdated")
	}

	dirty := ""
	if m.session.Working.Dirty() {
		dirty = m.styles.StaleBadge.Render(" ●")
	}
	return m.styles.Heading.Render(title) + dirty + "  " + badge
}

// suggestionsSummary is the one-line digest under the panes; full suggestion
// text lives in the preview pane alongside the highlights.
func (m Model) suggestionsSummary() string {
	flagged := 0
	suggestions := 0
	for _, a := range m.session.Analyses {
		if a.Flagged() {
			flagged++
		}
		suggestions += len(a.Corrections)
	}
	if len(m.session.Analyses) == 0 {
		return m.styles.Muted.Render("Run an analysis to check this draft.")
	}
	if suggestions == 0 {
		return m.styles.Notice.Render("No issues found.")
	}

	line := plural(flagged, "sentence") + " flagged, " + plural(suggestions, "suggestion")
	if m.session.ActiveSentenceID != 0 {
		if detail := m.activeSuggestion(); detail != "" {
			return m.styles.Muted.Render(line) + "\n" + detail
		}
	}
	return m.styles.Muted.Render(line)
}

func (m Model) activeSuggestion() string {
	for _, a := range m.session.Analyses {
		if a.SentenceID != m.session.ActiveSentenceID || len(a.Corrections) == 0 {
			continue
		}
		c := a.Corrections[0]
		var b strings.Builder
		b.WriteString(m.styles.Heading.Render("Suggested: "))
		b.WriteString(c.Suggested)
		if c.Reasoning != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.Heading.Render("Why: "))
			b.WriteString(c.Reasoning)
		}
		if sources := highlight.ParseSources(c.Sources); len(sources) > 0 {
			b.WriteString("\n")
			b.WriteString(m.styles.Heading.Render("Sources: "))
			b.WriteString(strings.Join(sources, ", "))
		}
		return b.String()
	}
	return ""
}

func (m Model) editorFooter() string {
	if m.confirmDelete {
		return m.notice
	}
	if m.analysisPending {
		return m.styles.Muted.Render("Running analysis...")
	}
	if m.savePending {
		return m.styles.Muted.Render("Saving...")
	}
	if m.deletePending {
		return m.styles.Muted.Render("Deleting...")
	}
	if m.notice != "" {
		return m.notice
	}
	return m.styles.Muted.Render("tab title/body · ctrl+s save · ctrl+r analyze · ctrl+n/p sentence · ctrl+d delete · esc back")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
