package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veritext/veritext/internal/model"
	"github.com/veritext/veritext/internal/workspace"
)

// Async results carry the request generation they were issued under; the
// update loop drops any result whose generation no longer matches.

type documentsLoadedMsg struct {
	gen uint64
	err error
}

type previewsLoadedMsg struct {
	gen uint64
}

type documentOpenedMsg struct {
	gen    uint64
	detail *model.DocumentDetail
	err    error
}

type documentSavedMsg struct {
	gen     uint64
	detail  *model.DocumentDetail
	created bool
	err     error
}

type documentDeletedMsg struct {
	gen        uint64
	documentID int
	err        error
}

type analysisDoneMsg struct {
	gen    uint64
	result *workspace.RunResult
	err    error
}

func (m Model) refreshCmd(target *workspace.Selection) tea.Cmd {
	gen := m.requestGen
	return func() tea.Msg {
		err := m.library.Refresh(m.ctx, m.user.UserID, target)
		return documentsLoadedMsg{gen: gen, err: err}
	}
}

func (m Model) backfillCmd() tea.Cmd {
	gen := m.requestGen
	return func() tea.Msg {
		m.library.BackfillPreviews(m.ctx)
		return previewsLoadedMsg{gen: gen}
	}
}

func (m Model) openCmd(documentID int) tea.Cmd {
	gen := m.requestGen
	return func() tea.Msg {
		detail, err := m.backend.GetDocument(m.ctx, documentID)
		return documentOpenedMsg{gen: gen, detail: detail, err: err}
	}
}

func (m Model) saveCmd(working workspace.WorkingCopy) tea.Cmd {
	gen := m.requestGen
	return func() tea.Msg {
		payload := model.DocumentPayload{Title: working.Title, Content: working.Content}
		if working.DocumentID == 0 {
			detail, err := m.backend.CreateDocument(m.ctx, m.user.UserID, payload)
			return documentSavedMsg{gen: gen, detail: detail, created: true, err: err}
		}
		detail, err := m.backend.UpdateDocument(m.ctx, working.DocumentID, payload)
		return documentSavedMsg{gen: gen, detail: detail, err: err}
	}
}

func (m Model) deleteCmd(documentID int) tea.Cmd {
	gen := m.requestGen
	return func() tea.Msg {
		err := m.backend.DeleteDocument(m.ctx, documentID)
		return documentDeletedMsg{gen: gen, documentID: documentID, err: err}
	}
}

// analyzeCmd runs on a snapshot of the working copy so the editor stays
// responsive; the update loop reconciles the saved baseline on completion.
func (m Model) analyzeCmd(working workspace.WorkingCopy) tea.Cmd {
	gen := m.requestGen
	return func() tea.Msg {
		result, err := m.analyzer.Run(m.ctx, &working)
		return analysisDoneMsg{gen: gen, result: result, err: err}
	}
}
