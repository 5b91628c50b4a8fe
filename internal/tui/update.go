package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veritext/veritext/internal/highlight"
	"github.com/veritext/veritext/internal/render"
	"github.com/veritext/veritext/internal/workspace"
)

// Update is the bubbletea message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewPicker {
			return m.updatePickerKeys(msg)
		}
		return m.updateEditorKeys(msg)

	case documentsLoadedMsg:
		m.listPending = false
		if msg.gen != m.requestGen {
			return m, nil
		}
		if msg.err != nil {
			m.notice = m.styles.ErrorNotice.Render(msg.err.Error())
			return m, nil
		}
		m.picker.SetItems(pickerItems(m.library))
		return m, m.backfillCmd()

	case previewsLoadedMsg:
		if msg.gen != m.requestGen {
			return m, nil
		}
		m.picker.SetItems(pickerItems(m.library))
		return m, nil

	case documentOpenedMsg:
		m.detailPending = false
		if msg.gen != m.requestGen {
			// A different document was selected while this fetch was in
			// flight; its result must not overwrite the new selection.
			return m, nil
		}
		if msg.err != nil {
			m.notice = m.styles.ErrorNotice.Render(msg.err.Error())
			m.view = viewPicker
			return m, m.refreshCmd(nil)
		}
		m.library.SetPreview(msg.detail.DocumentID, msg.detail.Content)
		m.openSession(workspace.NewSession(msg.detail))
		return m, nil

	case documentSavedMsg:
		m.savePending = false
		if msg.gen != m.requestGen || m.session == nil {
			return m, nil
		}
		if msg.err != nil {
			m.notice = m.styles.ErrorNotice.Render(msg.err.Error())
			return m, nil
		}
		m.session.Working.Rebase(msg.detail)
		m.library.SetPreview(msg.detail.DocumentID, msg.detail.Content)
		m.library.Select(workspace.SelectID(msg.detail.DocumentID))
		if msg.created {
			m.notice = m.styles.Notice.Render("Document created")
		} else {
			m.notice = m.styles.Notice.Render("Document updated")
		}
		m.syncEditorFromSession()
		target := workspace.SelectID(msg.detail.DocumentID)
		return m, m.refreshCmd(&target)

	case documentDeletedMsg:
		m.deletePending = false
		if msg.gen != m.requestGen {
			return m, nil
		}
		if msg.err != nil {
			m.notice = m.styles.ErrorNotice.Render(msg.err.Error())
			return m, nil
		}
		m.library.DropPreview(msg.documentID)
		m.session = nil
		m.view = viewPicker
		m.notice = m.styles.Notice.Render("Document deleted")
		return m, m.refreshCmd(nil)

	case analysisDoneMsg:
		m.analysisPending = false
		if msg.gen != m.requestGen || m.session == nil {
			return m, nil
		}
		if msg.err != nil {
			// Failed run: nothing is replaced and staleness stays as-is.
			m.notice = m.styles.ErrorNotice.Render(msg.err.Error())
			return m, nil
		}
		if saved := msg.result.Saved; saved != nil {
			m.library.SetPreview(saved.DocumentID, saved.Content)
			if m.session.Working.Title == saved.Title && m.session.Working.Content == saved.Content {
				m.session.Working.Rebase(saved)
			}
		}
		m.session.ApplyRun(msg.result)
		if countSuggestions(m.session) == 0 {
			m.notice = m.styles.Notice.Render("No suggestions raised for this draft")
		} else {
			m.notice = m.styles.Notice.Render("Analysis ready")
		}
		m.refreshPreviewPane()
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) updatePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is active, every key belongs to it.
	if m.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		item, ok := m.picker.SelectedItem().(docItem)
		if !ok {
			return m, nil
		}
		m.bumpGeneration()
		m.library.Select(workspace.SelectID(item.summary.DocumentID))
		m.detailPending = true
		return m, m.openCmd(item.summary.DocumentID)
	case "n":
		m.bumpGeneration()
		m.library.Select(workspace.Selection{Kind: workspace.SelectNew})
		m.openSession(workspace.NewSession(nil))
		return m, nil
	case "r":
		m.listPending = true
		return m, m.refreshCmd(nil)
	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) updateEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		m.view = viewPicker
		return m, nil
	}
	if m.confirmDelete {
		switch msg.String() {
		case "y":
			m.confirmDelete = false
			m.deletePending = true
			return m, m.deleteCmd(m.session.Working.DocumentID)
		default:
			m.confirmDelete = false
			m.notice = ""
			return m, nil
		}
	}

	switch msg.String() {
	case "esc":
		m.view = viewPicker
		m.bumpGeneration()
		m.picker.SetItems(pickerItems(m.library))
		return m, nil
	case "tab":
		m.toggleFocus()
		return m, nil
	case "ctrl+s":
		return m.startSave()
	case "ctrl+r":
		return m.startAnalysis()
	case "ctrl+d":
		if m.session.Working.DocumentID != 0 && !m.deletePending {
			m.confirmDelete = true
			m.notice = m.styles.StaleBadge.Render("Delete this document? This cannot be undone. (y/n)")
		}
		return m, nil
	case "ctrl+n":
		m.cycleActiveSentence(1)
		return m, nil
	case "ctrl+p":
		m.cycleActiveSentence(-1)
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused editor component and feeds
// any resulting edit to the session.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view != viewEditor || m.session == nil {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.session.SetTitle(m.title.Value())
	} else {
		m.editor, cmd = m.editor.Update(msg)
		before := m.session.Working.Content
		m.session.SetContent(m.editor.Value())
		if before != m.session.Working.Content {
			m.refreshPreviewPane()
		}
	}
	return m, cmd
}

func (m *Model) startSave() (tea.Model, tea.Cmd) {
	if m.savePending {
		return *m, nil
	}
	if strings.TrimSpace(m.session.Working.Title) == "" {
		m.notice = m.styles.ErrorNotice.Render("Title is required")
		return *m, nil
	}
	if m.session.Working.DocumentID != 0 && !m.session.Working.Dirty() {
		return *m, nil
	}
	m.savePending = true
	return *m, m.saveCmd(*m.session.Working)
}

func (m *Model) startAnalysis() (tea.Model, tea.Cmd) {
	// One run in flight per document; the trigger is a no-op while pending.
	if m.analysisPending {
		return *m, nil
	}
	if m.session.Working.DocumentID == 0 {
		m.notice = m.styles.ErrorNotice.Render(workspace.ErrUnsavedDocument.Error())
		return *m, nil
	}
	m.analysisPending = true
	m.notice = m.styles.Muted.Render("Running analysis...")
	return *m, m.analyzeCmd(*m.session.Working)
}

// openSession switches the editor to a freshly opened document. Analyses are
// cleared and the staleness tracker resets with the new session.
func (m *Model) openSession(session *workspace.Session) {
	m.session = session
	m.view = viewEditor
	m.focus = focusContent
	m.confirmDelete = false
	m.notice = ""
	m.syncEditorFromSession()
	m.refreshPreviewPane()
}

func (m *Model) syncEditorFromSession() {
	m.title.SetValue(m.session.Working.Title)
	m.editor.SetValue(m.session.Working.Content)
	m.applyFocus()
}

func (m *Model) toggleFocus() {
	if m.focus == focusContent {
		m.focus = focusTitle
	} else {
		m.focus = focusContent
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	if m.focus == focusTitle {
		m.title.Focus()
		m.editor.Blur()
	} else {
		m.title.Blur()
		m.editor.Focus()
	}
}

// bumpGeneration invalidates every in-flight request for the old selection.
func (m *Model) bumpGeneration() {
	m.requestGen++
}

func (m *Model) cycleActiveSentence(step int) {
	if m.session == nil || len(m.session.Analyses) == 0 {
		return
	}
	flagged := make([]int, 0, len(m.session.Analyses))
	for _, a := range m.session.Analyses {
		if a.Flagged() {
			flagged = append(flagged, a.SentenceID)
		}
	}
	if len(flagged) == 0 {
		return
	}

	current := -1
	for i, id := range flagged {
		if id == m.session.ActiveSentenceID {
			current = i
			break
		}
	}
	next := (current + step + len(flagged)) % len(flagged)
	m.session.SelectSentence(flagged[next])
	m.refreshPreviewPane()
}

func (m *Model) refreshPreviewPane() {
	if m.session == nil {
		return
	}
	spans := highlight.Build(m.session.Working.Content, m.session.Analyses, m.session.ActiveSentenceID)
	m.preview.SetContent(render.Spans(spans, m.highlightStyles()))
}

func countSuggestions(session *workspace.Session) int {
	total := 0
	for _, a := range session.Analyses {
		total += len(a.Corrections)
	}
	return total
}

func (m *Model) resize() {
	listWidth := m.width
	listHeight := m.height - 4
	if listHeight < 3 {
		listHeight = 3
	}
	m.picker.SetSize(listWidth, listHeight)

	paneWidth := m.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 8
	if paneHeight < 3 {
		paneHeight = 3
	}
	m.title.Width = paneWidth
	m.editor.SetWidth(paneWidth)
	m.editor.SetHeight(paneHeight)
	m.preview.Width = paneWidth
	m.preview.Height = paneHeight
	m.refreshPreviewPane()
}
