// Package tui is the interactive Veritext workspace: a document picker, an
// editor with inline fact-check highlights, and a suggestions pane.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/veritext/veritext/internal/model"
	"github.com/veritext/veritext/internal/render"
	"github.com/veritext/veritext/internal/workspace"
)

type view int

const (
	viewPicker view = iota
	viewEditor
)

type focusArea int

const (
	focusContent focusArea = iota
	focusTitle
)

// Model is the bubbletea model for the workspace.
type Model struct {
	ctx      context.Context
	user     model.User
	backend  workspace.Backend
	library  *workspace.Library
	analyzer *workspace.Analyzer
	log      zerolog.Logger
	styles   Styles

	view    view
	picker  list.Model
	title   textinput.Model
	editor  textarea.Model
	preview viewport.Model
	session *workspace.Session
	focus   focusArea

	width  int
	height int

	// requestGen invalidates in-flight fetches: results tagged with an older
	// generation are discarded on arrival.
	requestGen uint64

	listPending     bool
	detailPending   bool
	savePending     bool
	deletePending   bool
	analysisPending bool
	confirmDelete   bool

	notice string
}

// New builds the workspace model for an authenticated user.
func New(ctx context.Context, user model.User, backend workspace.Backend, library *workspace.Library, analyzer *workspace.Analyzer, log zerolog.Logger) Model {
	styles := DefaultStyles()

	delegate := list.NewDefaultDelegate()
	picker := list.New(nil, delegate, 0, 0)
	picker.Title = "Your drafts"
	picker.SetShowHelp(false)
	picker.SetFilteringEnabled(true)

	title := textinput.New()
	title.Placeholder = "Untitled document"
	title.CharLimit = 200

	editor := textarea.New()
	editor.Placeholder = "Start drafting..."
	editor.CharLimit = 0

	return Model{
		ctx:      ctx,
		user:     user,
		backend:  backend,
		library:  library,
		analyzer: analyzer,
		log:      log,
		styles:   styles,
		view:     viewPicker,
		picker:   picker,
		title:    title,
		editor:   editor,
		preview:  viewport.New(0, 0),
	}
}

// Init loads the document list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(nil), textarea.Blink)
}

// highlightStyles adapts the TUI styles for span rendering.
func (m Model) highlightStyles() render.Styles {
	return render.Styles{
		Highlight:   m.styles.Highlight,
		Active:      m.styles.ActiveHighlight,
		Placeholder: m.styles.Muted,
		Heading:     m.styles.Heading,
		Muted:       m.styles.Muted,
	}
}
