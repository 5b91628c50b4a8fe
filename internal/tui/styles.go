package tui

import "github.com/charmbracelet/lipgloss"

// Styles bundles the lipgloss styles for the workspace.
type Styles struct {
	Heading         lipgloss.Style
	Muted           lipgloss.Style
	Highlight       lipgloss.Style
	ActiveHighlight lipgloss.Style
	StaleBadge      lipgloss.Style
	FreshBadge      lipgloss.Style
	Notice          lipgloss.Style
	ErrorNotice     lipgloss.Style
	PaneBorder      lipgloss.Style
}

// DefaultStyles returns the standard workspace color scheme.
func DefaultStyles() Styles {
	return Styles{
		Heading:         lipgloss.NewStyle().Bold(true),
		Muted:           lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		ActiveHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")).Bold(true),
		StaleBadge:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		FreshBadge:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Notice:          lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ErrorNotice:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		PaneBorder:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}
