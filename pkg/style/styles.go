// Package style holds the semantic roles used when printing tmplfactory
// output and the lipgloss styles that paint them on a colour terminal.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Role is the meaning of a piece of output, independent of how it looks.
type Role int

const (
	RoleTitle Role = iota
	RoleSuccess
	RoleWarning
	RoleError
	RoleMuted
	RolePath
)

// Painter decorates text for a role.
type Painter interface {
	Paint(role Role, text string) string
}

// Plain returns text unchanged. Used for piped output and NO_COLOR.
type Plain struct{}

// Paint implements Painter.
func (Plain) Paint(_ Role, text string) string {
	return text
}

// Theme paints roles with lipgloss styles bound to one renderer, so the
// colour profile follows the writer being rendered to.
type Theme struct {
	styles map[Role]lipgloss.Style
}

// NewTheme builds the default theme on r.
func NewTheme(r *lipgloss.Renderer) *Theme {
	return &Theme{
		styles: map[Role]lipgloss.Style{
			RoleTitle:   r.NewStyle().Foreground(HeadingColor).Bold(true),
			RoleSuccess: r.NewStyle().Foreground(SuccessColor).Bold(true),
			RoleWarning: r.NewStyle().Foreground(WarningColor).Bold(true),
			RoleError:   r.NewStyle().Foreground(ErrorColor).Bold(true),
			RoleMuted:   r.NewStyle().Foreground(MutedColor),
			RolePath:    r.NewStyle().Foreground(PrimaryColor).Italic(true),
		},
	}
}

// Paint implements Painter. Unknown roles are returned unstyled.
func (t *Theme) Paint(role Role, text string) string {
	s, ok := t.styles[role]
	if !ok {
		return text
	}
	return s.Render(text)
}
