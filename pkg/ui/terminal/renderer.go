// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/tmplfactory/pkg/style"
	"github.com/arthur-debert/tmplfactory/pkg/ui/text"
)

// Renderer is the text layout painted with the lipgloss theme.
type Renderer struct {
	*text.Renderer
}

// New creates a terminal renderer whose colour profile is detected from
// output.
func New(output io.Writer) (*Renderer, error) {
	return newWith(lipgloss.NewRenderer(output), output)
}

// NewWithProfile creates a terminal renderer with a fixed colour profile.
func NewWithProfile(output io.Writer, profile termenv.Profile) (*Renderer, error) {
	lr := lipgloss.NewRenderer(output)
	lr.SetColorProfile(profile)
	return newWith(lr, output)
}

func newWith(lr *lipgloss.Renderer, output io.Writer) (*Renderer, error) {
	tr, err := text.NewPainted(output, style.NewTheme(lr))
	if err != nil {
		return nil, err
	}
	return &Renderer{Renderer: tr}, nil
}
