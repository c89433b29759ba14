// Package ui renders tmplfactory output in terminal (styled), text (plain)
// or JSON form behind one Renderer interface.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/tmplfactory/pkg/ui/json"
	"github.com/arthur-debert/tmplfactory/pkg/ui/terminal"
	"github.com/arthur-debert/tmplfactory/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a catalog, a template name list, a template
	// record or a materialization result.
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error

	RenderSuccess(msg string) error
	RenderWarning(msg string) error

	// RenderFailure renders an already worded error message.
	RenderFailure(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
