// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/catalog"
	"github.com/arthur-debert/tmplfactory/pkg/style"
	"github.com/arthur-debert/tmplfactory/pkg/types"
)

// Renderer lays out output as lines of text. The painter decides whether
// those lines carry colour.
type Renderer struct {
	output  io.Writer
	painter style.Painter
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewPainted(output, style.Plain{})
}

// NewPainted creates a text renderer whose lines are decorated by painter.
func NewPainted(output io.Writer, painter style.Painter) (*Renderer, error) {
	if painter == nil {
		painter = style.Plain{}
	}
	return &Renderer{output: output, painter: painter}, nil
}

// RenderResult renders any result type as text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Catalog:
		return r.renderNames(v.Names())
	case []string:
		return r.renderNames(v)
	case *types.TemplateRecord:
		return r.renderDetails(catalog.FormatDetails(*v))
	case types.TemplateRecord:
		return r.renderDetails(catalog.FormatDetails(v))
	case *types.MaterializeResult:
		return r.renderMaterialized(v)
	case string:
		return r.RenderMessage(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as text
func (r *Renderer) RenderError(err error) error {
	return r.line(style.RoleError, "Error: "+err.Error())
}

// RenderMessage renders a simple message as text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderSuccess renders a success message as text
func (r *Renderer) RenderSuccess(msg string) error {
	return r.line(style.RoleSuccess, "Success: "+msg)
}

// RenderWarning renders a warning message as text
func (r *Renderer) RenderWarning(msg string) error {
	return r.line(style.RoleWarning, "Warning: "+msg)
}

// RenderFailure renders an error message that carries its own wording
func (r *Renderer) RenderFailure(msg string) error {
	return r.line(style.RoleError, msg)
}

func (r *Renderer) line(role style.Role, s string) error {
	_, err := fmt.Fprintln(r.output, r.painter.Paint(role, s))
	return err
}

func (r *Renderer) renderNames(names []string) error {
	if len(names) == 0 {
		return r.line(style.RoleMuted, "No templates found.")
	}
	var b strings.Builder
	b.WriteString(r.painter.Paint(style.RoleTitle, "Available templates:"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString("  • ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// renderDetails prints the details block, painting only the heading line so
// the rest stays byte-identical to catalog.FormatDetails.
func (r *Renderer) renderDetails(details string) error {
	head, rest, _ := strings.Cut(details, "\n")
	_, err := io.WriteString(r.output, r.painter.Paint(style.RoleTitle, head)+"\n"+rest)
	return err
}

func (r *Renderer) renderMaterialized(res *types.MaterializeResult) error {
	var b strings.Builder
	count := len(res.Paths)
	if res.DryRun {
		fmt.Fprintf(&b, "Dry run: would create %d file(s) in %s\n", count, res.ResolvedRoot)
	} else {
		fmt.Fprintf(&b, "Created %d file(s) in %s\n", res.FilesWritten, res.ResolvedRoot)
	}
	for _, p := range res.Paths {
		b.WriteString("  + ")
		b.WriteString(r.painter.Paint(style.RolePath, p))
		b.WriteString("\n")
	}
	for _, s := range res.Skipped {
		b.WriteString(r.painter.Paint(style.RoleMuted, "  - "+s+" (skipped)"))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}
