// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

type templateList struct {
	Source    string   `json:"source,omitempty"`
	Templates []string `json:"templates"`
}

// RenderResult renders any result type as JSON. Catalogs and name lists are
// reduced to their names; template records keep the catalog document shape.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Catalog:
		list := templateList{Templates: []string{}}
		if v != nil {
			list.Source = v.Source
			list.Templates = v.Names()
		}
		return r.encoder.Encode(list)
	case []string:
		if v == nil {
			v = []string{}
		}
		return r.encoder.Encode(templateList{Templates: v})
	default:
		return r.encoder.Encode(result)
	}
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.message("info", msg)
}

// RenderSuccess renders a success message as JSON
func (r *Renderer) RenderSuccess(msg string) error {
	return r.message("success", msg)
}

// RenderWarning renders a warning message as JSON
func (r *Renderer) RenderWarning(msg string) error {
	return r.message("warning", msg)
}

// RenderFailure renders an error message as JSON
func (r *Renderer) RenderFailure(msg string) error {
	return r.message("error", msg)
}

func (r *Renderer) message(level, msg string) error {
	return r.encoder.Encode(map[string]string{
		"level":   level,
		"message": msg,
	})
}
