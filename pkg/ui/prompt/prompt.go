// Package prompt implements types.UI on an interactive terminal using pterm
// prompts, printing results through a ui.Renderer.
package prompt

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/tmplfactory/pkg/logging"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	"github.com/arthur-debert/tmplfactory/pkg/ui"
)

// InputFunc reads one line of text, offering def as the default answer.
type InputFunc func(label, def string) (string, error)

// ChooseFunc lets the user pick one of options.
type ChooseFunc func(label string, options []string) (string, error)

// Console is the terminal UI used by the interactive command.
type Console struct {
	renderer    ui.Renderer
	defaultPath string
	input       InputFunc
	choose      ChooseFunc
}

var _ types.UI = (*Console)(nil)

// Option configures a Console.
type Option func(*Console)

// WithDefaultPath pre-fills the catalog path prompt.
func WithDefaultPath(p string) Option {
	return func(c *Console) { c.defaultPath = p }
}

// WithInput replaces the pterm text prompt.
func WithInput(f InputFunc) Option {
	return func(c *Console) { c.input = f }
}

// WithChooser replaces the pterm select prompt.
func WithChooser(f ChooseFunc) Option {
	return func(c *Console) { c.choose = f }
}

// NewConsole returns a Console that prints through renderer.
func NewConsole(renderer ui.Renderer, opts ...Option) *Console {
	c := &Console{
		renderer: renderer,
		input:    ptermInput,
		choose:   ptermChoose,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func ptermInput(label, def string) (string, error) {
	p := pterm.DefaultInteractiveTextInput
	if def != "" {
		p = *p.WithDefaultValue(def)
	}
	return p.Show(label)
}

func ptermChoose(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(10).
		Show(label)
}

// RequestTemplateFilePath asks for the catalog file. An empty answer cancels.
func (c *Console) RequestTemplateFilePath() (string, bool, error) {
	answer, err := c.input("Templates file (leave empty to cancel)", c.defaultPath)
	if err != nil {
		return "", false, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false, nil
	}
	return answer, true, nil
}

// PresentTemplateList prints the loaded template names.
func (c *Console) PresentTemplateList(names []string) {
	c.report(c.renderer.RenderResult(names))
}

// PresentTemplateDetails prints a details block.
func (c *Console) PresentTemplateDetails(details string) {
	c.report(c.renderer.RenderMessage(strings.TrimRight(details, "\n")))
}

// SelectTemplate asks the user to pick a template. There is nothing to pick
// from an empty list, which counts as a cancel.
func (c *Console) SelectTemplate(names []string) (string, bool, error) {
	if len(names) == 0 {
		return "", false, nil
	}
	choice, err := c.choose("Select a template", names)
	if err != nil {
		return "", false, err
	}
	return choice, choice != "", nil
}

// RequestProjectName asks for the project directory name. The answer is
// returned as typed; blank names are rejected by the action layer.
func (c *Console) RequestProjectName() (string, error) {
	return c.input("Project name", "")
}

func (c *Console) ReportSuccess(message string) {
	c.report(c.renderer.RenderSuccess(message))
}

func (c *Console) ReportWarning(message string) {
	c.report(c.renderer.RenderWarning(message))
}

func (c *Console) ReportError(message string) {
	c.report(c.renderer.RenderFailure(message))
}

func (c *Console) report(err error) {
	if err != nil {
		logger := logging.GetLogger("ui.prompt")
		logger.Debug().Err(err).Msg("Failed to write output")
	}
}
