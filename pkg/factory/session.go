package factory

import (
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/logging"
	"github.com/arthur-debert/tmplfactory/pkg/types"
)

// Session drives one interactive run: load a catalog, pick a template, name
// the project and create it.
type Session struct {
	UI           types.UI
	FS           types.FS
	Materializer Materializer
	State        State
}

// NewSession returns a Session with nothing loaded.
func NewSession(u types.UI, fsys types.FS, m Materializer) *Session {
	return &Session{UI: u, FS: fsys, Materializer: m}
}

// Run walks the user through the whole flow. Load failures are asked
// again. A blank project name is warned about once; a second blank answer
// in a row cancels. It returns a nil result with a nil error
// when the user cancels, and an error only when reading input fails or
// the project could not be written.
func (s *Session) Run() (*types.MaterializeResult, error) {
	logger := logging.GetLogger("factory.session")

	for !s.State.Loaded() {
		before := s.State.Catalog
		next, err := LoadAction(s.UI, s.FS, s.State)
		if errors.IsErrorCode(err, errors.ErrUserInput) {
			return nil, err
		}
		if err == nil && next.Catalog == before {
			logger.Debug().Msg("Session cancelled at load")
			return nil, nil
		}
		s.State = next
		if err == nil && !s.State.Loaded() {
			s.UI.ReportWarning(MsgLoadTemplatesFirst)
		}
	}

	name, ok, err := s.UI.SelectTemplate(s.State.Catalog.Names())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUserInput, "cannot read template choice")
	}
	if !ok {
		logger.Debug().Msg("Session cancelled at selection")
		return nil, nil
	}
	// A name outside the catalog keeps the previous selection, which is
	// what the warning already told the user.
	s.State, _ = SelectAction(s.UI, s.State, name)

	warned := false
	for {
		projectName, err := s.UI.RequestProjectName()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrUserInput, "cannot read project name")
		}
		if warned && strings.TrimSpace(projectName) == "" {
			logger.Debug().Msg("Session cancelled at project name")
			return nil, nil
		}
		result, err := CreateAction(s.UI, s.Materializer, s.State, projectName)
		if errors.IsErrorCode(err, errors.ErrEmptyProjectName) {
			warned = true
			continue
		}
		return result, err
	}
}
