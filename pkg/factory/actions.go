package factory

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/catalog"
	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/logging"
	"github.com/arthur-debert/tmplfactory/pkg/types"
)

// User-facing messages.
const (
	MsgLoadTemplatesFirst = "Please load templates first"
	MsgEnterProjectName   = "Please enter a project name"
	MsgSelectTemplate     = "Please select a template"
	msgLoadFailed         = "Error loading templates: %s"
	msgCreateFailed       = "Error creating project: %s"
	msgCreated            = "Project '%s' created successfully!"
	msgDryRun             = "Dry run for project '%s' complete, %d file(s) would be written"
)

// State is what the user has loaded and picked so far.
type State struct {
	Catalog  *types.Catalog
	Selected *types.TemplateRecord
}

// Loaded reports whether a non-empty catalog is present. An empty catalog
// counts as not loaded.
func (s State) Loaded() bool {
	return !s.Catalog.IsEmpty()
}

// Materializer writes a template to disk.
type Materializer interface {
	Materialize(record *types.TemplateRecord, projectRootName string) (*types.MaterializeResult, error)
}

// LoadAction asks for a catalog file and loads it. On success the new
// catalog replaces prev wholesale and its first template becomes the
// selection. On cancel or failure prev is returned unchanged.
func LoadAction(u types.UI, fsys types.FS, prev State) (State, error) {
	logger := logging.GetLogger("factory")

	path, ok, err := u.RequestTemplateFilePath()
	if err != nil {
		err = errors.Wrap(err, errors.ErrUserInput, "cannot read template file path")
		u.ReportError(fmt.Sprintf(msgLoadFailed, errors.UserMessage(err)))
		return prev, err
	}
	if !ok {
		logger.Debug().Msg("Load cancelled")
		return prev, nil
	}

	c, err := catalog.LoadFile(fsys, path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Catalog load failed")
		u.ReportError(fmt.Sprintf(msgLoadFailed, errors.UserMessage(err)))
		return prev, err
	}

	next := State{Catalog: c}
	u.PresentTemplateList(c.Names())
	if len(c.Records) > 0 {
		next.Selected = &c.Records[0]
		u.PresentTemplateDetails(catalog.FormatDetails(*next.Selected))
	}
	return next, nil
}

// SelectAction makes name the current selection. Without a loaded catalog
// it does nothing. An unknown name is reported as a warning and leaves the
// selection unchanged.
func SelectAction(u types.UI, st State, name string) (State, error) {
	if !st.Loaded() {
		return st, nil
	}

	record, err := catalog.FindByName(st.Catalog, name)
	if err != nil {
		u.ReportWarning(errors.UserMessage(err))
		return st, err
	}

	st.Selected = record
	u.PresentTemplateDetails(catalog.FormatDetails(*record))
	return st, nil
}

// CreateAction checks the preconditions in order (catalog loaded, project
// name given, template selected) and then materializes the selection.
func CreateAction(u types.UI, m Materializer, st State, projectName string) (*types.MaterializeResult, error) {
	if !st.Loaded() {
		u.ReportWarning(MsgLoadTemplatesFirst)
		return nil, errors.New(errors.ErrCatalogNotLoaded, MsgLoadTemplatesFirst)
	}
	name := strings.TrimSpace(projectName)
	if name == "" {
		u.ReportWarning(MsgEnterProjectName)
		return nil, errors.New(errors.ErrEmptyProjectName, MsgEnterProjectName)
	}
	if st.Selected == nil {
		u.ReportWarning(MsgSelectTemplate)
		return nil, errors.New(errors.ErrNoTemplateChosen, MsgSelectTemplate)
	}

	result, err := m.Materialize(st.Selected, name)
	if err != nil {
		if errors.IsWarning(err) {
			u.ReportWarning(errors.UserMessage(err))
		} else {
			u.ReportError(fmt.Sprintf(msgCreateFailed, errors.UserMessage(err)))
		}
		return result, err
	}

	if result.DryRun {
		u.ReportSuccess(fmt.Sprintf(msgDryRun, name, result.FilesWritten))
	} else {
		u.ReportSuccess(fmt.Sprintf(msgCreated, name))
	}
	return result, nil
}
