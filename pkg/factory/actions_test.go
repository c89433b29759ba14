package factory_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplfactory/pkg/catalog"
	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/factory"
	"github.com/arthur-debert/tmplfactory/pkg/filesystem"
	"github.com/arthur-debert/tmplfactory/pkg/materialize"
	"github.com/arthur-debert/tmplfactory/pkg/types"
)

const catalogJSON = `[
  {"templateName": "Basic", "templateDescription": "d",
   "TemplateFiles": [
     {"name": "README.md", "content": "hello"},
     {"name": "src/main.txt", "content": "world"}]},
  {"templateName": "Web", "templateDescription": "site",
   "TemplateFiles": [{"name": "index.html", "content": "<html></html>"}]}
]`

func memWith(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
	}
	return fsys
}

func loadedState(t *testing.T) factory.State {
	t.Helper()
	c, err := catalog.Load([]byte(catalogJSON))
	require.NoError(t, err)
	return factory.State{Catalog: c, Selected: &c.Records[0]}
}

func prefixed(prefix string) interface{} {
	return mock.MatchedBy(func(s string) bool { return strings.HasPrefix(s, prefix) })
}

func TestLoadAction_Success(t *testing.T) {
	fsys := memWith(t, map[string]string{"templates.json": catalogJSON})
	u := &mockUI{}
	u.On("RequestTemplateFilePath").Return("templates.json", true, nil)
	u.On("PresentTemplateList", []string{"Basic", "Web"}).Return()
	u.On("PresentTemplateDetails",
		"Template: Basic\n\nDescription:\nd\n\nFiles to be created:\n• README.md\n• src/main.txt\n").Return()

	st, err := factory.LoadAction(u, fsys, factory.State{})
	require.NoError(t, err)

	u.AssertExpectations(t)
	assert.True(t, st.Loaded())
	assert.Equal(t, "templates.json", st.Catalog.Source)
	require.NotNil(t, st.Selected)
	assert.Equal(t, "Basic", st.Selected.Name)
}

func TestLoadAction_ReplacesPreviousCatalog(t *testing.T) {
	fsys := memWith(t, map[string]string{
		"other.json": `[{"templateName": "Solo", "TemplateFiles": []}]`,
	})
	prev := loadedState(t)
	u := &mockUI{}
	u.On("RequestTemplateFilePath").Return("other.json", true, nil)
	u.On("PresentTemplateList", []string{"Solo"}).Return()
	u.On("PresentTemplateDetails", mock.Anything).Return()

	st, err := factory.LoadAction(u, fsys, prev)
	require.NoError(t, err)
	assert.Equal(t, []string{"Solo"}, st.Catalog.Names())
	assert.Equal(t, "Solo", st.Selected.Name)
}

func TestLoadAction_EmptyCatalogSelectsNothing(t *testing.T) {
	fsys := memWith(t, map[string]string{"empty.json": `[]`})
	u := &mockUI{}
	u.On("RequestTemplateFilePath").Return("empty.json", true, nil)
	u.On("PresentTemplateList", []string{}).Return()

	st, err := factory.LoadAction(u, fsys, factory.State{})
	require.NoError(t, err)

	u.AssertExpectations(t)
	u.AssertNotCalled(t, "PresentTemplateDetails", mock.Anything)
	assert.NotNil(t, st.Catalog)
	assert.Nil(t, st.Selected)
	assert.False(t, st.Loaded())
}

func TestLoadAction_Cancelled(t *testing.T) {
	prev := loadedState(t)
	u := &mockUI{}
	u.On("RequestTemplateFilePath").Return("", false, nil)

	st, err := factory.LoadAction(u, filesystem.NewMemory(), prev)
	require.NoError(t, err)

	u.AssertExpectations(t)
	assert.Same(t, prev.Catalog, st.Catalog)
	assert.Same(t, prev.Selected, st.Selected)
}

func TestLoadAction_Failures(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		path     string
		promptEr error
		wantCode errors.ErrorCode
	}{
		{
			name:     "malformed json",
			files:    map[string]string{"bad.json": `{"templateName": "x"}`},
			path:     "bad.json",
			wantCode: errors.ErrMalformedInput,
		},
		{
			name:     "missing name",
			files:    map[string]string{"bad.json": `[{"templateDescription":"x","TemplateFiles":[]}]`},
			path:     "bad.json",
			wantCode: errors.ErrMalformedInput,
		},
		{
			name:     "missing file",
			path:     "nope.json",
			wantCode: errors.ErrFileRead,
		},
		{
			name:     "prompt failure",
			promptEr: stderrors.New("stdin closed"),
			wantCode: errors.ErrUserInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := loadedState(t)
			u := &mockUI{}
			u.On("RequestTemplateFilePath").Return(tt.path, tt.promptEr == nil, tt.promptEr)
			u.On("ReportError", prefixed("Error loading templates: ")).Return()

			st, err := factory.LoadAction(u, memWith(t, tt.files), prev)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			u.AssertExpectations(t)
			u.AssertNotCalled(t, "PresentTemplateList", mock.Anything)
			assert.Same(t, prev.Catalog, st.Catalog)
		})
	}
}

func TestSelectAction(t *testing.T) {
	t.Run("nothing loaded is a no-op", func(t *testing.T) {
		u := &mockUI{}
		st, err := factory.SelectAction(u, factory.State{}, "Basic")
		require.NoError(t, err)
		assert.Nil(t, st.Selected)
		u.AssertExpectations(t)
	})

	t.Run("found", func(t *testing.T) {
		u := &mockUI{}
		u.On("PresentTemplateDetails",
			"Template: Web\n\nDescription:\nsite\n\nFiles to be created:\n• index.html\n").Return()

		st, err := factory.SelectAction(u, loadedState(t), "Web")
		require.NoError(t, err)
		u.AssertExpectations(t)
		assert.Equal(t, "Web", st.Selected.Name)
	})

	t.Run("not found keeps selection", func(t *testing.T) {
		u := &mockUI{}
		u.On("ReportWarning", prefixed(`template "web" not found`)).Return()

		prev := loadedState(t)
		st, err := factory.SelectAction(u, prev, "web")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
		u.AssertExpectations(t)
		assert.Same(t, prev.Selected, st.Selected)
	})
}

func TestCreateAction_Preconditions(t *testing.T) {
	loaded := loadedState(t)
	unselected := factory.State{Catalog: loaded.Catalog}
	empty := factory.State{Catalog: &types.Catalog{Records: []types.TemplateRecord{}}}

	tests := []struct {
		name     string
		state    factory.State
		project  string
		wantMsg  string
		wantCode errors.ErrorCode
	}{
		{"not loaded wins over blank name", factory.State{}, "  ", factory.MsgLoadTemplatesFirst, errors.ErrCatalogNotLoaded},
		{"empty catalog is not loaded", empty, "demo", factory.MsgLoadTemplatesFirst, errors.ErrCatalogNotLoaded},
		{"blank name wins over no selection", unselected, "   ", factory.MsgEnterProjectName, errors.ErrEmptyProjectName},
		{"no selection", unselected, "demo", factory.MsgSelectTemplate, errors.ErrNoTemplateChosen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			u := &mockUI{}
			u.On("ReportWarning", tt.wantMsg).Return()

			result, err := factory.CreateAction(u, materialize.New(fsys, materialize.Options{}), tt.state, tt.project)

			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.True(t, errors.IsWarning(err))
			u.AssertExpectations(t)

			_, statErr := fsys.Stat("demo")
			assert.Error(t, statErr, "no directory may be created")
		})
	}
}

func TestCreateAction_Success(t *testing.T) {
	fsys := filesystem.NewMemory()
	u := &mockUI{}
	u.On("ReportSuccess", "Project 'demo' created successfully!").Return()

	result, err := factory.CreateAction(u, materialize.New(fsys, materialize.Options{}), loadedState(t), "  demo ")
	require.NoError(t, err)

	u.AssertExpectations(t)
	assert.Equal(t, 2, result.FilesWritten)
	data, err := fsys.ReadFile("demo/src/main.txt")
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))
}

func TestCreateAction_DryRun(t *testing.T) {
	fsys := filesystem.NewMemory()
	u := &mockUI{}
	u.On("ReportSuccess", "Dry run for project 'demo' complete, 2 file(s) would be written").Return()

	m := materialize.New(fsys, materialize.Options{DryRun: true})
	result, err := factory.CreateAction(u, m, loadedState(t), "demo")
	require.NoError(t, err)

	u.AssertExpectations(t)
	assert.True(t, result.DryRun)
	_, statErr := fsys.Stat("demo")
	assert.Error(t, statErr)
}

func TestCreateAction_IOFailure(t *testing.T) {
	st := loadedState(t)
	partial := &types.MaterializeResult{Template: "Basic", FilesWritten: 1}
	ioErr := errors.Wrap(stderrors.New("disk full"), errors.ErrMaterializeIO, "cannot write demo/src/main.txt")

	m := &mockMaterializer{}
	m.On("Materialize", st.Selected, "demo").Return(partial, ioErr)
	u := &mockUI{}
	u.On("ReportError", "Error creating project: cannot write demo/src/main.txt: disk full").Return()

	result, err := factory.CreateAction(u, m, st, "demo")

	assert.Same(t, partial, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMaterializeIO))
	u.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestCreateAction_MaterializerWarning(t *testing.T) {
	st := loadedState(t)
	m := &mockMaterializer{}
	m.On("Materialize", st.Selected, "demo").
		Return(nil, errors.New(errors.ErrTemplateNotFound, "template vanished"))
	u := &mockUI{}
	u.On("ReportWarning", "template vanished").Return()

	_, err := factory.CreateAction(u, m, st, "demo")
	require.Error(t, err)
	u.AssertExpectations(t)
}
