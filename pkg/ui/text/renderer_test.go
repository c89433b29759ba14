package text_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/style"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	"github.com/arthur-debert/tmplfactory/pkg/ui/text"
)

func newRenderer(t *testing.T) (*text.Renderer, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	r, err := text.New(buf)
	require.NoError(t, err)
	return r, buf
}

func basicRecord() types.TemplateRecord {
	return types.TemplateRecord{
		Name:        "Basic",
		Description: "A basic project",
		Files: []types.FileSpec{
			{Name: "README.md", Content: "# Readme"},
			{Name: "src/main.txt", Content: "hello"},
		},
	}
}

func TestRenderMessages(t *testing.T) {
	tests := []struct {
		name   string
		render func(r *text.Renderer) error
		want   string
	}{
		{
			name:   "message",
			render: func(r *text.Renderer) error { return r.RenderMessage("plain words") },
			want:   "plain words\n",
		},
		{
			name:   "success",
			render: func(r *text.Renderer) error { return r.RenderSuccess("Project 'demo' created successfully!") },
			want:   "Success: Project 'demo' created successfully!\n",
		},
		{
			name:   "warning",
			render: func(r *text.Renderer) error { return r.RenderWarning("Please enter a project name") },
			want:   "Warning: Please enter a project name\n",
		},
		{
			name:   "failure",
			render: func(r *text.Renderer) error { return r.RenderFailure("Error creating project: denied") },
			want:   "Error creating project: denied\n",
		},
		{
			name:   "plain error",
			render: func(r *text.Renderer) error { return r.RenderError(stderrors.New("boom")) },
			want:   "Error: boom\n",
		},
		{
			name: "coded error",
			render: func(r *text.Renderer) error {
				return r.RenderError(errors.New(errors.ErrTemplateNotFound, "template \"X\" not found"))
			},
			want: "Error: [TEMPLATE_NOT_FOUND] template \"X\" not found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newRenderer(t)
			require.NoError(t, tt.render(r))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderResult_Names(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		r, buf := newRenderer(t)
		c := &types.Catalog{Records: []types.TemplateRecord{basicRecord(), {Name: "Web"}}}

		require.NoError(t, r.RenderResult(c))
		assert.Equal(t, "Available templates:\n  • Basic\n  • Web\n", buf.String())
	})

	t.Run("name slice", func(t *testing.T) {
		r, buf := newRenderer(t)
		require.NoError(t, r.RenderResult([]string{"Only"}))
		assert.Equal(t, "Available templates:\n  • Only\n", buf.String())
	})

	t.Run("empty catalog", func(t *testing.T) {
		r, buf := newRenderer(t)
		require.NoError(t, r.RenderResult(&types.Catalog{}))
		assert.Equal(t, "No templates found.\n", buf.String())
	})
}

func TestRenderResult_Details(t *testing.T) {
	want := "Template: Basic\n\nDescription:\nA basic project\n\nFiles to be created:\n• README.md\n• src/main.txt\n"

	r, buf := newRenderer(t)
	rec := basicRecord()
	require.NoError(t, r.RenderResult(&rec))
	assert.Equal(t, want, buf.String())

	r, buf = newRenderer(t)
	require.NoError(t, r.RenderResult(rec))
	assert.Equal(t, want, buf.String())
}

func TestRenderResult_Materialized(t *testing.T) {
	t.Run("written", func(t *testing.T) {
		r, buf := newRenderer(t)
		res := &types.MaterializeResult{
			Template:     "Basic",
			Root:         "demo",
			ResolvedRoot: "/work/demo",
			FilesWritten: 2,
			Paths:        []string{"/work/demo/README.md", "/work/demo/src/main.txt"},
		}

		require.NoError(t, r.RenderResult(res))
		assert.Equal(t,
			"Created 2 file(s) in /work/demo\n  + /work/demo/README.md\n  + /work/demo/src/main.txt\n",
			buf.String())
	})

	t.Run("dry run with skipped", func(t *testing.T) {
		r, buf := newRenderer(t)
		res := &types.MaterializeResult{
			ResolvedRoot: "/work/demo",
			Paths:        []string{"/work/demo/README.md"},
			FilesWritten: 1,
			Skipped:      []string{"src/main.txt"},
			DryRun:       true,
		}

		require.NoError(t, r.RenderResult(res))
		assert.Equal(t,
			"Dry run: would create 1 file(s) in /work/demo\n  + /work/demo/README.md\n  - src/main.txt (skipped)\n",
			buf.String())
	})
}

func TestRenderResult_Fallback(t *testing.T) {
	r, buf := newRenderer(t)
	require.NoError(t, r.RenderResult(42))
	assert.Equal(t, "42\n", buf.String())
}

type bracketPainter struct{}

func (bracketPainter) Paint(role style.Role, s string) string {
	if role == style.RoleTitle {
		return "[" + s + "]"
	}
	return s
}

func TestNewPainted(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := text.NewPainted(buf, bracketPainter{})
	require.NoError(t, err)

	rec := basicRecord()
	require.NoError(t, r.RenderResult(&rec))
	assert.Equal(t,
		"[Template: Basic]\n\nDescription:\nA basic project\n\nFiles to be created:\n• README.md\n• src/main.txt\n",
		buf.String())
}
