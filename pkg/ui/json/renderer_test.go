package json_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	uijson "github.com/arthur-debert/tmplfactory/pkg/ui/json"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestRenderResult_Catalog(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := uijson.New(buf)
	require.NoError(t, err)

	c := &types.Catalog{
		Source:  "templates.json",
		Records: []types.TemplateRecord{{Name: "Basic"}, {Name: "Web"}},
	}
	require.NoError(t, r.RenderResult(c))

	out := decode(t, buf)
	assert.Equal(t, "templates.json", out["source"])
	assert.Equal(t, []interface{}{"Basic", "Web"}, out["templates"])
}

func TestRenderResult_EmptyNamesEncodeAsArray(t *testing.T) {
	for _, v := range []interface{}{(*types.Catalog)(nil), []string(nil)} {
		buf := &bytes.Buffer{}
		r, err := uijson.New(buf)
		require.NoError(t, err)

		require.NoError(t, r.RenderResult(v))
		assert.Equal(t, []interface{}{}, decode(t, buf)["templates"])
	}
}

func TestRenderResult_RecordKeepsCatalogShape(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := uijson.New(buf)
	require.NoError(t, err)

	rec := types.TemplateRecord{
		Name:        "Basic",
		Description: "desc",
		Files:       []types.FileSpec{{Name: "a.txt", Content: "<b>"}},
	}
	require.NoError(t, r.RenderResult(rec))

	assert.Contains(t, buf.String(), `"templateName": "Basic"`)
	assert.Contains(t, buf.String(), `"TemplateFiles"`)
	assert.Contains(t, buf.String(), `"content": "<b>"`)
}

func TestRenderError(t *testing.T) {
	t.Run("coded error with details", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r, err := uijson.New(buf)
		require.NoError(t, err)

		e := errors.New(errors.ErrMaterializeIO, "cannot write").WithDetail("path", "demo/a.txt")
		require.NoError(t, r.RenderError(e))

		out := decode(t, buf)
		assert.Equal(t, "MATERIALIZE_IO", out["code"])
		assert.Equal(t, "[MATERIALIZE_IO] cannot write", out["error"])
		assert.Equal(t, map[string]interface{}{"path": "demo/a.txt"}, out["details"])
	})

	t.Run("plain error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		r, err := uijson.New(buf)
		require.NoError(t, err)

		require.NoError(t, r.RenderError(stderrors.New("boom")))
		out := decode(t, buf)
		assert.Equal(t, "UNKNOWN", out["code"])
		assert.NotContains(t, out, "details")
	})
}

func TestRenderMessages(t *testing.T) {
	tests := []struct {
		level  string
		render func(r *uijson.Renderer) error
	}{
		{"info", func(r *uijson.Renderer) error { return r.RenderMessage("m") }},
		{"success", func(r *uijson.Renderer) error { return r.RenderSuccess("m") }},
		{"warning", func(r *uijson.Renderer) error { return r.RenderWarning("m") }},
		{"error", func(r *uijson.Renderer) error { return r.RenderFailure("m") }},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			r, err := uijson.New(buf)
			require.NoError(t, err)

			require.NoError(t, tt.render(r))
			out := decode(t, buf)
			assert.Equal(t, tt.level, out["level"])
			assert.Equal(t, "m", out["message"])
		})
	}
}
