package catalog

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/logging"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	"github.com/muhammadmuzzammil1998/jsonc"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Load parses a JSON (or JSONC) catalog document. The returned catalog keeps
// the document's element order and has one record per array element.
func Load(data []byte) (*types.Catalog, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		// Only fall back to comment stripping when the input is not plain
		// JSON, so file contents in valid documents are never rewritten.
		data = stripTrailingCommas(jsonc.ToJSON(data))
	}
	return decode(data)
}

// LoadYAML parses a catalog written in YAML. The document must have the
// same structure as the JSON form.
func LoadYAML(data []byte) (*types.Catalog, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedInput, "invalid template catalog")
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedInput, "invalid template catalog")
	}
	return decode(normalized)
}

// LoadFile reads path from fsys and loads it, choosing the YAML parser for
// .yaml and .yml files and the JSON parser otherwise.
func LoadFile(fsys types.FS, path string) (*types.Catalog, error) {
	logger := logging.GetLogger("catalog")
	done := logging.LogOperationStart(logger, "catalog.load")
	defer done()

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read templates file %s", path).
			WithDetail("path", path)
	}

	var c *types.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = LoadYAML(data)
	default:
		c, err = Load(data)
	}
	if err != nil {
		if fe := asFactoryError(err); fe != nil {
			fe.WithDetail("path", path)
		}
		return nil, err
	}

	c.Source = path
	logger.Info().
		Str("path", path).
		Int("templates", c.Len()).
		Msg("Loaded template catalog")
	return c, nil
}

func decode(data []byte) (*types.Catalog, error) {
	schema, err := catalogSchema()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "catalog schema unavailable")
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedInput, "invalid template catalog")
	}
	if err := schema.Validate(instance); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedInput, "invalid template catalog")
	}

	var records []types.TemplateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedInput, "invalid template catalog")
	}
	if records == nil {
		records = []types.TemplateRecord{}
	}

	warnDuplicates(records)
	return &types.Catalog{Records: records}, nil
}

// warnDuplicates logs names that appear more than once. Lookups resolve to
// the first occurrence.
func warnDuplicates(records []types.TemplateRecord) {
	logger := logging.GetLogger("catalog")
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if first, ok := seen[r.Name]; ok {
			logger.Warn().
				Str("template", r.Name).
				Int("first", first).
				Int("duplicate", i).
				Msg("Duplicate template name, lookups will use the first one")
			continue
		}
		seen[r.Name] = i
	}
}

// stripTrailingCommas drops commas that directly precede a closing ']' or
// '}'. String literals are copied untouched.
func stripTrailingCommas(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString, escaped := false, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case ',':
			j := i + 1
			for j < len(data) && isJSONSpace(data[j]) {
				j++
			}
			if j < len(data) && (data[j] == ']' || data[j] == '}') {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func asFactoryError(err error) *errors.FactoryError {
	if fe, ok := err.(*errors.FactoryError); ok {
		return fe
	}
	return nil
}
