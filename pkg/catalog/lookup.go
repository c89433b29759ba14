package catalog

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// FindByName returns the first record whose name equals name exactly
// (case-sensitive). A nil or empty catalog never matches.
func FindByName(c *types.Catalog, name string) (*types.TemplateRecord, error) {
	if c != nil {
		for i := range c.Records {
			if c.Records[i].Name == name {
				return &c.Records[i], nil
			}
		}
	}

	err := errors.Newf(errors.ErrTemplateNotFound, "template %q not found", name).
		WithDetail("template", name)
	if suggestions := Suggest(c, name); len(suggestions) > 0 {
		err.Message += fmt.Sprintf(" (did you mean: %s?)", strings.Join(suggestions, ", "))
		err.WithDetail("suggestions", suggestions)
	}
	return nil, err
}

// Suggest returns up to three catalog names that fuzzily match name, best first.
func Suggest(c *types.Catalog, name string) []string {
	if c.IsEmpty() || name == "" {
		return nil
	}
	names := c.Names()
	var out []string
	for _, m := range fuzzy.Find(name, names) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
