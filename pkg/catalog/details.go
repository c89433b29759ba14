package catalog

import (
	"strings"

	"github.com/arthur-debert/tmplfactory/pkg/types"
)

// FormatDetails renders the human-readable summary of a template:
//
//	Template: Basic
//
//	Description:
//	A minimal project
//
//	Files to be created:
//	• README.md
//	• src/main.txt
func FormatDetails(r types.TemplateRecord) string {
	var b strings.Builder
	b.WriteString("Template: ")
	b.WriteString(r.Name)
	b.WriteString("\n\nDescription:\n")
	b.WriteString(r.Description)
	b.WriteString("\n\nFiles to be created:\n")
	for _, f := range r.Files {
		b.WriteString("• ")
		b.WriteString(f.Name)
		b.WriteString("\n")
	}
	return b.String()
}
