package types

// FileSpec is a single file declared by a template.
type FileSpec struct {
	// Name is the slash-separated path of the file, relative to the project root.
	Name string `json:"name" yaml:"name"`
	// Content is written verbatim as the full contents of the file.
	Content string `json:"content" yaml:"content"`
}

// TemplateRecord is one named template from a catalog.
type TemplateRecord struct {
	Name        string     `json:"templateName" yaml:"templateName"`
	Description string     `json:"templateDescription" yaml:"templateDescription"`
	Files       []FileSpec `json:"TemplateFiles" yaml:"TemplateFiles"`
}

// FileNames returns the relative paths of the template's files in declaration order.
func (r TemplateRecord) FileNames() []string {
	names := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		names = append(names, f.Name)
	}
	return names
}

// Catalog is the set of templates loaded from one source. A catalog is never
// mutated after it is built; loading again produces a new one.
type Catalog struct {
	// Source is the path the catalog was read from, empty for in-memory loads.
	Source  string
	Records []TemplateRecord
}

// Len returns the number of records, treating a nil catalog as empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// IsEmpty reports whether the catalog is nil or has no records.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// Names returns the template names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Records))
	for _, r := range c.Records {
		names = append(names, r.Name)
	}
	return names
}
