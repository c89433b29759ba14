// Package catalog loads template catalogs and looks templates up by name.
//
// A catalog document is a JSON array of template objects:
//
//	[
//	  {
//	    "templateName": "Basic",
//	    "templateDescription": "A minimal project",
//	    "TemplateFiles": [
//	      {"name": "README.md", "content": "hello"},
//	      {"name": "src/main.txt", "content": "world"}
//	    ]
//	  }
//	]
//
// Documents are validated against an embedded JSON Schema before they are
// decoded, so any shape problem surfaces as a single MALFORMED_INPUT error
// naming the offending location. Comments and trailing commas (JSONC) are
// tolerated, and the same structure may be written in YAML.
package catalog
