package tmplfactory

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Create project directories from a template catalog"
	MsgListShort        = "List the templates in a catalog"
	MsgShowShort        = "Show the details of one template"
	MsgInteractiveShort = "Create a project by answering prompts"
	MsgConfigShort      = "Print the effective configuration as TOML"
	MsgSchemaShort      = "Print the JSON Schema that catalogs are validated against"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Print the man page"
	MsgVersionShort     = "Print version information"

	// Status messages
	MsgVersionFormat = "tmplfactory %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrCreateFlags    = "--templates, --template and --project must be given together (missing %s)"
	MsgErrNoTemplatesSrc = "no template catalog given: use --templates or set templates.path in the config"
	MsgErrLoadConfig     = "cannot load configuration"
	MsgErrBadFormat      = "invalid output format"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Show what would be written without touching the filesystem"
	MsgFlagConfig      = "Read configuration from this TOML file"
	MsgFlagFormat      = "Output format, one of: %s"
	MsgFlagTemplates   = "Template catalog file (.json, .jsonc, .yaml)"
	MsgFlagTemplate    = "Name of the template to materialize"
	MsgFlagProject     = "Project directory to create"
	MsgFlagOnly        = "Only write files matching this glob (repeatable, ** allowed)"
	MsgFlagStrictPaths = "Reject template files that are absolute or escape the project with .."
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
