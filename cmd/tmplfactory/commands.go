package tmplfactory

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tmplfactory/internal/version"
	"github.com/arthur-debert/tmplfactory/pkg/catalog"
	"github.com/arthur-debert/tmplfactory/pkg/cobrax/topics"
	"github.com/arthur-debert/tmplfactory/pkg/config"
	"github.com/arthur-debert/tmplfactory/pkg/errors"
	"github.com/arthur-debert/tmplfactory/pkg/factory"
	"github.com/arthur-debert/tmplfactory/pkg/filesystem"
	"github.com/arthur-debert/tmplfactory/pkg/logging"
	"github.com/arthur-debert/tmplfactory/pkg/materialize"
	"github.com/arthur-debert/tmplfactory/pkg/types"
	"github.com/arthur-debert/tmplfactory/pkg/ui"
	jsonui "github.com/arthur-debert/tmplfactory/pkg/ui/json"
	"github.com/arthur-debert/tmplfactory/pkg/ui/prompt"
)

//go:embed topics
var topicsFS embed.FS

// ReportedError wraps a failure that was already shown to the user, so the
// caller only needs to set the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// app holds flag values and the configuration shared by all commands.
type app struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string

	templatesPath string
	templateName  string
	projectName   string
	only          []string
	strictPaths   bool

	cfg *config.Config
	fs  types.FS
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "tmplfactory",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE:              a.runCreate,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&a.format, "format", ui.FormatAuto.String(), fmt.Sprintf(MsgFlagFormat, strings.Join(ui.FormatNames(), ", ")))
	pf.StringVar(&a.templatesPath, "templates", "", MsgFlagTemplates)
	_ = rootCmd.MarkPersistentFlagFilename("templates", "json", "jsonc", "yaml", "yml")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	// Create flags
	f := rootCmd.Flags()
	f.StringVarP(&a.templateName, "template", "t", "", MsgFlagTemplate)
	f.StringVarP(&a.projectName, "project", "p", "", MsgFlagProject)
	f.StringArrayVar(&a.only, "only", nil, MsgFlagOnly)
	f.BoolVar(&a.strictPaths, "strict-paths", false, MsgFlagStrictPaths)
	_ = rootCmd.RegisterFlagCompletionFunc("template", a.completeTemplateNames)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newShowCmd())
	rootCmd.AddCommand(a.newInteractiveCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newSchemaCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	initTopics(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// initTopics installs the embedded help topics. Markdown is rendered with
// glamour only when stdout is a terminal.
func initTopics(rootCmd *cobra.Command) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	m, err := topics.Load(topicsFS, "topics", topics.Options{Renderer: renderer})
	if err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd)
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// setup loads the configuration, letting explicitly set flags win, and
// configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if changed(cmd, "templates") {
		overrides["templates.path"] = a.templatesPath
	}
	if changed(cmd, "only") {
		overrides["materialize.only"] = a.only
	}
	if changed(cmd, "strict-paths") {
		overrides["materialize.strict_paths"] = a.strictPaths
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
	}
	a.cfg = cfg

	logging.SetupLoggerWithFile(a.verbosity, cfg.Logging.File)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrBadFormat)
	}
	return ui.NewRenderer(format, w)
}

func (a *app) materializer() *materialize.Materializer {
	return materialize.New(a.fs, materialize.Options{
		DryRun:      a.dryRun,
		StrictPaths: a.cfg.Materialize.StrictPaths,
		Only:        a.cfg.Materialize.Only,
		DirMode:     a.cfg.Materialize.DirMode.Perm(),
		FileMode:    a.cfg.Materialize.FileMode.Perm(),
	})
}

// loadCatalog reads the catalog at path, falling back to the configured one.
func (a *app) loadCatalog(path string) (*types.Catalog, error) {
	if path == "" {
		path = a.cfg.Templates.Path
	}
	if path == "" {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoTemplatesSrc)
	}
	return catalog.LoadFile(a.fs, path)
}

// runCreate is the non-interactive create: load, find, materialize.
func (a *app) runCreate(cmd *cobra.Command, args []string) error {
	if !changed(cmd, "template") && !changed(cmd, "project") && !changed(cmd, "templates") {
		_ = cmd.Help()
		return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
	}

	var missing []string
	if a.cfg.Templates.Path == "" {
		missing = append(missing, "--templates")
	}
	if !changed(cmd, "template") {
		missing = append(missing, "--template")
	}
	if !changed(cmd, "project") {
		missing = append(missing, "--project")
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrCreateFlags, strings.Join(missing, ", "))
	}

	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	c, err := a.loadCatalog("")
	if err != nil {
		return err
	}
	record, err := catalog.FindByName(c, a.templateName)
	if err != nil {
		return err
	}

	var reporter types.UI = prompt.NewConsole(r)
	var held *heldSuccess
	if _, ok := r.(*jsonui.Renderer); ok {
		held = &heldSuccess{UI: reporter}
		reporter = held
	}

	st := factory.State{Catalog: c, Selected: record}
	result, err := factory.CreateAction(reporter, a.materializer(), st, a.projectName)
	if err != nil {
		if result != nil && len(result.Paths) > 0 {
			log.Warn().Strs("written", result.Paths).Msg("Project left partially written")
		}
		return &ReportedError{Err: err}
	}
	if held != nil {
		return r.RenderResult(createReport{Level: "success", Message: held.message, Result: result})
	}
	return r.RenderResult(result)
}

// heldSuccess keeps the success message instead of printing it, so JSON
// output can carry it inside the result document.
type heldSuccess struct {
	types.UI
	message string
}

func (h *heldSuccess) ReportSuccess(msg string) {
	h.message = msg
}

type createReport struct {
	Level   string                   `json:"level"`
	Message string                   `json:"message"`
	Result  *types.MaterializeResult `json:"result"`
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [catalog]",
		Short:   MsgListShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			c, err := a.loadCatalog(path)
			if err != nil {
				return err
			}
			return r.RenderResult(c)
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show <template-name>",
		Short:             MsgShowShort,
		Args:              cobra.ExactArgs(1),
		GroupID:           "core",
		ValidArgsFunction: a.completeTemplateNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			c, err := a.loadCatalog("")
			if err != nil {
				return err
			}
			record, err := catalog.FindByName(c, args[0])
			if err != nil {
				return err
			}
			return r.RenderResult(record)
		},
	}
}

func (a *app) newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   MsgInteractiveShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			console := prompt.NewConsole(r, prompt.WithDefaultPath(a.cfg.Templates.Path))
			session := factory.NewSession(console, a.fs, a.materializer())

			result, err := session.Run()
			if err != nil {
				if errors.IsErrorCode(err, errors.ErrUserInput) {
					return err
				}
				return &ReportedError{Err: err}
			}
			if result == nil {
				return nil
			}
			return r.RenderResult(result)
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Dump(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   MsgSchemaShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(catalog.Schema())
			return err
		},
	}
}

// completeTemplateNames completes template names from the catalog given by
// --templates or the configuration.
func (a *app) completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if cmd.Name() == "show" && len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path := a.templatesPath
	if path == "" {
		cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		path = cfg.Templates.Path
	}
	if path == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	c, err := catalog.LoadFile(a.fs, path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, name := range c.Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "TMPLFACTORY",
				Section: "1",
				Source:  "tmplfactory " + version.Version,
				Manual:  "tmplfactory manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
