package syncinstall

import (
	"embed"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/syncinstall/internal/version"
	"github.com/arthur-debert/syncinstall/pkg/cobrax/topics"
	"github.com/arthur-debert/syncinstall/pkg/config"
	"github.com/arthur-debert/syncinstall/pkg/errors"
	"github.com/arthur-debert/syncinstall/pkg/executor"
	"github.com/arthur-debert/syncinstall/pkg/filesystem"
	"github.com/arthur-debert/syncinstall/pkg/handlers/registry"
	"github.com/arthur-debert/syncinstall/pkg/logging"
	"github.com/arthur-debert/syncinstall/pkg/paths"
	"github.com/arthur-debert/syncinstall/pkg/plan"
	"github.com/arthur-debert/syncinstall/pkg/state"
	"github.com/arthur-debert/syncinstall/pkg/types"
	"github.com/arthur-debert/syncinstall/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var helpTopics embed.FS

// deps are the seams tests replace. Zero values mean the real thing.
type deps struct {
	fs     types.FS
	runner executor.Runner
}

type rootOptions struct {
	verbosity  int
	execute    bool
	format     string
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{})
}

func newRootCmd(d deps) *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:     "syncinstall CURRENT_STATE TARGET_STATE",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Console logging first: loading the config already logs
			runID := logging.SetupLogger(logging.Options{
				Verbosity: opts.verbosity,
				Console:   cmd.ErrOrStderr(),
			})

			loaded, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			cfg = loaded

			if cfg.Logging.File {
				logPath := paths.New().LogFilePath()
				if err := logging.AttachLogFile(logPath); err != nil {
					log.Warn().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
				}
			}
			log.Debug().Str("command", cmd.Name()).Str("run_id", runID).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, cfg, d, args[0], args[1], opts.execute)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVar(&opts.execute, "go", false, MsgFlagGo)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd(func() *config.Config { return cfg }))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(helpTopics, "topics")
	if err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, topicsFS, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// loadConfig layers the config file, the environment and command-line flags
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	loadOpts := config.Options{
		File:      paths.New().ConfigFilePath(),
		Overrides: map[string]interface{}{},
	}
	if opts.configPath != "" {
		loadOpts.File = paths.ExpandHome(opts.configPath)
		loadOpts.Required = true
	}
	if cmd.Flags().Changed("format") {
		loadOpts.Overrides["output.format"] = opts.format
	}

	cfg, err := config.Load(loadOpts)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
	}
	return cfg, nil
}

// renderedError marks a failure already written to stderr in the selected
// output format
type renderedError struct {
	error
}

func (e renderedError) Unwrap() error {
	return e.error
}

// AlreadyRendered reports whether err was printed by the command itself
func AlreadyRendered(err error) bool {
	var rendered renderedError
	return stderrors.As(err, &rendered)
}

// runSync parses both states and walks the plan. Nothing is printed for a
// state that fails to parse. Failures are rendered on stderr in the output
// format.
func runSync(cmd *cobra.Command, cfg *config.Config, d deps, currentPath, targetPath string, execute bool) error {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	errRenderer, err := ui.NewRenderer(format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if err := syncStates(cmd, cfg, d, renderer, currentPath, targetPath, execute); err != nil {
		if rerr := errRenderer.RenderError(err); rerr != nil {
			return err
		}
		return renderedError{err}
	}
	return nil
}

func syncStates(cmd *cobra.Command, cfg *config.Config, d deps, renderer ui.Renderer, currentPath, targetPath string, execute bool) error {
	logger := logging.GetLogger("cli")

	if !execute {
		if err := renderer.RenderMessage(MsgDryRunBanner); err != nil {
			return errors.Wrap(err, errors.ErrRenderOutput, "failed to write to stdout")
		}
	}

	set, err := registry.Build(cfg)
	if err != nil {
		return err
	}
	parser := state.NewParser(set)

	fsys := d.fs
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	current, err := parseStateFile(fsys, parser, currentPath)
	if err != nil {
		return err
	}
	target, err := parseStateFile(fsys, parser, targetPath)
	if err != nil {
		return err
	}

	runner := d.runner
	if runner == nil {
		runner = &executor.ProcessRunner{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}
	}

	exec := executor.New(executor.Options{
		DryRun:   !execute,
		Runner:   runner,
		Reporter: renderer,
	})
	summary, err := exec.Execute(cmd.Context(), plan.NewPlanner(set).Steps(current, target))
	if execute {
		logger.Info().Dur("duration", summary.Duration).Msgf(MsgSummaryExecute, summary.Executed, summary.Planned)
	} else {
		logger.Info().Dur("duration", summary.Duration).Msgf(MsgSummaryDryRun, summary.Planned)
	}
	return err
}

func parseStateFile(fsys types.FS, parser *state.Parser, path string) (*state.State, error) {
	done := logging.LogOperationStart(logging.GetLogger("cli"), "parse "+path)
	defer done()

	content, err := filesystem.ReadText(fsys, path)
	if err != nil {
		return nil, err
	}
	s, err := parser.Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrParseState, MsgErrParseState, path).
			WithDetail("path", path)
	}
	return s, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newGenConfigCmd(current func() *config.Config) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}
			content, err := config.GenerateConfigContent(current())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
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
