// Package cmd provides the root command and CLI setup for impactplan.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/impactplan/internal/adapter"
	"github.com/mouse-blink/impactplan/internal/config"
	"github.com/mouse-blink/impactplan/internal/controller"
	"github.com/mouse-blink/impactplan/internal/domain"
	"github.com/mouse-blink/impactplan/internal/logger"
	m "github.com/mouse-blink/impactplan/internal/model"
)

var changes adapter.ChangesAdapter
var planStore adapter.PlanStore

// Swapped in tests.
var buildPlanner = defaultPlanner
var newUI = controller.NewUI
var lookupEnv config.LookupFunc = os.LookupEnv

func init() {
	changes = adapter.NewLocalChangesAdapter()
	planStore = adapter.NewPlanStore()
}

var configFlag string
var servicesDirFlag string
var pushFlag bool
var hasSecretsFlag bool
var formatFlag string
var fromFileFlag string
var diffFlag string
var debugFlag bool
var logFormatFlag string
var outputFlag string
var githubOutputFlag string

const rootLongDescription = `Impactplan reads the paths changed by a commit or pull request and decides
which behavior test suites must run: the core suite and each language
binding (java, python, nodejs), each with the service cases it needs.

Changed paths come from arguments, a newline separated list (--from-file,
"-" for stdin) or a unified diff (--diff). The plan is printed as JSON when
stdout is not a terminal.

Environment:
  GITHUB_IS_PUSH=true       run every case (push events)
  GITHUB_HAS_SECRETS=true   keep cases whose setup needs secrets
  GITHUB_OUTPUT             file used by --github-output`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "impactplan [changed paths...]",
		Short:        "Plan behavior tests for a change set",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, args, controller.FormatAuto)
			if err != nil {
				return err
			}

			return runPlan(cmd.Context(), s)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "config file (default "+config.DefaultFile+" when present)")
	flags.StringVar(&servicesDirFlag, "services-dir", "", "directory holding <service>/<setup>/action.yml")
	flags.BoolVar(&pushFlag, "push", false, "treat the change as a push event and run every case")
	flags.BoolVar(&hasSecretsFlag, "has-secrets", false, "keep cases that require secrets")
	flags.StringVarP(&formatFlag, "format", "f", string(controller.FormatAuto), "output format: auto, json, table, tui")
	flags.StringVar(&fromFileFlag, "from-file", "", "read changed paths from a file, one per line (- for stdin)")
	flags.StringVar(&diffFlag, "diff", "", "read changed paths from a unified diff (- for stdin)")
	flags.BoolVar(&debugFlag, "debug", false, "log every classification decision to stderr")
	flags.StringVar(&logFormatFlag, "log-format", "text", "log format on stderr: text or json")

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "also write the plan as JSON to this file")
	cmd.Flags().StringVar(&githubOutputFlag, "github-output", "", "append <key>=<plan> to $GITHUB_OUTPUT")

	cmd.AddCommand(newHintCmd())
	cmd.AddCommand(newCasesCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// session is the resolved state shared by every command.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	planner domain.Planner
	ui      controller.UI
	args    domain.PlanArgs
}

// newSession resolves config, input and collaborators. fallback replaces
// --format auto for commands whose output is only meant for people.
func newSession(cmd *cobra.Command, args []string, fallback controller.Format) (*session, error) {
	if logFormatFlag != "text" && logFormatFlag != "json" {
		return nil, fmt.Errorf("unknown log format %q (expected text, json)", logFormatFlag)
	}

	log := logger.Setup(logger.Config{
		Output: cmd.ErrOrStderr(),
		Debug:  debugFlag,
		JSON:   logFormatFlag == "json",
	})

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	format, err := controller.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	if format == controller.FormatAuto {
		format = fallback
	}

	paths, err := readChanges(cmd, args)
	if err != nil {
		return nil, err
	}

	p, err := buildPlanner(cfg, log)
	if err != nil {
		return nil, err
	}

	log.Debug("session.ready",
		"changes", len(paths),
		"services_dir", cfg.ServicesDir,
		"push", cfg.IsPush,
		"has_secrets", cfg.HasSecrets,
		"format", format,
	)

	return &session{
		cfg:     cfg,
		log:     log,
		planner: p,
		ui:      newUI(cmd, format, controller.IsTTY(cmd.OutOrStdout())),
		args: domain.PlanArgs{
			Changes:     paths,
			ServicesDir: m.Path(cfg.ServicesDir),
			IsPush:      cfg.IsPush,
			HasSecrets:  cfg.HasSecrets,
		},
	}, nil
}

// resolveConfig applies defaults, the config file, the environment and then
// explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag, configFlag != "")
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.WithEnv(lookupEnv)

	flags := cmd.Flags()
	if flags.Changed("services-dir") {
		cfg.ServicesDir = servicesDirFlag
	}

	if flags.Changed("push") {
		cfg.IsPush = pushFlag
	}

	if flags.Changed("has-secrets") {
		cfg.HasSecrets = hasSecretsFlag
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func defaultPlanner(cfg config.Config, log *slog.Logger) (domain.Planner, error) {
	classifier, err := domain.NewClassifier(cfg.Layout, log)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	catalog := adapter.NewLocalCatalogAdapter(cfg.SecretMarker)

	return domain.NewPlanner(catalog, classifier, cfg.Runners, log), nil
}

// readChanges merges positional paths with --from-file and --diff input,
// keeping first-seen order.
func readChanges(cmd *cobra.Command, args []string) ([]m.Path, error) {
	raw := append([]string(nil), args...)

	if fromFileFlag != "" {
		paths, err := withInput(cmd, fromFileFlag, changes.FromList)
		if err != nil {
			return nil, fmt.Errorf("read changed paths: %w", err)
		}

		raw = appendPaths(raw, paths)
	}

	if diffFlag != "" {
		paths, err := withInput(cmd, diffFlag, changes.FromDiff)
		if err != nil {
			return nil, fmt.Errorf("read diff: %w", err)
		}

		raw = appendPaths(raw, paths)
	}

	return changes.FromArgs(raw), nil
}

func withInput(cmd *cobra.Command, name string, read func(io.Reader) ([]m.Path, error)) ([]m.Path, error) {
	if name == "-" {
		return read(cmd.InOrStdin())
	}

	// #nosec G304 - the path is supplied by the user
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return read(f)
}

func appendPaths(dst []string, paths []m.Path) []string {
	for _, p := range paths {
		dst = append(dst, string(p))
	}

	return dst
}

func runPlan(ctx context.Context, s *session) error {
	result, err := s.planner.Plan(ctx, s.args)
	if err != nil {
		return err
	}

	if outputFlag != "" {
		if err := planStore.Save(m.Path(outputFlag), result.Plan); err != nil {
			return err
		}

		s.log.Info("plan.saved", "path", outputFlag)
	}

	if githubOutputFlag != "" {
		if s.cfg.GitHubOutput == "" {
			return fmt.Errorf("--github-output needs %s to be set", config.EnvGitHubOutput)
		}

		if err := planStore.WriteGitHubOutput(m.Path(s.cfg.GitHubOutput), githubOutputFlag, result.Plan); err != nil {
			return err
		}
	}

	return s.ui.DisplayPlan(result)
}
