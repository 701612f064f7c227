package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/masmgr/contribgen-go/config"
	"github.com/masmgr/contribgen-go/internal/git"
	"github.com/masmgr/contribgen-go/internal/output"
	"github.com/urfave/cli/v2"
)

func init() {
	// -v is taken by --verbose.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "contribgen",
		Usage:   "Populate a Git repository with back-dated commits",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ContributeCmd(),
			RealisticCmd(),
		},
		Flags:  append(globalFlags(), contributeFlags()...),
		Before: rejectMisplacedFlags,
		Action: contributeAction,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Path to a .env file (default: .env when present)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log every planned day and recorded commit",
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repository",
			Aliases: []string{"r"},
			Usage:   "Remote repository URL to push to",
		},
		&cli.StringFlag{
			Name:    "user_name",
			Aliases: []string{"un"},
			Usage:   "Overrides user.name in the generated repository (default: $GIT_USER_NAME)",
		},
		&cli.StringFlag{
			Name:    "user_email",
			Aliases: []string{"ue"},
			Usage:   "Overrides user.email in the generated repository (default: $GIT_USER_EMAIL)",
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "Directory of the generated repository (default: derived from the remote URL or the current time)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Git backend (cli, gogit)",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Random seed for a reproducible schedule (default: time based)",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the planned commits without touching any repository",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of planned commits to list in dry-run output (0: all)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Run log file; empty string disables it (default: from config)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch strings.ToLower(s) {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads the .env file and configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if _, err := config.LoadEnv(c.String("env-file")); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("backend") {
		cfg.Repository.Backend = c.String("backend")
	}
	return cfg, nil
}

// parseBackend reads the backend named in cfg.
func parseBackend(cfg *config.Config) (git.Backend, error) {
	backend, err := git.ParseBackend(cfg.Repository.Backend)
	if err != nil {
		return "", &config.ValidationError{Field: "backend", Value: cfg.Repository.Backend, Reason: err.Error()}
	}
	return backend, nil
}

// rejectMisplacedFlags fails when generator flags were given before a
// subcommand. They are registered on the app for the default action, but a
// subcommand only reads its own flags and would silently ignore them.
func rejectMisplacedFlags(c *cli.Context) error {
	name := c.Args().First()
	if name == "" || c.App.Command(name) == nil {
		return nil
	}
	for _, f := range contributeFlags() {
		flag := f.Names()[0]
		if c.IsSet(flag) {
			return fmt.Errorf("flag --%s must follow the %s command", flag, name)
		}
	}
	return nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
