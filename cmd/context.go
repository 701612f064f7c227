package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path"
	"strings"
	"time"

	"github.com/masmgr/contribgen-go/config"
	"github.com/masmgr/contribgen-go/internal/git"
	"github.com/masmgr/contribgen-go/internal/output"
	"github.com/masmgr/contribgen-go/internal/schedule"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const dirTimestampLayout = "2006-01-02-15-04-05"

// Command names, also used as directory prefixes when no remote is given.
const (
	commandContribute = "contribute"
	commandRealistic  = "realistic"
)

var dirPrefixes = map[string]string{
	commandContribute: "repository",
	commandRealistic:  "realistic-contributions",
}

// noiseSeedSalt separates the auxiliary noise stream from the schedule
// stream, so a dry run plans exactly the commits a real run records.
const noiseSeedSalt = 0x6e6f697365

// newClient is replaced in tests.
var newClient = git.NewClient

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic of both generators: configuration,
// identity, target directory, randomness and the run log.
type CommandContext struct {
	Command   string
	Config    *config.Config
	Dir       string
	RemoteURL string
	UserName  string
	UserEmail string
	Token     string
	Backend   git.Backend
	Seed      uint64
	Rand      *rand.Rand
	Now       time.Time
	DryRun    bool
	Output    output.OutputOptions
	Logger    *logrus.Logger

	closeLog func() error
}

// NewCommandContext creates a context from CLI flags.
// apply copies command-specific flags into the configuration. The merged
// configuration is validated before anything is written to disk.
func NewCommandContext(c *cli.Context, command string, apply func(*cli.Context, *config.Config)) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if apply != nil {
		apply(c, cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := parseBackend(cfg)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seed := c.Uint64("seed")
	if !c.IsSet("seed") {
		seed = uint64(now.UnixNano())
	}

	cc := &CommandContext{
		Command:   command,
		Config:    cfg,
		RemoteURL: strings.TrimSpace(c.String("repository")),
		UserName:  flagOrEnv(c, "user_name", config.EnvUserName),
		UserEmail: flagOrEnv(c, "user_email", config.EnvUserEmail),
		Token:     os.Getenv(config.EnvToken),
		Backend:   backend,
		Seed:      seed,
		Rand:      schedule.NewSource(seed),
		Now:       now,
		DryRun:    c.Bool("dry-run"),
		Output:    OutputOptions(c),
	}

	cc.Dir = c.String("dir")
	if cc.Dir == "" {
		cc.Dir = repositoryDirName(cc.RemoteURL, dirPrefixes[command], now)
	}

	logFile := cfg.Logging.ContributeFile
	if command == commandRealistic {
		logFile = cfg.Logging.RealisticFile
	}
	if c.IsSet("log-file") {
		logFile = c.String("log-file")
	}
	if cc.DryRun {
		logFile = ""
	}

	level := cfg.Logging.Level
	if c.Bool("verbose") {
		level = "debug"
	}
	cc.Logger, cc.closeLog, err = newLogger(logFile, level)
	if err != nil {
		return nil, err
	}
	return cc, nil
}

// Close releases the run log.
func (cc *CommandContext) Close() error {
	if cc.closeLog == nil {
		return nil
	}
	return cc.closeLog()
}

// NoiseSource returns the random source for auxiliary file touches.
func (cc *CommandContext) NoiseSource() *rand.Rand {
	return schedule.NewSource(cc.Seed ^ noiseSeedSalt)
}

// NewClient creates the git client for the configured backend.
func (cc *CommandContext) NewClient() git.Client {
	return newClient(git.ClientOptions{
		Backend: cc.Backend,
		Binary:  cc.Config.Repository.GitBinary,
		Token:   cc.Token,
	})
}

// flagOrEnv falls back to the environment for values that only arrived
// through the .env file, which is loaded after flags are parsed.
func flagOrEnv(c *cli.Context, name, env string) string {
	if v := c.String(name); v != "" {
		return v
	}
	return os.Getenv(env)
}

// repositoryDirName names the working directory after the remote repository,
// or after the current time when there is no remote.
func repositoryDirName(remoteURL, prefix string, now time.Time) string {
	if remoteURL != "" {
		base := path.Base(strings.TrimRight(remoteURL, "/"))
		if i := strings.LastIndex(base, ":"); i >= 0 {
			base = base[i+1:]
		}
		base = strings.TrimSuffix(base, path.Ext(base))
		if base != "" && base != "." {
			return base
		}
	}
	return fmt.Sprintf("%s-%s", prefix, now.Format(dirTimestampLayout))
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}
