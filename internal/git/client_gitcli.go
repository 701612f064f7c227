package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CLIClient runs the external git tool, one process at a time.
type CLIClient struct {
	binary string
	dir    string
}

// NewCLIClient creates a client that runs binary ("git" when empty).
func NewCLIClient(binary string) *CLIClient {
	if binary == "" {
		binary = "git"
	}
	return &CLIClient{binary: binary}
}

func (c *CLIClient) WorkDir() string {
	return c.dir
}

func (c *CLIClient) Init(ctx context.Context, dir, branch string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create repository directory: %w", err)
	}
	c.dir = dir
	return c.run(ctx, nil, "init", "-b", branch)
}

func (c *CLIClient) ConfigureIdentity(ctx context.Context, name, email string) error {
	if name != "" {
		if err := c.run(ctx, nil, "config", "user.name", name); err != nil {
			return err
		}
	}
	if email != "" {
		if err := c.run(ctx, nil, "config", "user.email", email); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLIClient) StageAll(ctx context.Context) error {
	return c.run(ctx, nil, "add", "--all", ".")
}

// Commit passes the date both as --date (author) and GIT_COMMITTER_DATE.
// The date is rendered in the local zone, which git assumes for zone-less dates.
func (c *CLIClient) Commit(ctx context.Context, message string, when time.Time) error {
	date := when.Local().Format(CommitDateLayout)
	return c.run(ctx, []string{"GIT_COMMITTER_DATE=" + date},
		"commit", "--quiet", "-m", message, "--date", date)
}

func (c *CLIClient) AddRemote(ctx context.Context, name, url string) error {
	return c.run(ctx, nil, "remote", "add", name, url)
}

func (c *CLIClient) RenameBranch(ctx context.Context, newName string) error {
	return c.run(ctx, nil, "branch", "-M", newName)
}

func (c *CLIClient) Push(ctx context.Context, remote, branch string) error {
	return c.run(ctx, nil, "push", "-u", remote, branch)
}

func (c *CLIClient) run(ctx context.Context, env []string, args ...string) error {
	cmd := exec.CommandContext(ctx, c.binary, append([]string{"-C", c.dir}, args...)...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		err = nil
	}
	return &CommandError{
		Command:  append([]string{c.binary}, args...),
		ExitCode: exitCode,
		Output:   strings.TrimSpace(string(out)),
		Err:      err,
	}
}
