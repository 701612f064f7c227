// Package git wraps the version-control operations needed to record
// fabricated history: init, identity, stage, back-dated commit and remote
// wiring. Two backends exist: the external git tool and go-git.
package git

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CommitDateLayout is the layout used to force author and committer dates.
const CommitDateLayout = "2006-01-02 15:04:05"

// Client is the version-control capability consumed by the recorder.
// Every method blocks until the operation finishes; operations must not be
// issued concurrently.
type Client interface {
	// Init creates dir if needed and initializes a repository in it whose
	// default branch is branch. Later calls operate inside dir.
	Init(ctx context.Context, dir, branch string) error
	// ConfigureIdentity sets the local author name and email. Empty values
	// are left untouched.
	ConfigureIdentity(ctx context.Context, name, email string) error
	// StageAll stages every change in the working tree.
	StageAll(ctx context.Context) error
	// Commit records the staged changes with author and committer dates
	// forced to when.
	Commit(ctx context.Context, message string, when time.Time) error
	AddRemote(ctx context.Context, name, url string) error
	RenameBranch(ctx context.Context, newName string) error
	Push(ctx context.Context, remote, branch string) error
	// WorkDir returns the directory passed to Init.
	WorkDir() string
}

// Compile-time interface conformance checks.
var (
	_ Client = (*CLIClient)(nil)
	_ Client = (*GoGitClient)(nil)
	_ Client = (*MockClient)(nil)
)

// Backend selects a Client implementation.
type Backend string

const (
	BackendCLI   Backend = "cli"
	BackendGoGit Backend = "gogit"
)

// ParseBackend parses a backend name. Empty selects the CLI backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cli", "git", "exec":
		return BackendCLI, nil
	case "gogit", "go-git", "native":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("unknown backend %q (expected cli or gogit)", s)
	}
}

// ClientOptions configures NewClient.
type ClientOptions struct {
	Backend Backend
	// Binary is the git executable used by the CLI backend.
	Binary string
	// Token authenticates go-git pushes over HTTPS.
	Token string
}

// NewClient creates the client for the selected backend.
func NewClient(opts ClientOptions) Client {
	if opts.Backend == BackendGoGit {
		return NewGoGitClient(opts.Token)
	}
	return NewCLIClient(opts.Binary)
}

// CommandError reports a failed version-control operation.
type CommandError struct {
	Command []string
	// ExitCode is the process exit status, or -1 when the operation did not
	// run as a process (go-git) or could not be started.
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	b.WriteString(strings.Join(e.Command, " "))
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, ": exit code %d", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Output != "" {
		fmt.Fprintf(&b, ": %s", e.Output)
	}
	return b.String()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
