package git

import (
	"context"
	"os"
	"time"
)

// MockCommit is a commit captured by MockClient.
type MockCommit struct {
	Message string
	When    time.Time
}

// MockClient is a test double for Client.
// It records every call and can be told to fail specific operations without
// needing a real repository. Init still creates the directory so callers can
// write files into it.
type MockClient struct {
	Dir     string
	Branch  string
	Name    string
	Email   string
	Remotes map[string]string
	Calls   []string
	Commits []MockCommit
	Pushed  []string
	Staged  int
	// FailOn maps an operation name ("init", "config", "add", "commit",
	// "remote", "branch", "push") to the error it returns.
	FailOn map[string]error
	// FailCommitAt makes the n-th commit (1-based) fail. Zero disables it.
	FailCommitAt int
}

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{Remotes: map[string]string{}, FailOn: map[string]error{}}
}

func (m *MockClient) WorkDir() string {
	return m.Dir
}

func (m *MockClient) Init(_ context.Context, dir, branch string) error {
	if err := m.call("init"); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	m.Dir = dir
	m.Branch = branch
	return nil
}

func (m *MockClient) ConfigureIdentity(_ context.Context, name, email string) error {
	if name == "" && email == "" {
		return nil
	}
	if err := m.call("config"); err != nil {
		return err
	}
	m.Name, m.Email = name, email
	return nil
}

func (m *MockClient) StageAll(_ context.Context) error {
	if err := m.call("add"); err != nil {
		return err
	}
	m.Staged++
	return nil
}

func (m *MockClient) Commit(_ context.Context, message string, when time.Time) error {
	if err := m.call("commit"); err != nil {
		return err
	}
	if m.FailCommitAt > 0 && len(m.Commits)+1 == m.FailCommitAt {
		return &CommandError{Command: []string{"git", "commit", "-m", message}, ExitCode: 1}
	}
	m.Commits = append(m.Commits, MockCommit{Message: message, When: when})
	return nil
}

func (m *MockClient) AddRemote(_ context.Context, name, url string) error {
	if err := m.call("remote"); err != nil {
		return err
	}
	m.Remotes[name] = url
	return nil
}

func (m *MockClient) RenameBranch(_ context.Context, newName string) error {
	if err := m.call("branch"); err != nil {
		return err
	}
	m.Branch = newName
	return nil
}

func (m *MockClient) Push(_ context.Context, remote, branch string) error {
	if err := m.call("push"); err != nil {
		return err
	}
	m.Pushed = append(m.Pushed, remote+"/"+branch)
	return nil
}

func (m *MockClient) call(op string) error {
	m.Calls = append(m.Calls, op)
	if err, ok := m.FailOn[op]; ok {
		return err
	}
	return nil
}
