package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// GoGitClient performs every operation in-process with go-git.
type GoGitClient struct {
	repo  *gogit.Repository
	dir   string
	name  string
	email string
	auth  transport.AuthMethod
}

// NewGoGitClient creates an in-process client. A non-empty token is used as
// HTTPS basic-auth password when pushing.
func NewGoGitClient(token string) *GoGitClient {
	c := &GoGitClient{}
	if token != "" {
		c.auth = &http.BasicAuth{Username: "x-access-token", Password: token}
	}
	return c
}

func (c *GoGitClient) WorkDir() string {
	return c.dir
}

func (c *GoGitClient) Init(_ context.Context, dir, branch string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create repository directory: %w", err)
	}
	c.dir = dir

	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(branch)},
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		repo, err = gogit.PlainOpen(dir)
	}
	if err != nil {
		return commandFailed(err, "init", "-b", branch)
	}
	c.repo = repo
	return nil
}

func (c *GoGitClient) ConfigureIdentity(_ context.Context, name, email string) error {
	if name == "" && email == "" {
		return nil
	}
	if err := c.ready("config"); err != nil {
		return err
	}

	cfg, err := c.repo.Config()
	if err != nil {
		return commandFailed(err, "config")
	}
	if name != "" {
		cfg.User.Name = name
		c.name = name
	}
	if email != "" {
		cfg.User.Email = email
		c.email = email
	}
	if err := c.repo.SetConfig(cfg); err != nil {
		return commandFailed(err, "config")
	}
	return nil
}

func (c *GoGitClient) StageAll(_ context.Context) error {
	if err := c.ready("add"); err != nil {
		return err
	}
	wt, err := c.repo.Worktree()
	if err != nil {
		return commandFailed(err, "add", "--all", ".")
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return commandFailed(err, "add", "--all", ".")
	}
	return nil
}

func (c *GoGitClient) Commit(_ context.Context, message string, when time.Time) error {
	if err := c.ready("commit"); err != nil {
		return err
	}
	date := when.Format(CommitDateLayout)

	sig, err := c.signature(when)
	if err != nil {
		return commandFailed(err, "commit", "-m", message, "--date", date)
	}
	wt, err := c.repo.Worktree()
	if err != nil {
		return commandFailed(err, "commit", "-m", message, "--date", date)
	}

	_, err = wt.Commit(message, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return commandFailed(err, "commit", "-m", message, "--date", date)
	}
	return nil
}

func (c *GoGitClient) AddRemote(_ context.Context, name, url string) error {
	if err := c.ready("remote"); err != nil {
		return err
	}
	_, err := c.repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	if err != nil {
		return commandFailed(err, "remote", "add", name, url)
	}
	return nil
}

// RenameBranch moves the branch HEAD points at to newName, like git branch -M.
// An unborn branch only has HEAD repointed.
func (c *GoGitClient) RenameBranch(_ context.Context, newName string) error {
	if err := c.ready("branch"); err != nil {
		return err
	}

	head, err := c.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return commandFailed(err, "branch", "-M", newName)
	}
	oldRef := head.Target()
	newRef := plumbing.NewBranchReferenceName(newName)
	if oldRef == newRef {
		return nil
	}

	tip, err := c.repo.Storer.Reference(oldRef)
	switch {
	case err == nil:
		if err := c.repo.Storer.SetReference(plumbing.NewHashReference(newRef, tip.Hash())); err != nil {
			return commandFailed(err, "branch", "-M", newName)
		}
		if err := c.repo.Storer.RemoveReference(oldRef); err != nil {
			return commandFailed(err, "branch", "-M", newName)
		}
	case !errors.Is(err, plumbing.ErrReferenceNotFound):
		return commandFailed(err, "branch", "-M", newName)
	}

	if err := c.repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, newRef)); err != nil {
		return commandFailed(err, "branch", "-M", newName)
	}
	return nil
}

// Push pushes branch to remote and records it as the branch's upstream.
func (c *GoGitClient) Push(ctx context.Context, remote, branch string) error {
	if err := c.ready("push"); err != nil {
		return err
	}

	ref := plumbing.NewBranchReferenceName(branch)
	err := c.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{config.RefSpec(ref.String() + ":" + ref.String())},
		Auth:       c.auth,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return commandFailed(err, "push", "-u", remote, branch)
	}

	err = c.repo.CreateBranch(&config.Branch{Name: branch, Remote: remote, Merge: ref})
	if err != nil && !errors.Is(err, gogit.ErrBranchExists) {
		return commandFailed(err, "push", "-u", remote, branch)
	}
	return nil
}

func (c *GoGitClient) ready(op string) error {
	if c.repo == nil {
		return commandFailed(errors.New("repository not initialized"), op)
	}
	return nil
}

// signature resolves the identity from ConfigureIdentity, then from the
// merged local/global git configuration.
func (c *GoGitClient) signature(when time.Time) (*object.Signature, error) {
	name, email := c.name, c.email
	if name == "" || email == "" {
		cfg, err := c.repo.ConfigScoped(config.GlobalScope)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = firstNonEmpty(cfg.Author.Name, cfg.User.Name)
		}
		if email == "" {
			email = firstNonEmpty(cfg.Author.Email, cfg.User.Email)
		}
	}
	if name == "" || email == "" {
		return nil, errors.New("author identity unknown: set user.name and user.email")
	}
	return &object.Signature{Name: name, Email: email, When: when}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func commandFailed(err error, args ...string) *CommandError {
	return &CommandError{
		Command:  append([]string{"git"}, args...),
		ExitCode: -1,
		Err:      err,
	}
}
