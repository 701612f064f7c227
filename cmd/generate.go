package cmd

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/masmgr/contribgen-go/internal/record"
	"github.com/masmgr/contribgen-go/internal/schedule"
	"github.com/sirupsen/logrus"
)

type generateResult struct {
	Dir     string
	Commits int
}

// generate initializes the repository, records every event and, when a
// remote URL was given, pushes the result.
func (cc *CommandContext) generate(ctx context.Context, events iter.Seq[schedule.Event], noise *record.AuxiliaryNoise) (*generateResult, error) {
	repoCfg := cc.Config.Repository

	dir, err := filepath.Abs(cc.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	client := cc.NewClient()
	if err := client.Init(ctx, dir, repoCfg.Branch); err != nil {
		cc.Logger.WithError(err).Error("failed to initialize repository")
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}
	cc.Logger.WithFields(logrus.Fields{
		"dir":     dir,
		"backend": cc.Backend,
		"seed":    cc.Seed,
	}).Info("repository initialized")

	if err := client.ConfigureIdentity(ctx, cc.UserName, cc.UserEmail); err != nil {
		cc.Logger.WithError(err).Error("failed to configure identity")
		return nil, fmt.Errorf("failed to configure identity: %w", err)
	}
	if cc.UserName != "" || cc.UserEmail != "" {
		cc.Logger.WithFields(logrus.Fields{"name": cc.UserName, "email": cc.UserEmail}).Info("identity configured")
	}

	recorder := record.NewRecorder(client, record.Options{
		PrimaryFile: repoCfg.PrimaryFile,
		Noise:       noise,
		Rand:        cc.NoiseSource(),
		Logger:      cc.Logger,
	})
	count, err := recorder.RecordAll(ctx, events)
	res := &generateResult{Dir: dir, Commits: count}
	if err != nil {
		return res, fmt.Errorf("generation stopped after %d commits: %w", count, err)
	}
	cc.Logger.WithField("commits", count).Info("generation finished")

	if cc.RemoteURL == "" {
		return res, nil
	}

	if err := client.AddRemote(ctx, repoCfg.Remote, cc.RemoteURL); err != nil {
		cc.Logger.WithError(err).Error("failed to add remote")
		return res, fmt.Errorf("failed to add remote: %w", err)
	}
	if err := client.RenameBranch(ctx, repoCfg.Branch); err != nil {
		cc.Logger.WithError(err).Error("failed to rename branch")
		return res, fmt.Errorf("failed to rename branch: %w", err)
	}
	if err := client.Push(ctx, repoCfg.Remote, repoCfg.Branch); err != nil {
		cc.Logger.WithError(err).Error("failed to push")
		return res, fmt.Errorf("failed to push: %w", err)
	}
	cc.Logger.WithFields(logrus.Fields{
		"remote": repoCfg.Remote,
		"url":    cc.RemoteURL,
		"branch": repoCfg.Branch,
	}).Info("pushed to remote")
	return res, nil
}
