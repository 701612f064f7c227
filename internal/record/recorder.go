// Package record turns scheduled events into commits: append the message to
// the tracked file, optionally touch auxiliary files, stage everything and
// commit with the event's timestamp.
package record

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/masmgr/contribgen-go/internal/git"
	"github.com/masmgr/contribgen-go/internal/schedule"
)

// DefaultPrimaryFile is the tracked file every commit appends to.
const DefaultPrimaryFile = "README.md"

// Stage is the progress of a single record.
type Stage int

const (
	StagePending Stage = iota
	StageWritten
	StageStaged
	StageCommitted
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageWritten:
		return "written"
	case StageStaged:
		return "staged"
	case StageCommitted:
		return "committed"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// RecordError reports a record that failed after reaching Stage.
// Files written before the failure are left in place.
type RecordError struct {
	Stage Stage
	Event schedule.Event
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record commit at %s (reached %s): %v",
		e.Event.When.Format(git.CommitDateLayout), e.Stage, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Options configures a Recorder.
type Options struct {
	// PrimaryFile is relative to the client's working directory.
	PrimaryFile string
	// Noise enables auxiliary file touches. Nil disables them.
	Noise *AuxiliaryNoise
	// Rand drives Noise. Required when Noise is set.
	Rand   schedule.Source
	Logger logrus.FieldLogger
}

// Recorder records events one at a time through a git.Client.
type Recorder struct {
	client git.Client
	opts   Options
	log    logrus.FieldLogger
	stage  Stage
	count  int
}

// NewRecorder creates a recorder writing into client's working directory.
func NewRecorder(client git.Client, opts Options) *Recorder {
	if opts.PrimaryFile == "" {
		opts.PrimaryFile = DefaultPrimaryFile
	}
	if opts.Noise != nil && opts.Rand == nil {
		opts.Rand = schedule.NewSource(uint64(time.Now().UnixNano()))
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Recorder{client: client, opts: opts, log: log}
}

// Count returns the number of fully recorded commits.
func (r *Recorder) Count() int {
	return r.count
}

// Stage returns the stage reached by the most recent record.
func (r *Recorder) Stage() Stage {
	return r.stage
}

// Record appends, stages and commits a single event. The count only grows
// once the commit succeeds.
func (r *Recorder) Record(ctx context.Context, e schedule.Event) error {
	r.stage = StagePending

	if err := appendString(r.path(r.opts.PrimaryFile), e.Message+"\n\n"); err != nil {
		return r.fail(e, err)
	}
	r.stage = StageWritten

	if r.opts.Noise != nil {
		if err := r.opts.Noise.touch(r.opts.Rand, r.client.WorkDir(), e.When); err != nil {
			return r.fail(e, err)
		}
	}

	if err := r.client.StageAll(ctx); err != nil {
		return r.fail(e, err)
	}
	r.stage = StageStaged

	if err := r.client.Commit(ctx, e.Message, e.When); err != nil {
		return r.fail(e, err)
	}
	r.stage = StageCommitted
	r.count++

	r.log.WithFields(logrus.Fields{
		"date":  e.When.Format(git.CommitDateLayout),
		"total": r.count,
	}).Debug("commit recorded")
	return nil
}

// RecordAll records every event in order and stops at the first failure.
// It returns the running total either way.
func (r *Recorder) RecordAll(ctx context.Context, events iter.Seq[schedule.Event]) (int, error) {
	for e := range events {
		if err := r.Record(ctx, e); err != nil {
			return r.count, err
		}
	}
	return r.count, nil
}

func (r *Recorder) fail(e schedule.Event, err error) error {
	reached := r.stage
	r.stage = StageFailed
	r.log.WithError(err).WithField("stage", reached.String()).Error("commit failed")
	return &RecordError{Stage: reached, Event: e, Err: err}
}

func (r *Recorder) path(rel string) string {
	return filepath.Join(r.client.WorkDir(), rel)
}

func appendString(path, s string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(s); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return f.Close()
}
