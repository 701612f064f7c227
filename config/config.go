package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/masmgr/contribgen-go/internal/git"
	"github.com/masmgr/contribgen-go/internal/record"
	"github.com/masmgr/contribgen-go/internal/schedule"
)

// FileName is the configuration file looked up when no path is given.
const FileName = ".contribgen.json"

// Config is the root configuration structure.
type Config struct {
	Contribute ContributeConfig `json:"contribute"`
	Realistic  RealisticConfig  `json:"realistic"`
	Repository RepositoryConfig `json:"repository"`
	Messages   MessagesConfig   `json:"messages"`
	Noise      NoiseConfig      `json:"noise"`
	Logging    LoggingConfig    `json:"logging"`
}

// ContributeConfig holds the uniform generator settings.
type ContributeConfig struct {
	MaxCommits  int      `json:"maxCommits"`  // Default: 10
	Frequency   int      `json:"frequency"`   // Default: 80
	DaysBefore  int      `json:"daysBefore"`  // Default: 365
	DaysAfter   int      `json:"daysAfter"`   // Default: 0
	NoWeekends  bool     `json:"noWeekends"`  // Default: false
	WeekendDays []string `json:"weekendDays"` // Default: saturday, sunday
}

// RealisticConfig holds the burst generator settings.
type RealisticConfig struct {
	Days   int                  `json:"days"` // Default: 365
	Bounds schedule.BurstBounds `json:"bounds"`
}

// RepositoryConfig holds settings for the generated repository.
type RepositoryConfig struct {
	Branch      string `json:"branch"`      // Default: "main"
	Remote      string `json:"remote"`      // Default: "origin"
	PrimaryFile string `json:"primaryFile"` // Default: "README.md"
	Backend     string `json:"backend"`     // Default: "cli"
	GitBinary   string `json:"gitBinary"`   // Default: "git"
}

// MessagesConfig holds the commit message catalogs.
type MessagesConfig struct {
	Uniform  []string `json:"uniform"`
	Extended []string `json:"extended"`
}

// NoiseConfig holds the auxiliary file touches of the realistic generator.
type NoiseConfig struct {
	Enabled         bool     `json:"enabled"`
	Probability     float64  `json:"probability"`
	PathProbability float64  `json:"pathProbability"`
	Paths           []string `json:"paths"`
}

// LoggingConfig holds run log settings.
type LoggingConfig struct {
	Level          string `json:"level"`
	ContributeFile string `json:"contributeFile"`
	RealisticFile  string `json:"realisticFile"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	noise := record.DefaultAuxiliaryNoise()
	return &Config{
		Contribute: ContributeConfig{
			MaxCommits:  10,
			Frequency:   80,
			DaysBefore:  365,
			DaysAfter:   0,
			WeekendDays: []string{"saturday", "sunday"},
		},
		Realistic: RealisticConfig{
			Days:   365,
			Bounds: schedule.DefaultBurstBounds(),
		},
		Repository: RepositoryConfig{
			Branch:      "main",
			Remote:      "origin",
			PrimaryFile: record.DefaultPrimaryFile,
			Backend:     string(git.BackendCLI),
			GitBinary:   "git",
		},
		Messages: MessagesConfig{
			Uniform:  schedule.DefaultUniformMessages(),
			Extended: schedule.DefaultExtendedMessages(),
		},
		Noise: NoiseConfig{
			Enabled:         true,
			Probability:     noise.Probability,
			PathProbability: noise.PathProbability,
			Paths:           noise.Paths,
		},
		Logging: LoggingConfig{
			Level:          "info",
			ContributeFile: "contribute.log",
			RealisticFile:  "realistic_contributions.log",
		},
	}
}

// ScheduleOptions converts the uniform settings for the scheduler.
// WeekendDays must already have passed Validate.
func (c *Config) ScheduleOptions() schedule.Options {
	weekend, _ := ParseWeekdays(c.Contribute.WeekendDays)
	return schedule.Options{
		MaxCommitsPerDay: c.Contribute.MaxCommits,
		Frequency:        c.Contribute.Frequency,
		SkipWeekends:     c.Contribute.NoWeekends,
		WeekendDays:      weekend,
	}
}

// AuxiliaryNoise returns the recorder noise, or nil when disabled.
func (c *Config) AuxiliaryNoise() *record.AuxiliaryNoise {
	if !c.Noise.Enabled || len(c.Noise.Paths) == 0 {
		return nil
	}
	return &record.AuxiliaryNoise{
		Probability:     c.Noise.Probability,
		PathProbability: c.Noise.PathProbability,
		Paths:           c.Noise.Paths,
	}
}

// ParseWeekdays parses English weekday names, full or three-letter.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if n == full || n == full[:3] {
				days = append(days, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
	}
	return days, nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
