package record

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/masmgr/contribgen-go/internal/schedule"
)

// AuxiliaryNoise widens the set of changed files without affecting commit
// count or timing. With Probability per commit, each path independently gets
// a marker line with PathProbability.
type AuxiliaryNoise struct {
	Probability     float64
	PathProbability float64
	Paths           []string
}

// DefaultAuxiliaryNoise returns the 0.3 / 0.2 noise over four placeholder files.
func DefaultAuxiliaryNoise() AuxiliaryNoise {
	return AuxiliaryNoise{
		Probability:     0.3,
		PathProbability: 0.2,
		Paths: []string{
			"src/main.go",
			"src/utils.go",
			"tests/main_test.go",
			"docs/README.md",
		},
	}
}

// MarkerLine returns the line appended to the auxiliary file at path. The
// comment syntax follows the file extension so the file stays well-formed.
func MarkerLine(path string, when time.Time) string {
	text := "updated " + when.Format(schedule.MessageDateLayout)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go", ".js", ".ts", ".java", ".c", ".rs":
		return "// " + text + "\n"
	default:
		return "# " + text + "\n"
	}
}

func (n *AuxiliaryNoise) touch(rng schedule.Source, dir string, when time.Time) error {
	if rng.Float64() >= n.Probability {
		return nil
	}
	for _, p := range n.Paths {
		if rng.Float64() >= n.PathProbability {
			continue
		}
		if err := appendString(filepath.Join(dir, p), MarkerLine(p, when)); err != nil {
			return err
		}
	}
	return nil
}
