package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dendrascience/treeseed/version"
	"github.com/google/uuid"
)

// ReportFileName is used when a report is saved to a directory.
const ReportFileName = "treeseed-report.json"

// Report describes one finished generation run.
type Report struct {
	RunID           string        `json:"run_id"`
	TreeseedVersion string        `json:"treeseed_version"`
	Root            string        `json:"root"`
	Mode            string        `json:"mode"`
	TargetFiles     uint64        `json:"target_files"`
	TargetBytes     uint64        `json:"target_bytes"`
	MaxDepth        uint32        `json:"max_depth"`
	FilesPerDir     float64       `json:"files_per_dir"`
	DirsPerDir      float64       `json:"dirs_per_dir"`
	Seed            uint64        `json:"seed"`
	Workers         int           `json:"workers"`
	Created         Stats         `json:"created"`
	Started         time.Time     `json:"started"`
	Duration        time.Duration `json:"duration_ns"`
}

// NewReport records the outcome of a run over cfg that began at started.
func NewReport(cfg *Configuration, stats Stats, started time.Time) Report {
	return Report{
		RunID:           uuid.NewString(),
		TreeseedVersion: version.GetVersion(),
		Root:            cfg.Root,
		Mode:            cfg.Mode().String(),
		TargetFiles:     cfg.Files,
		TargetBytes:     cfg.Bytes,
		MaxDepth:        cfg.MaxDepth,
		FilesPerDir:     cfg.FilesPerDir,
		DirsPerDir:      cfg.DirsPerDir,
		Seed:            cfg.Seed,
		Workers:         cfg.Workers,
		Created:         stats,
		Started:         started,
		Duration:        time.Since(started),
	}
}

// Save writes r as JSON. A path without a .json suffix is treated as a
// directory and the report goes to ReportFileName inside it.
func (r Report) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(path, ReportFileName)
	}
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create report", Path: path, cause: err}
	}
	defer f.Close()

	je := json.NewEncoder(f)
	je.SetIndent("", "  ")
	if err := je.Encode(r); err != nil {
		return &IOError{Op: "write report", Path: path, cause: err}
	}
	return nil
}
