package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSave(t *testing.T) {
	cfg := resolveForTest(t, Options{Files: 1000, Bytes: 1 << 20, MaxDepth: 3, Seed: 7, FilesExact: true})
	stats := Stats{Files: 1000, Dirs: 12, Bytes: 900_000}
	report := NewReport(cfg, stats, time.Now().Add(-time.Second))

	_, err := uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, "exact-files", report.Mode)
	assert.GreaterOrEqual(t, report.Duration, time.Second)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "directory", path: t.TempDir(), want: ReportFileName},
		{name: "file", path: filepath.Join(t.TempDir(), "run.json"), want: "run.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, report.Save(tt.path))

			path := tt.path
			if filepath.Base(path) != tt.want {
				path = filepath.Join(path, tt.want)
			}
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var got Report
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, report.RunID, got.RunID)
			assert.Equal(t, stats, got.Created)
			assert.Equal(t, uint64(1000), got.TargetFiles)
			assert.Equal(t, uint64(7), got.Seed)
		})
	}
}

func TestReportSaveMissingDirectory(t *testing.T) {
	cfg := resolveForTest(t, Options{Files: 10})
	err := NewReport(cfg, Stats{}, time.Now()).Save(filepath.Join(t.TempDir(), "missing", "run.json"))
	assert.Equal(t, KindIO, Classify(err))
}
