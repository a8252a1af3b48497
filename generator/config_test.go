package generator

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{
			name: "missing root",
			opts: Options{Files: 10},
			want: ErrNoRoot,
		},
		{
			name: "zero files",
			opts: Options{Root: "/tmp/x"},
			want: ErrNoFiles,
		},
		{
			name: "ratio larger than files",
			opts: Options{Root: "/tmp/x", Files: 10, Ratio: 11, MaxDepth: 5},
			want: ErrRatioTooLarge,
		},
		{
			name: "ratio larger than files at depth zero",
			opts: Options{Root: "/tmp/x", Files: 1, Ratio: 2},
			want: ErrRatioTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.opts.Resolve()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, KindConfig, Classify(err))

			var ce *ConfigError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestResolveDerivesShape(t *testing.T) {
	tests := []struct {
		name          string
		opts          Options
		filesPerDir   float64
		dirsPerDir    float64
		expectedDirs  uint64
		dirsPerDirRnd uint64
	}{
		{
			name:          "default ratio",
			opts:          Options{Files: 1000, MaxDepth: 5},
			filesPerDir:   1,
			dirsPerDir:    math.Pow(1000, 0.2),
			expectedDirs:  1000,
			dirsPerDirRnd: 4,
		},
		{
			name:          "default ratio scales with files",
			opts:          Options{Files: 1_000_000, MaxDepth: 3},
			filesPerDir:   1000,
			dirsPerDir:    10,
			expectedDirs:  1000,
			dirsPerDirRnd: 10,
		},
		{
			name:          "ratio equals files",
			opts:          Options{Files: 500, Ratio: 500, MaxDepth: 4},
			filesPerDir:   500,
			dirsPerDir:    1,
			expectedDirs:  1,
			dirsPerDirRnd: 1,
		},
		{
			name:          "depth zero",
			opts:          Options{Files: 42},
			filesPerDir:   42,
			dirsPerDir:    0,
			expectedDirs:  1,
			dirsPerDirRnd: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Root = "/tmp/x"
			cfg, err := tt.opts.Resolve()
			require.NoError(t, err)

			assert.InDelta(t, tt.filesPerDir, cfg.FilesPerDir, 1e-9)
			assert.InDelta(t, tt.dirsPerDir, cfg.DirsPerDir, 1e-9)
			assert.Equal(t, tt.expectedDirs, cfg.ExpectedDirs)
			assert.Equal(t, tt.dirsPerDirRnd, cfg.ExpectedDirsPerDir)
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Options{Root: "/tmp/x", Files: 100, Bytes: 1000, Workers: -1, IOLimit: -5}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Zero(t, cfg.IOLimit)
	assert.InDelta(t, 10.0, cfg.BytesPerFile, 1e-9)

	d := DefaultOptions()
	assert.Equal(t, uint32(DefaultMaxDepth), d.MaxDepth)
	assert.Equal(t, runtime.NumCPU(), d.Workers)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name       string
		bytes      uint64
		filesExact bool
		bytesExact bool
		want       Mode
	}{
		{name: "approximate", bytes: 100, want: ModeApproximate},
		{name: "exact files", bytes: 100, filesExact: true, want: ModeExactFiles},
		{name: "exact bytes", bytes: 100, bytesExact: true, want: ModeExactBytes},
		{name: "exact both", bytes: 100, filesExact: true, bytesExact: true, want: ModeExact},
		{name: "exact bytes without bytes", bytesExact: true, want: ModeApproximate},
		{name: "exact both without bytes", filesExact: true, bytesExact: true, want: ModeExactFiles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Options{
				Root:       "/tmp/x",
				Files:      10,
				Bytes:      tt.bytes,
				FilesExact: tt.filesExact,
				BytesExact: tt.bytesExact,
			}.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Mode())
			assert.Equal(t, tt.want.String(), cfg.Mode().String())
		})
	}
}

func TestExpectedSubtreeFiles(t *testing.T) {
	cfg := &Configuration{FilesPerDir: 2, DirsPerDir: 3}
	assert.InDelta(t, 2.0, cfg.expectedSubtreeFiles(0), 1e-9)
	assert.InDelta(t, 8.0, cfg.expectedSubtreeFiles(1), 1e-9)
	assert.InDelta(t, 26.0, cfg.expectedSubtreeFiles(2), 1e-9)

	wide := &Configuration{FilesPerDir: 1000, DirsPerDir: 1e6}
	got := wide.expectedSubtreeFiles(100)
	assert.False(t, math.IsInf(got, 0))
	assert.LessOrEqual(t, got, maxWeight)
}
