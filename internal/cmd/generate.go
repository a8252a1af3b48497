package cmd

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/dendrascience/treeseed/generator"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewGenerateCmd creates and returns the generate subcommand for the treeseed CLI.
// Its flags are bound to v so they can also come from the environment or a config file.
func NewGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate ROOT",
		Short: "Generate a random directory tree",
		Long: `Generate a pseudo-random directory hierarchy under ROOT.

ROOT is created if it does not exist and must otherwise be empty. The tree is
fully determined by the flags, so running the same command twice produces
identical trees.

Directories are named 0.dir, 1.dir, ... and files 0, 1, ... within each
directory. Without --exact-files the number of files only averages out to
the requested count; --exact-files and --exact-bytes make the totals precise.`,
		Example: `  treeseed generate /tmp/tree -n 100K
  treeseed generate /tmp/tree -n 1,000 -b 10MB --exact-files --exact-bytes
  treeseed generate /tmp/tree -n 1M -d 10 -r 100 --seed 42 --progress`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v, args[0])
		},
	}

	cmd.Flags().StringP("files", "n", "", "Number of files to generate, e.g. 1000, 1K, 1,000 (required)")
	cmd.Flags().StringP("bytes", "b", "0", "Total size of file contents, e.g. 10MB or 1GiB. Zero creates empty files")
	cmd.Flags().Bool("exact-files", false, "Generate exactly the requested number of files")
	cmd.Flags().Bool("exact-bytes", false, "Generate exactly the requested number of bytes")
	cmd.Flags().Uint32P("depth", "d", generator.DefaultMaxDepth, "Maximum directory depth. Zero puts every file in ROOT")
	cmd.Flags().Uint64P("ratio", "r", 0, "Expected files per directory (default max(files/1000, 1))")
	cmd.Flags().Uint64("seed", 0, "Extra entropy for the generator")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Number of directories populated concurrently")
	cmd.Flags().String("io-limit", "0", "Cap on content writes per second, e.g. 50MB. Zero is unlimited")
	cmd.Flags().String("report", "", "Write a JSON run report to this file or directory")
	cmd.Flags().Bool("progress", false, "Show a progress bar on stderr")

	cobra.CheckErr(v.BindPFlags(cmd.Flags()))

	return cmd
}

// generateOptions assembles generator options from flags, environment and config.
func generateOptions(v *viper.Viper, root string) (generator.Options, error) {
	opts := generator.DefaultOptions()
	opts.Root = root

	files := v.GetString("files")
	if files == "" {
		return opts, usageError{err: errors.New("the number of files to generate is required (--files)")}
	}
	n, err := parseCount(files)
	if err != nil {
		return opts, usageError{err: err}
	}
	opts.Files = n

	if opts.Bytes, err = parseBytes(v.GetString("bytes")); err != nil {
		return opts, usageError{err: err}
	}
	ioLimit, err := parseBytes(v.GetString("io-limit"))
	if err != nil {
		return opts, usageError{err: err}
	}
	opts.IOLimit = int64(min(ioLimit, 1<<62))

	if v.IsSet("ratio") && v.GetUint64("ratio") == 0 {
		return opts, usageError{err: errors.New("ratio must be at least 1")}
	}
	opts.Ratio = v.GetUint64("ratio")
	opts.FilesExact = v.GetBool("exact-files")
	opts.BytesExact = v.GetBool("exact-bytes")
	opts.MaxDepth = v.GetUint32("depth")
	opts.Seed = v.GetUint64("seed")
	opts.Workers = v.GetInt("workers")
	return opts, nil
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, root string) error {
	opts, err := generateOptions(v, root)
	if err != nil {
		return err
	}
	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	log.Debugw("resolved configuration",
		"files_per_dir", cfg.FilesPerDir,
		"dirs_per_dir", cfg.DirsPerDir,
		"bytes_per_file", cfg.BytesPerFile,
		"mode", cfg.Mode(),
	)

	out := cmd.OutOrStdout()
	printConfigurationInfo(out, cfg)

	var genOpts []generator.Option
	if v.GetBool("progress") {
		bar := newProgressBar(cmd.ErrOrStderr(), cfg)
		defer func() { _ = bar.Finish() }()
		genOpts = append(genOpts, generator.WithObserver(func(created generator.Stats) {
			_ = bar.Add64(int64(created.Files))
		}))
	}

	started := time.Now()
	stats, err := generator.New(cfg, genOpts...).Generate(cmd.Context())
	if err != nil {
		return err
	}
	printStats(out, stats)

	if path := v.GetString("report"); path != "" {
		if err := generator.NewReport(cfg, stats, started).Save(path); err != nil {
			return err
		}
		log.Infof("report written to %s", path)
	}
	return nil
}

func plural(n uint64, one, many string) string {
	return lo.Ternary(n == 1, one, many)
}

func printConfigurationInfo(w io.Writer, cfg *generator.Configuration) {
	size := ""
	if cfg.Bytes > 0 {
		size = fmt.Sprintf(" totaling %s", humanize.Bytes(cfg.Bytes))
	}
	fmt.Fprintf(w,
		"About %s %s%s will be generated in approximately %s %s distributed across a tree of maximum depth %d where each directory contains approximately %s other %s.\n",
		humanize.Comma(int64(cfg.Files)), plural(cfg.Files, "file", "files"),
		size,
		humanize.Comma(int64(cfg.ExpectedDirs)), plural(cfg.ExpectedDirs, "directory", "directories"),
		cfg.MaxDepth,
		humanize.Comma(int64(cfg.ExpectedDirsPerDir)), plural(cfg.ExpectedDirsPerDir, "directory", "directories"),
	)
}

func printStats(w io.Writer, stats generator.Stats) {
	size := ""
	if stats.Bytes > 0 {
		size = fmt.Sprintf(" (%s)", humanize.Bytes(stats.Bytes))
	}
	fmt.Fprintf(w, "Created %s %s%s across %s %s.\n",
		humanize.Comma(int64(stats.Files)), plural(stats.Files, "file", "files"),
		size,
		humanize.Comma(int64(stats.Dirs)), plural(stats.Dirs, "directory", "directories"),
	)
}

// newProgressBar tracks created files. Only exact file counts have a known
// total, otherwise the bar is a spinner.
func newProgressBar(w io.Writer, cfg *generator.Configuration) *progressbar.ProgressBar {
	total := int64(-1)
	if cfg.FilesExact {
		total = int64(cfg.Files)
	}
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Generating files"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprint(w, "\n")
		}),
	)
}
