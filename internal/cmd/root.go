package cmd

import (
	"strings"

	"github.com/dendrascience/treeseed/version"
	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logging.Logger("cmd")

// NewRootCmd creates and returns the root cobra command for the treeseed CLI.
// It sets up all subcommands, command groups, configuration and logging.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
	)
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "treeseed",
		Short: "treeseed - A seeded generator of random directory trees",
		Long: `treeseed generates pseudo-random directory hierarchies for benchmarking
and testing filesystem tools.

The same inputs always produce the same tree, down to the file contents.
File counts and total size can be hit approximately or exactly.

Use subcommands to perform different operations:
  - generate: Populate an empty directory with a random tree
  - count: Count files, directories and bytes in a tree
  - hash: Fingerprint a tree to compare runs
  - version: Show detailed version information`,
		Version: version.GetFullVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogging(logLevel); err != nil {
				return err
			}
			return initConfig(v, cfgFile)
		},
	}
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level (debug, info, warn, error)")

	groupGenerate := "generate"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupGenerate,
		Title: "Tree Generation",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	generateCmd := NewGenerateCmd(v)
	countCmd := NewCountCmd()
	hashCmd := NewHashCmd()
	versionCmd := NewVersionCmd()

	generateCmd.GroupID = groupGenerate
	countCmd.GroupID = groupUtilities
	hashCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func initLogging(level string) error {
	if level == "" {
		return nil
	}
	ll, err := logging.LevelFromString(level)
	if err != nil {
		return usageError{err: err}
	}
	logging.SetAllLoggers(ll)
	return nil
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("TREESEED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return usageError{err: err}
		}
		log.Debugf("loaded config from %s", v.ConfigFileUsed())
	}
	return nil
}
