package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/strata"
	"github.com/aretw0/strata/pkg/store"
)

var (
	cfgFile   string
	verbose   bool
	storeRoot string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "A local version-tracking store for text documents",
	Long: `Strata records full-content snapshots of tracked text files.
Each update captures a numbered version with metadata and a content hash,
so history can be inspected, restored byte-for-byte, and diffed.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/strata/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeRoot, "root", "", "Store root directory (default: found by walking up for .strata)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			configDir := filepath.Join(home, ".config", "strata")
			viper.AddConfigPath(configDir)
			viper.SetConfigType("toml")
			viper.SetConfigName("config")
		}
	}

	viper.SetEnvPrefix("STRATA")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("author.name", "")
	viper.SetDefault("diff.context", 3)
	viper.SetDefault("watch.debounce", "50ms")
	viper.SetDefault("watch.interval", "0s")
	viper.SetDefault("watch.ignore", []string{})

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveRoot determines the store root: the --root flag if given,
// otherwise the nearest ancestor of the cwd holding a .strata directory.
func resolveRoot() (string, error) {
	if storeRoot != "" {
		return filepath.Abs(storeRoot)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get cwd: %w", err)
	}
	return strata.FindRoot(cwd)
}

// openStore opens the store every subcommand except init operates on.
func openStore() *store.Store {
	root, err := resolveRoot()
	if err != nil {
		fatal("failed to locate store", err)
	}

	st, err := strata.Open(root,
		strata.WithMustExist(true),
		strata.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("failed to open store", err)
	}
	return st
}

// buildMetadata assembles version metadata from the -m/-a flags, falling
// back to the configured author when none was given on the command line.
func buildMetadata(message, author string) map[string]string {
	if author == "" {
		author = viper.GetString("author.name")
	}

	meta := make(map[string]string)
	if message != "" {
		meta["message"] = message
	}
	if author != "" {
		meta["author"] = author
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
