// Package cmd contains all CLI commands for unilookup.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/unilookup/internal/config"
	"github.com/f3rmion/unilookup/internal/logging"
	"github.com/f3rmion/unilookup/internal/lookup"
	"github.com/f3rmion/unilookup/internal/ucd"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unilookup",
	Short: "Look up Unicode characters by code point, character or name",
	Long: `unilookup resolves a query into Unicode characters.

A query is one of:
  U+2665    a hex code point
  9829      a decimal code point (32 or more by default)
  ♥         a single character
  heart     a fragment of the character name

ASCII control characters are shown by their mnemonic (LF, ESC, DEL, ...).

Running 'unilookup' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(viper.GetBool("verbose"))
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/unilookup)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().Int64("decimal-floor", lookup.DefaultDecimalFloor, "smallest all-digit query read as a decimal code point")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("lookup.decimal_floor", rootCmd.PersistentFlags().Lookup("decimal-floor"))
}

// initConfig reads in ENV variables and settles the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("UNILOOKUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml from the config directory and applies
// overrides from flags and UNILOOKUP_* environment variables.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	if viper.IsSet("lookup.decimal_floor") {
		cfg.Lookup.DecimalFloor = viper.GetInt64("lookup.decimal_floor")
	}
	if viper.IsSet("lookup.index") {
		cfg.Lookup.Index = viper.GetBool("lookup.index")
	}
	if viper.IsSet("server.addr") {
		cfg.Server.Addr = viper.GetString("server.addr")
	}
	if viper.IsSet("server.browser") {
		cfg.Server.Browser = viper.GetBool("server.browser")
	}
	if viper.IsSet("tui.big_glyph") {
		cfg.TUI.BigGlyph = viper.GetBool("tui.big_glyph")
	}
	if viper.IsSet("tui.max_results") {
		cfg.TUI.MaxResults = viper.GetInt("tui.max_results")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newEngine builds the lookup engine. Long-running front ends pass resident
// so the name index is built once up front when the config asks for it; a
// one-shot command scans the name table at most once anyway.
func newEngine(cfg *config.Config, resident bool) *lookup.Engine {
	var names ucd.Names = ucd.Database{}
	if resident && cfg.Lookup.Index {
		start := time.Now()
		idx := ucd.NewIndex(names)
		logging.Debug.Printf("name index: %d entries in %s", idx.Len(), time.Since(start).Round(time.Millisecond))
		names = idx
	}
	return lookup.New(names, lookup.WithDecimalFloor(cfg.Lookup.DecimalFloor))
}
