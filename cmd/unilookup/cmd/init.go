package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unilookup/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize unilookup configuration",
	Long: `Write a commented config.yaml with the default settings to your
config directory.

Settings can also be given as UNILOOKUP_* environment variables, for
example UNILOOKUP_LOOKUP_DECIMAL_FLOOR=0 or UNILOOKUP_SERVER_ADDR=:8080.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.Template), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to change the defaults")
	fmt.Fprintln(out, "  2. Run 'unilookup lookup <query>' to test a lookup")
	return nil
}
