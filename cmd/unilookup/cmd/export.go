package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unilookup/internal/export"
	"github.com/f3rmion/unilookup/internal/uni"
)

var exportCmd = &cobra.Command{
	Use:   "export <query...>",
	Short: "Write the characters matching a query to a SQLite database",
	Long: `Resolve a query and append the resulting characters to the
"characters" table of a SQLite database. The file and table are created
when missing.

Example:
  unilookup export --out hearts.db heart
  unilookup export --out arrows.db arrow`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("out", "o", "unilookup.db", "output database file")
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	entries := newEngine(cfg, false).Lookup(query)
	if len(entries) == 1 && entries[0].IsError() {
		return fmt.Errorf("lookup %q: %s", query, entries[0].Error)
	}

	records := uni.Records(entries)
	if err := export.WriteSQLite(out, records); err != nil {
		return fmt.Errorf("exporting to %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d character(s) to %s\n", len(records), out)
	return nil
}
