package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/unilookup/internal/ucd"
	"github.com/f3rmion/unilookup/internal/uni"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List the ASCII control characters and their mnemonics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-7s %3s  %-4s %s\n", "HEX", "DEC", "ABBR", "NAME")
		for _, c := range ucd.Controls() {
			if _, err := fmt.Fprintf(out, "%-7s %3d  %-4s %s\n", uni.Hex(c.CP), c.CP, c.Abbrev, c.Name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}
