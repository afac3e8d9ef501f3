package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/unilookup/internal/details"
	"github.com/f3rmion/unilookup/internal/uni"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query...>",
	Short: "Resolve a query and print the matching characters",
	Long: `Resolve a query and print one row per character:
  - the character (or the mnemonic of an ASCII control)
  - its U+ notation and decimal value
  - its name

Multiple arguments are joined with spaces, so names need no quoting.

Example:
  unilookup lookup U+1F600
  unilookup lookup 9829
  unilookup lookup black heart
  unilookup lookup --json --details €`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("json", false, "print JSON")
	lookupCmd.Flags().Bool("details", false, "include encodings, category and other properties")
}

func runLookup(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	withDetails, _ := cmd.Flags().GetBool("details")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	entries := newEngine(cfg, false).Lookup(query)

	var inspect *details.Inspector
	if withDetails {
		inspect = details.NewInspector()
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, query, entries, inspect)
	}

	if len(entries) == 1 && entries[0].IsError() {
		return fmt.Errorf("lookup %q: %s", query, entries[0].Error)
	}
	if len(entries) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No characters match %q\n", query)
		return nil
	}
	return writeTable(out, uni.Records(entries), inspect)
}

// jsonEntry is one element of the "results" array printed by --json.
type jsonEntry struct {
	*uni.Record
	Error   string              `json:"error,omitempty"`
	Details *details.Properties `json:"details,omitempty"`
}

func writeJSON(w io.Writer, query string, entries []uni.Entry, inspect *details.Inspector) error {
	results := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		je := jsonEntry{Record: e.Record, Error: e.Error}
		if e.Record != nil && inspect != nil {
			props := inspect.Inspect(e.Record.CP)
			je.Details = &props
		}
		results = append(results, je)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(struct {
		Query   string      `json:"query"`
		Results []jsonEntry `json:"results"`
	}{query, results})
}

// writeTable prints records in aligned columns. Widths are measured in
// terminal cells so wide glyphs keep the columns straight.
func writeTable(w io.Writer, records []uni.Record, inspect *details.Inspector) error {
	charWidth, hexWidth, decWidth := len("CHAR"), len("HEX"), len("DEC")
	for _, r := range records {
		charWidth = max(charWidth, runewidth.StringWidth(r.Display()))
		hexWidth = max(hexWidth, len(r.Hex))
		decWidth = max(decWidth, len(strconv.Itoa(int(r.CP))))
	}

	row := func(char, hex, dec, name string) error {
		_, err := fmt.Fprintf(w, "%s  %s  %s  %s\n",
			runewidth.FillRight(char, charWidth),
			runewidth.FillRight(hex, hexWidth),
			runewidth.FillLeft(dec, decWidth),
			name)
		return err
	}

	if err := row("CHAR", "HEX", "DEC", "NAME"); err != nil {
		return err
	}
	for _, r := range records {
		if err := row(r.Display(), r.Hex, strconv.Itoa(int(r.CP)), r.Name); err != nil {
			return err
		}
		if inspect != nil {
			if err := writeProperties(w, inspect.Inspect(r.CP)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeProperties(w io.Writer, p details.Properties) error {
	fields := []struct{ label, value string }{
		{"category", p.Category},
		{"script", p.Script},
		{"utf-8", p.UTF8},
		{"utf-16", p.UTF16},
		{"width", strconv.Itoa(p.Width)},
		{"nfd", p.NFD},
		{"nfkd", p.NFKD},
		{"pinyin", strings.Join(p.Pinyin, ", ")},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "    %-9s %s\n", f.label+":", f.value); err != nil {
			return err
		}
	}
	return nil
}
