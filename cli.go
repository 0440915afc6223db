// cli.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var tallyCmd = &cobra.Command{
	Use:   "tally FILE",
	Short: "Calculate the net results for a local spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTally(cmd.OutOrStdout(), args[0], jsonOutput)
	},
}

func init() {
	tallyCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output raw JSON instead of tables")
	rootCmd.AddCommand(tallyCmd)
}

func runTally(out io.Writer, path string, asJSON bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := LoadTable(f, filepath.Base(path))
	if err != nil {
		return err
	}
	calc, err := Calculate(table)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tallyPayload{
			FileName: filepath.Base(path),
			Rows:     len(table.Rows),
			Columns:  table.Width(),
			Nets:     calc.Nets,
			Counts:   calc.Counts.Entries(),
		})
	}
	printTally(out, calc)
	return nil
}

func printTally(out io.Writer, calc Calculation) {
	bold := color.New(color.Bold)
	pos := color.New(color.FgGreen)
	neg := color.New(color.FgRed)

	bold.Fprintln(out, "Results")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, n := range calc.Nets {
		value := fmt.Sprintf("%d", n.Value)
		switch {
		case n.Value > 0:
			value = pos.Sprintf("+%d", n.Value)
		case n.Value < 0:
			value = neg.Sprint(value)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", n.Name, value)
	}
	tw.Flush()

	fmt.Fprintln(out)
	bold.Fprintln(out, "Occurrences")
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range calc.Counts.Entries() {
		label := e.Label
		if label == "" {
			label = "(blank)"
		}
		fmt.Fprintf(tw, "  %s\t%d\n", label, e.Count)
	}
	tw.Flush()
}
