package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/BedMatch/internal/engine"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare packing constraints side by side",
	Long: `Matches the workpiece under the current settings and under variations
(rotation toggled, no margin, half margin) and shows the best surface and
summary figures for each.

Examples:
  bedmatch compare -l 200 -w 150 -q 10 -m 5`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	addWorkpieceFlags(compareCmd, &wpFlags)
	addSurfaceFlags(compareCmd, &wpFlags)
}

func runCompare(cmd *cobra.Command, args []string) error {
	w, err := wpFlags.workpiece(cmd)
	if err != nil {
		return err
	}
	candidates, err := wpFlags.candidates()
	if err != nil {
		return err
	}

	scenarios := engine.BuildDefaultScenarios(w)
	comparison, err := engine.New(cfg.Workers).CompareScenarios(scenarios, candidates)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return printJSON(out, comparison)
	}

	fmt.Fprintln(out, describeWorkpiece(w))
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tBEST SURFACE\tPARTS\tSCORE\tOPTIMAL SURFACES\tAVG SCORE")
	for _, c := range comparison {
		if c.Best == nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t0\t-\n", c.Scenario.Name)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.1f\n",
			c.Scenario.Name, c.Best.Surface.Name, c.Best.Layout.TotalParts, c.Best.MatchScore,
			c.OptimalCount, c.AverageScore)
	}
	return tw.Flush()
}
