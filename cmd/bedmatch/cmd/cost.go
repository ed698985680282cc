package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/BedMatch/internal/engine"
	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/spf13/cobra"
)

var (
	costSurface string
	costPrice   float64
)

// CostOutput is the JSON form of the cost command.
type CostOutput struct {
	Match    model.MatchResult  `json:"match"`
	Estimate model.CostEstimate `json:"estimate"`
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate sheets and material for an order",
	Long: `Picks a surface (the best match unless --on names one) and estimates how
many sheets the order needs, the material used and wasted, and the cost when a
sheet price is known.

Examples:
  bedmatch cost -l 200 -w 150 -q 100
  bedmatch cost -l 200 -w 150 -q 100 --on "Full Sheet 2440x1220" --price 45`,
	RunE: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)

	addWorkpieceFlags(costCmd, &wpFlags)
	addSurfaceFlags(costCmd, &wpFlags)
	costCmd.Flags().StringVar(&costSurface, "on", "", "surface name or ID to estimate (default: best match)")
	costCmd.Flags().Float64Var(&costPrice, "price", 0, "price per sheet (default from config)")
}

func runCost(cmd *cobra.Command, args []string) error {
	w, err := wpFlags.workpiece(cmd)
	if err != nil {
		return err
	}
	candidates, err := wpFlags.candidates()
	if err != nil {
		return err
	}

	results, err := engine.New(cfg.Workers).Match(w, candidates)
	if err != nil {
		return err
	}
	match, err := pickMatch(results, costSurface)
	if err != nil {
		return err
	}

	price := cfg.CostPerSheet()
	if cmd.Flags().Changed("price") {
		p := costPrice
		price = &p
	}

	estimate, err := model.CalculateCostEstimate(match, w.Quantity, price)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return printJSON(out, CostOutput{Match: match, Estimate: estimate})
	}

	fmt.Fprintln(out, describeWorkpiece(w))
	fmt.Fprintf(out, "Surface: %s (%s), %d parts per sheet, score %d\n\n",
		match.Surface.Name,
		model.FormatSize(match.Surface.Length, match.Surface.Width, model.UnitMetric),
		match.Layout.TotalParts, match.MatchScore)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sheets needed:\t%d\n", estimate.SheetsNeeded)
	fmt.Fprintf(tw, "Parts produced:\t%d (%d spare)\n", estimate.PartsProduced, estimate.SpareParts)
	fmt.Fprintf(tw, "Total material:\t%s\n", formatSquareMeters(estimate.TotalMaterialArea, w.Unit))
	fmt.Fprintf(tw, "Used material:\t%s\n", formatSquareMeters(estimate.UsedMaterialArea, w.Unit))
	fmt.Fprintf(tw, "Wasted material:\t%s\n", formatSquareMeters(estimate.WastedMaterialArea, w.Unit))
	if estimate.TotalEstimatedCost != nil {
		fmt.Fprintf(tw, "Estimated cost:\t%.2f (%.2f per sheet)\n", *estimate.TotalEstimatedCost, *estimate.CostPerSheet)
	} else {
		fmt.Fprintln(tw, "Estimated cost:\tn/a (no sheet price)")
	}
	return tw.Flush()
}

// pickMatch returns the result for the named surface, or the best result.
func pickMatch(results []model.MatchResult, surface string) (model.MatchResult, error) {
	if len(results) == 0 {
		return model.MatchResult{}, errors.New("no candidate surfaces")
	}
	if surface == "" {
		return results[0], nil
	}
	for _, r := range results {
		if r.Surface.ID == surface || strings.EqualFold(r.Surface.Name, surface) {
			return r, nil
		}
	}
	return model.MatchResult{}, fmt.Errorf("surface %q not found among candidates", surface)
}

// formatSquareMeters renders an area given in m² in the display unit.
func formatSquareMeters(sqm float64, u model.Unit) string {
	return model.FormatArea(sqm*1e6, u)
}
