package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/BedMatch/internal/engine"
	"github.com/piwi3910/BedMatch/internal/export"
	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/piwi3910/BedMatch/internal/project"
	"github.com/spf13/cobra"
)

var (
	matchLimit   int
	matchWorkers int
	matchPDF     string
	matchXLSX    string
)

// MatchOutput is the JSON form of the match command.
type MatchOutput struct {
	Workpiece model.Workpiece     `json:"workpiece"`
	Results   []model.MatchResult `json:"results"`
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank work surfaces for a workpiece",
	Long: `Lays the workpiece out on every candidate surface, scores each layout
and prints the surfaces best first.

Examples:
  bedmatch match -l 200 -w 150 -q 10 -m 5
  bedmatch match -l 200 -w 150 -q 10 -s Router=1300x900 -s 2440x1220
  bedmatch match --dxf part.dxf -q 40 --category large --pdf report.pdf`,
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	addWorkpieceFlags(matchCmd, &wpFlags)
	addSurfaceFlags(matchCmd, &wpFlags)
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 0, "show at most this many results (default from config, 0 = all)")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "goroutines used to evaluate candidates (default from config)")
	matchCmd.Flags().StringVar(&matchPDF, "pdf", "", "write a PDF report to this file")
	matchCmd.Flags().StringVar(&matchXLSX, "xlsx", "", "write an Excel workbook to this file")
}

func runMatch(cmd *cobra.Command, args []string) error {
	w, err := wpFlags.workpiece(cmd)
	if err != nil {
		return err
	}
	candidates, err := wpFlags.candidates()
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = matchWorkers
	}
	limit := cfg.MaxResults
	if cmd.Flags().Changed("limit") {
		limit = matchLimit
	}

	logger.Printf("matching %d candidates with %d workers", len(candidates), workers)
	results, err := engine.New(workers).Match(w, candidates)
	if err != nil {
		return err
	}
	shown := results
	if limit > 0 && limit < len(shown) {
		shown = shown[:limit]
	}

	if err := writeReports(w, results, limit); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return printJSON(out, MatchOutput{Workpiece: w, Results: shown})
	}

	fmt.Fprintln(out, describeWorkpiece(w))
	if len(shown) == 0 {
		fmt.Fprintln(out, "No candidate surfaces.")
		return nil
	}
	fmt.Fprintln(out)
	printRanking(out, shown)

	best := shown[0]
	fmt.Fprintf(out, "\nBest match: %s (score %d)\n", best.Surface.Name, best.MatchScore)
	printNotes(out, best)
	return nil
}

// writeReports writes the requested PDF and Excel files and records them in
// the config's recent exports.
func writeReports(w model.Workpiece, results []model.MatchResult, limit int) error {
	if matchPDF == "" && matchXLSX == "" {
		return nil
	}
	if matchPDF != "" {
		if err := export.ExportPDF(matchPDF, w, results, limit); err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
		logger.Printf("wrote %s", matchPDF)
		cfg.AddRecentExport(matchPDF)
	}
	if matchXLSX != "" {
		if err := export.ExportExcel(matchXLSX, results); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		logger.Printf("wrote %s", matchXLSX)
		cfg.AddRecentExport(matchXLSX)
	}
	if err := project.SaveAppConfig(resolvedConfigPath(), cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func describeWorkpiece(w model.Workpiece) string {
	mm := w.Normalize()
	rotation := "rotation not allowed"
	if w.RotationAllowed {
		rotation = "rotation allowed"
	}
	return fmt.Sprintf("Workpiece: %s, qty %d, margin %s, %s",
		model.FormatSize(mm.Length, mm.Width, w.Unit), w.Quantity, model.FormatDimension(mm.Margin, w.Unit), rotation)
}

func printRanking(out io.Writer, results []model.MatchResult) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSURFACE\tSIZE\tCATEGORY\tGRID\tPARTS\tUTIL%\tWASTE%\tSCORE\tOPTIMAL")
	for i, r := range results {
		grid := fmt.Sprintf("%d x %d", r.Layout.PartsPerRow, r.Layout.Rows)
		if r.Layout.Rotated {
			grid += " (R)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f\t%.2f\t%d\t%s\n",
			i+1,
			r.Surface.Name,
			model.FormatSize(r.Surface.Length, r.Surface.Width, model.UnitMetric),
			r.Surface.Category,
			grid,
			r.Layout.TotalParts,
			r.Layout.UtilizationPercent,
			r.Layout.WastagePercent,
			r.MatchScore,
			yesNo(r.IsOptimal),
		)
	}
	tw.Flush()
}

func printNotes(out io.Writer, r model.MatchResult) {
	for _, rec := range r.Recommendations {
		fmt.Fprintf(out, "  + %s\n", rec)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(out, "  ! %s\n", warn)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
