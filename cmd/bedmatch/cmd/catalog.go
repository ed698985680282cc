package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/piwi3910/BedMatch/internal/export"
	"github.com/piwi3910/BedMatch/internal/importer"
	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/piwi3910/BedMatch/internal/project"
	"github.com/spf13/cobra"
)

var (
	catalogCategory string
	catalogReplace  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the work surface catalog",
	Long: `Lists, edits, imports and exports the catalog of candidate surfaces that
match, cost and compare use when no --surface is given.

Examples:
  bedmatch catalog list --category large
  bedmatch catalog add "My Router" 1500 1000
  bedmatch catalog import machines.xlsx
  bedmatch catalog export catalog.csv`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog surfaces",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add NAME LENGTH WIDTH",
	Short: "Add a surface (dimensions in mm)",
	Args:  cobra.ExactArgs(3),
	RunE:  runCatalogAdd,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a surface by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogRemove,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import surfaces from a CSV or Excel file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export the catalog to a CSV or Excel file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogExport,
}

var catalogResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogReset,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogAddCmd, catalogRemoveCmd,
		catalogImportCmd, catalogExportCmd, catalogResetCmd)

	catalogListCmd.Flags().StringVar(&catalogCategory, "category", "", "only list surfaces of this size category")
	catalogImportCmd.Flags().BoolVar(&catalogReplace, "replace", false, "replace the catalog instead of merging")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	surfaces := catalog.Surfaces
	if catalogCategory != "" {
		cat, ok := model.ParseCategory(catalogCategory)
		if !ok {
			return fmt.Errorf("unknown category %q (use small, medium, large or xlarge)", catalogCategory)
		}
		surfaces = catalog.ByCategory(cat)
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return printJSON(out, surfaces)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tAREA\tCATEGORY")
	for _, s := range surfaces {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name,
			model.FormatSize(s.Length, s.Width, cfg.DefaultUnit),
			model.FormatArea(s.Area(), cfg.DefaultUnit), s.Category)
	}
	return tw.Flush()
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	length, err := strconv.ParseFloat(args[1], 64)
	if err != nil || length <= 0 {
		return fmt.Errorf("invalid length %q", args[1])
	}
	width, err := strconv.ParseFloat(args[2], 64)
	if err != nil || width <= 0 {
		return fmt.Errorf("invalid width %q", args[2])
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	s := model.NewCandidateSurface(args[0], length, width)
	catalog.Add(s)
	if err := saveCatalog(catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s) with ID %s\n",
		s.Name, model.FormatSize(s.Length, s.Width, model.UnitMetric), s.Category, s.ID)
	return nil
}

func runCatalogRemove(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if !catalog.Remove(args[0]) {
		return fmt.Errorf("no surface with ID %q", args[0])
	}
	if err := saveCatalog(catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	result := importer.ImportCatalog(args[0])
	out := cmd.OutOrStdout()
	for _, warn := range result.Warnings {
		logger.Printf("%s: %s", args[0], warn)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  ! %s\n", e)
	}
	if len(result.Surfaces) == 0 {
		return fmt.Errorf("no surfaces imported from %s", args[0])
	}

	var catalog model.SurfaceCatalog
	added := len(result.Surfaces)
	if catalogReplace {
		catalog = model.SurfaceCatalog{Surfaces: result.Surfaces}
	} else {
		existing, err := loadCatalog()
		if err != nil {
			return err
		}
		catalog, added = project.MergeCatalog(existing, result.Surfaces)
	}
	if err := saveCatalog(catalog); err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d surfaces (%d in catalog)\n", added, len(catalog.Surfaces))
	if skipped := len(result.Surfaces) - added; skipped > 0 {
		fmt.Fprintf(out, "Skipped %d surfaces already in the catalog\n", skipped)
	}
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if err := export.ExportCatalog(args[0], catalog); err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d surfaces to %s\n", len(catalog.Surfaces), args[0])
	return nil
}

func runCatalogReset(cmd *cobra.Command, args []string) error {
	catalog := model.DefaultCatalog()
	if err := saveCatalog(catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored default catalog (%d surfaces)\n", len(catalog.Surfaces))
	return nil
}
