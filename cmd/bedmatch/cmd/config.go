package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/piwi3910/BedMatch/internal/project"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show application settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and catalog file locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if outputJSON {
		return printJSON(out, cfg)
	}

	price := "none"
	if p := cfg.CostPerSheet(); p != nil {
		price = fmt.Sprintf("%.2f", *p)
	}
	results := "all"
	if cfg.MaxResults > 0 {
		results = fmt.Sprintf("%d", cfg.MaxResults)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Unit:\t%s\n", cfg.DefaultUnit)
	fmt.Fprintf(tw, "Margin:\t%g %s\n", cfg.DefaultMargin, cfg.DefaultUnit.Symbol())
	fmt.Fprintf(tw, "Rotation allowed:\t%s\n", yesNo(cfg.DefaultAllowRotation))
	fmt.Fprintf(tw, "Cost per sheet:\t%s\n", price)
	fmt.Fprintf(tw, "Max results:\t%s\n", results)
	fmt.Fprintf(tw, "Workers:\t%d\n", cfg.Workers)
	fmt.Fprintf(tw, "Catalog:\t%s\n", project.CatalogPath(cfg))
	for i, p := range cfg.RecentExports {
		label := ""
		if i == 0 {
			label = "Recent exports:"
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, p)
	}
	return tw.Flush()
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config:  %s\n", resolvedConfigPath())
	fmt.Fprintf(out, "catalog: %s\n", project.CatalogPath(cfg))
	return nil
}
