package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/piwi3910/BedMatch/internal/model"
	"github.com/piwi3910/BedMatch/internal/project"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	outputJSON bool

	// Loaded before every command runs
	cfg    = model.DefaultAppConfig()
	logger = log.New(io.Discard, "bedmatch: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "bedmatch",
	Short: "CNC work surface matcher",
	Long: `Ranks candidate CNC work surfaces (machine beds or stock sheet sizes)
for a batch of identical rectangular parts, using a grid layout and a 0-100
suitability score.

Examples:
  bedmatch match -l 200 -w 150 -q 10                 # Rank the surface catalog
  bedmatch match -l 8 -w 6 -q 20 --unit in --pdf r.pdf
  bedmatch cost -l 200 -w 150 -q 100 --price 45      # Sheets and material for the best match
  bedmatch catalog list                              # Show the surface catalog`,
	Version:           "0.3.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.bedmatch/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for programmatic access)")
}

// resolvedConfigPath returns the --config path or the default location.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return project.DefaultConfigPath()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	} else {
		logger.SetOutput(io.Discard)
	}

	path := resolvedConfigPath()
	loaded, err := project.LoadAppConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg = loaded
	logger.Printf("config: %s", path)
	return nil
}

// loadCatalog reads the configured surface catalog.
func loadCatalog() (model.SurfaceCatalog, error) {
	path := project.CatalogPath(cfg)
	catalog, err := project.LoadCatalog(path)
	if err != nil {
		return model.SurfaceCatalog{}, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	logger.Printf("catalog: %s (%d surfaces)", path, len(catalog.Surfaces))
	return catalog, nil
}

func saveCatalog(catalog model.SurfaceCatalog) error {
	path := project.CatalogPath(cfg)
	if err := project.SaveCatalog(path, catalog); err != nil {
		return fmt.Errorf("failed to save catalog %s: %w", path, err)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
