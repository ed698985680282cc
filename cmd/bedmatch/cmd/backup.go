package cmd

import (
	"fmt"

	"github.com/piwi3910/BedMatch/internal/project"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore settings and the surface catalog",
}

var backupExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write config and catalog to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Restore config and catalog from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupImport,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if err := project.ExportAllData(args[0], cfg, catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Backed up config and %d surfaces to %s\n", len(catalog.Surfaces), args[0])
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	data, err := project.ImportAllData(args[0])
	if err != nil {
		return err
	}
	logger.Printf("backup version %s created %s", data.Version, data.CreatedAt)

	cfg = data.Config
	if err := project.SaveAppConfig(resolvedConfigPath(), cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	if err := saveCatalog(data.Catalog); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored config and %d surfaces from %s\n", len(data.Catalog.Surfaces), args[0])
	return nil
}
