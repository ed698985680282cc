package cmd

import (
	"fmt"

	"github.com/piwi3910/BedMatch/internal/engine"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check workpiece settings without matching",
	Long: `Checks the workpiece flags against the input limits and lists every
problem found. Exits non-zero when the input is invalid.

Examples:
  bedmatch validate -l 200 -w 150 -q 10
  bedmatch validate -l 500 -w 20 -q 5 --unit in --json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addWorkpieceFlags(validateCmd, &wpFlags)
}

func runValidate(cmd *cobra.Command, args []string) error {
	in, err := wpFlags.input(cmd)
	if err != nil {
		return err
	}
	result := engine.ValidateWorkspaceInput(in)

	out := cmd.OutOrStdout()
	if outputJSON {
		if err := printJSON(out, result); err != nil {
			return err
		}
		return result.Err()
	}

	if result.Valid {
		fmt.Fprintln(out, "Input is valid")
		return nil
	}
	fmt.Fprintln(out, "Input is invalid:")
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	return result.Err()
}
