package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lostfound/internal/common"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all items as a JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}

		if flagExportOut == "-" {
			return eng.Export(os.Stdout)
		}

		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()

		if err := eng.Export(f); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", flagExportOut)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON backup, skipping items that already exist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}

		result, err := eng.Import(cmd.Context(), data)
		if err != nil {
			return err
		}
		fmt.Printf("imported: %d created, %d skipped, %d failed\n",
			result.Created, result.Skipped, len(result.Failed))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", common.ExportFileName, "output file (- for stdout)")
}
