package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all items and reports (administrator only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagResetYes {
			return fmt.Errorf("refusing to erase all data without --yes")
		}

		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}

		result, err := eng.ResetAll(cmd.Context(), principal())
		if err != nil {
			return err
		}
		fmt.Printf("reset: %d items and %d reports deleted", result.ItemsDeleted, result.ReportsDeleted)
		if len(result.Failed) > 0 {
			fmt.Printf(", %d records failed", len(result.Failed))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "confirm erasing all data")
}
