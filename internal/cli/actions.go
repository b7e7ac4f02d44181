package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim <id>",
	Short: "Mark an item as claimed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := eng.ClaimItem(cmd.Context(), principal(), args[0]); err != nil {
			return err
		}
		fmt.Println("item marked as claimed")
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Report a problematic item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}
		if err := eng.ReportItem(cmd.Context(), principal(), args[0]); err != nil {
			return err
		}
		fmt.Println("item reported")
		return nil
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show reports and the items they flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}
		for _, report := range eng.Reports() {
			renderReport(os.Stdout, report)
		}
		for _, item := range eng.ReportedItems() {
			renderItem(os.Stdout, item)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an item you own (administrators can delete any)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}
		if err := eng.DeleteItem(cmd.Context(), principal(), args[0]); err != nil {
			return err
		}
		fmt.Println("item deleted")
		return nil
	},
}
