package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lostfound/internal/query"
)

var (
	flagListFilter string
	flagListSearch string
	flagListJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items, filtered and searched",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := query.ParseMode(flagListFilter)
		if err != nil {
			return err
		}
		if err := eng.Refresh(cmd.Context()); err != nil {
			return err
		}

		items := eng.View(mode, flagListSearch)

		if flagListJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}
		for _, item := range items {
			renderItem(os.Stdout, item)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagListFilter, "filter", "f", "all", "filter mode: all, lost, found or claimed")
	listCmd.Flags().StringVarP(&flagListSearch, "search", "s", "", "search text")
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "output as JSON")
}
