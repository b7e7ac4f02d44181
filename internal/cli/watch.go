package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lostfound/internal/query"
)

var (
	flagWatchFilter string
	flagWatchSearch string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the collection live, re-rendering on every change",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := query.ParseMode(flagWatchFilter)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := eng.Start(ctx); err != nil {
			return err
		}

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-eng.Updates():
				items := eng.View(mode, flagWatchSearch)
				fmt.Printf("--- %d item(s), %d report(s) ---\n", len(items), len(eng.Reports()))
				for _, item := range items {
					renderItem(os.Stdout, item)
				}
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&flagWatchFilter, "filter", "f", "all", "filter mode: all, lost, found or claimed")
	watchCmd.Flags().StringVarP(&flagWatchSearch, "search", "s", "", "search text")
}
