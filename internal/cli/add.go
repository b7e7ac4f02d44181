package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

var (
	flagAddType     string
	flagAddTitle    string
	flagAddDesc     string
	flagAddLocation string
	flagAddDate     string
	flagAddContact  string
	flagAddPhoto    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Post a new lost or found item",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := models.Draft{
			Type:     models.ItemType(flagAddType),
			Title:    flagAddTitle,
			Desc:     flagAddDesc,
			Location: flagAddLocation,
			Date:     flagAddDate,
			Contact:  flagAddContact,
			Photo:    flagAddPhoto,
		}

		id, err := eng.SubmitItem(cmd.Context(), principal(), draft)
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&flagAddType, "type", "t", "lost", "item type: lost or found")
	addCmd.Flags().StringVar(&flagAddTitle, "title", "", "item title (required)")
	addCmd.Flags().StringVar(&flagAddDesc, "desc", "", "description")
	addCmd.Flags().StringVar(&flagAddLocation, "location", "", "where it was lost/found")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&flagAddContact, "contact", "", "contact details")
	addCmd.Flags().StringVar(&flagAddPhoto, "photo", "", "photo reference")
}
