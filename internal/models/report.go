package models

import "time"

// Report flags an item as problematic. It copies the item's display fields at
// the moment of reporting so the report view never has to join back to an item
// that may since have been deleted. Reports are written once and never mutated.
type Report struct {
	ID             string `json:"id"`
	ReportedItemID string `json:"reportedItemId"`
	Title          string `json:"title"`
	Desc           string `json:"desc,omitempty"`
	Location       string `json:"location,omitempty"`
	Date           string `json:"date,omitempty"`
	ReportedAt     string `json:"reportedAt"`
}

// NewReport derives a report from the item's current fields. The id stays
// empty; the store assigns it.
func NewReport(item Item, at time.Time) Report {
	return Report{
		ReportedItemID: item.ID,
		Title:          item.Title,
		Desc:           item.Desc,
		Location:       item.Location,
		Date:           item.Date,
		ReportedAt:     at.UTC().Format(time.RFC3339),
	}
}
