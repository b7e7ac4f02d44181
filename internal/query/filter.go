// Package query derives presentation views from a mirror snapshot. Everything
// here is a pure computation: no mutation, no I/O.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

// Mode selects which items a view shows.
type Mode string

const (
	ModeAll         Mode = "all"
	ModeLost        Mode = "lost"
	ModeFound       Mode = "found"
	ModeClaimedOnly Mode = "claimed"
)

// ParseMode maps user input onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeAll, Mode(""):
		return ModeAll, nil
	case ModeLost:
		return ModeLost, nil
	case ModeFound:
		return ModeFound, nil
	case ModeClaimedOnly:
		return ModeClaimedOnly, nil
	default:
		return "", fmt.Errorf("unknown filter mode %q", s)
	}
}

// FilteredItems returns the items matching mode and search, ordered by
// creation timestamp descending with id ascending as tie-break. Reported items
// never appear here; they surface only through the report view. Identical
// inputs always yield identical output.
func FilteredItems(items []models.Item, mode Mode, search string) []models.Item {
	needle := strings.ToLower(strings.TrimSpace(search))

	result := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.Reported {
			continue
		}
		if !matchesMode(item, mode) {
			continue
		}
		if needle != "" && !strings.Contains(item.SearchBlob(), needle) {
			continue
		}
		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Created != result[j].Created {
			return result[i].Created > result[j].Created
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// ReportedItems returns the reported items in the same deterministic order,
// for the report workflow's own view.
func ReportedItems(items []models.Item) []models.Item {
	result := make([]models.Item, 0)
	for _, item := range items {
		if item.Reported {
			result = append(result, item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Created != result[j].Created {
			return result[i].Created > result[j].Created
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func matchesMode(item models.Item, mode Mode) bool {
	switch mode {
	case ModeLost:
		return item.Type == models.ItemTypeLost
	case ModeFound:
		return item.Type == models.ItemTypeFound
	case ModeClaimedOnly:
		return item.Claimed
	default:
		return true
	}
}
