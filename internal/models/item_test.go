package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostfound/internal/common"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
	}{
		{"ok lost", Draft{Type: ItemTypeLost, Title: "Black Wallet"}, false},
		{"ok found", Draft{Type: ItemTypeFound, Title: "Keys"}, false},
		{"missing title", Draft{Type: ItemTypeLost}, true},
		{"blank title", Draft{Type: ItemTypeLost, Title: "   "}, true},
		{"bad type", Draft{Type: "stolen", Title: "Bike"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrorValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDraftItemDefaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	owner := &Principal{ID: "u1", DisplayName: "Ann", Email: "ann@example.com"}

	item := Draft{Type: ItemTypeLost, Title: "  Black Wallet  "}.Item(now, owner)

	assert.Equal(t, "", item.ID) // store assigns it
	assert.Equal(t, "Black Wallet", item.Title)
	assert.Equal(t, "2024-03-15", item.Date)
	assert.Equal(t, now.UnixMilli(), item.Created)
	assert.Equal(t, "u1", item.OwnerID)
	assert.False(t, item.Claimed)
	assert.False(t, item.Reported)
}

func TestDraftItemAnonymousKeepsNoOwner(t *testing.T) {
	item := Draft{Type: ItemTypeFound, Title: "Keys", Date: "2024-01-02"}.Item(time.Now(), nil)
	assert.Equal(t, "", item.OwnerID)
	assert.Equal(t, "2024-01-02", item.Date)
}

func TestItemWireShape(t *testing.T) {
	item := Item{
		ID:      "x1",
		Type:    ItemTypeLost,
		Title:   "Black Wallet",
		Claimed: true,
		Created: 1700000000000,
		OwnerID: "u1",
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	// keys per the storage contract; optional fields are omitted when empty
	assert.Equal(t, "x1", wire["id"])
	assert.Equal(t, "lost", wire["type"])
	assert.Equal(t, true, wire["claimed"])
	assert.Equal(t, false, wire["reported"])
	assert.Equal(t, "u1", wire["ownerId"])
	assert.NotContains(t, wire, "desc")
	assert.NotContains(t, wire, "photo")
}

func TestNewReportCopiesDisplayFields(t *testing.T) {
	item := Item{ID: "x1", Title: "Black Wallet", Desc: "leather", Location: "library", Date: "2024-03-15"}
	at := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)

	report := NewReport(item, at)

	assert.Equal(t, "", report.ID)
	assert.Equal(t, "x1", report.ReportedItemID)
	assert.Equal(t, "Black Wallet", report.Title)
	assert.Equal(t, "leather", report.Desc)
	assert.Equal(t, "library", report.Location)
	assert.Equal(t, "2024-03-16T09:00:00Z", report.ReportedAt)
}
