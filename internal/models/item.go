// Package models defines the lost & found record types and their wire shapes.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/common"
)

// ItemType classifies a listing.
type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	return t == ItemTypeLost || t == ItemTypeFound
}

// Item is a lost/found listing. Id, Created and OwnerID are assigned at
// creation and never change; Claimed and Reported only ever go false→true.
type Item struct {
	ID       string   `json:"id"`
	Type     ItemType `json:"type"`
	Title    string   `json:"title"`
	Desc     string   `json:"desc,omitempty"`
	Location string   `json:"location,omitempty"`
	Date     string   `json:"date,omitempty"`
	Contact  string   `json:"contact,omitempty"`
	Photo    string   `json:"photo,omitempty"`
	Claimed  bool     `json:"claimed"`
	Reported bool     `json:"reported"`
	Created  int64    `json:"created"`
	OwnerID  string   `json:"ownerId,omitempty"`
}

// SearchBlob returns the lower-cased concatenation of the searchable fields.
func (i Item) SearchBlob() string {
	return strings.ToLower(i.Title + " " + i.Desc + " " + i.Location + " " + i.Contact)
}

// ItemPatch is a partial update. Only the mutable flags can change after
// creation; nil fields are left untouched.
type ItemPatch struct {
	Claimed  *bool
	Reported *bool
}

// Draft is user input for a new item, before ids and timestamps are assigned.
type Draft struct {
	Type     ItemType
	Title    string
	Desc     string
	Location string
	Date     string
	Contact  string
	Photo    string
}

// Validate rejects drafts that must never reach a store: a blank title or an
// unknown type.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown item type %q", common.ErrorValidation, d.Type)
	}
	return nil
}

// Item materializes the draft at the given moment for the given owner.
// The id stays empty; the store assigns it. Date defaults to the creation day.
func (d Draft) Item(now time.Time, owner *Principal) Item {
	date := d.Date
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	item := Item{
		Type:     d.Type,
		Title:    strings.TrimSpace(d.Title),
		Desc:     strings.TrimSpace(d.Desc),
		Location: strings.TrimSpace(d.Location),
		Date:     date,
		Contact:  strings.TrimSpace(d.Contact),
		Photo:    strings.TrimSpace(d.Photo),
		Created:  now.UnixMilli(),
	}
	if owner != nil {
		item.OwnerID = owner.ID
	}
	return item
}
