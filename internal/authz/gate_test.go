package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/lostfound/internal/models"
)

var (
	owner   = &models.Principal{ID: "u1", Email: "u1@example.com"}
	other   = &models.Principal{ID: "u2", Email: "u2@example.com"}
	admin   = &models.Principal{ID: "u3", Email: "admin@example.com"}
	ownItem = models.Item{ID: "x", OwnerID: "u1"}
)

func newTestGate() *Gate {
	return NewGate([]string{"admin@example.com"})
}

func TestCanDelete(t *testing.T) {
	gate := newTestGate()

	tests := []struct {
		name      string
		principal *models.Principal
		item      models.Item
		want      bool
	}{
		{"owner may delete", owner, ownItem, true},
		{"non-owner may not", other, ownItem, false},
		{"admin may delete anything", admin, ownItem, true},
		{"anonymous may not", nil, ownItem, false},
		{"ownerless item only for admin", other, models.Item{ID: "y"}, false},
		{"ownerless item admin ok", admin, models.Item{ID: "y"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.CanDelete(tt.principal, tt.item))
		})
	}
}

func TestCanResetAll(t *testing.T) {
	gate := newTestGate()

	assert.True(t, gate.CanResetAll(admin))
	assert.False(t, gate.CanResetAll(owner))
	assert.False(t, gate.CanResetAll(nil))
}

func TestCanClaimAndReport(t *testing.T) {
	gate := newTestGate()

	assert.True(t, gate.CanClaim(owner))
	assert.True(t, gate.CanReport(other))
	assert.False(t, gate.CanClaim(nil))
	assert.False(t, gate.CanReport(nil))
}

func TestEmptyAdminEmailNeverMatches(t *testing.T) {
	gate := NewGate([]string{""})
	assert.False(t, gate.IsAdmin(&models.Principal{ID: "u", Email: ""}))
}
