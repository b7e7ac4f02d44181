// Package authz decides which mutating actions a principal may perform.
//
// The gate runs on the client and is advisory: it controls which affordances
// are offered, and the engine refuses gated actions before any store call.
// It is not a security boundary — equivalent enforcement must exist at the
// store backend (row-level rules or triggers); see the store packages.
package authz

import "github.com/dmitrijs2005/lostfound/internal/models"

// Gate holds the configured administrator identity set. Administrators are
// identified by email, the stable attribute the identity provider guarantees.
type Gate struct {
	admins map[string]struct{}
}

// NewGate builds a gate from the configured administrator emails.
func NewGate(adminEmails []string) *Gate {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email != "" {
			admins[email] = struct{}{}
		}
	}
	return &Gate{admins: admins}
}

// IsAdmin reports whether p is a member of the administrator set.
func (g *Gate) IsAdmin(p *models.Principal) bool {
	if p == nil {
		return false
	}
	_, ok := g.admins[p.Email]
	return ok
}

// CanDelete is true iff p owns the item or is an administrator. Ownerless
// (anonymous) items can only be deleted by an administrator.
func (g *Gate) CanDelete(p *models.Principal, item models.Item) bool {
	if p == nil {
		return false
	}
	if item.OwnerID != "" && p.ID == item.OwnerID {
		return true
	}
	return g.IsAdmin(p)
}

// CanResetAll is true iff p is an administrator.
func (g *Gate) CanResetAll(p *models.Principal) bool {
	return g.IsAdmin(p)
}

// CanClaim is true for any authenticated principal. Anonymous users are
// blocked at the submission boundary, not here.
func (g *Gate) CanClaim(p *models.Principal) bool {
	return p != nil
}

// CanReport is true for any authenticated principal.
func (g *Gate) CanReport(p *models.Principal) bool {
	return p != nil
}
