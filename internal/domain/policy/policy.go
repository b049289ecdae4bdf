// Package policy is the visibility and mutation authorization engine. Every
// function here is a pure decision over (actor, relationship edges, resource);
// nothing in this package touches a store, so capabilities are re-evaluated
// from current state on every request.
package policy

import (
	"errors"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
)

// ErrForbidden is returned when an authenticated actor is out of scope for an
// existing resource. Absent resources surface the domain's not-found error
// instead.
var ErrForbidden = errors.New("forbidden")

// Actor is the authenticated identity decisions are evaluated for.
type Actor = account.Actor

// Decision is the per-resource capability set for an actor.
type Decision struct {
	Read   bool
	Write  bool
	Delete bool
}

// TeamSet is the set of employee ids (or, for activity scoping, account ids)
// a manager's visibility is bounded by.
type TeamSet map[string]struct{}

func NewTeamSet(ids []string) TeamSet {
	set := make(TeamSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s TeamSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IsAdministrative reports whether the role may manage accounts and teams.
func IsAdministrative(role account.Role) bool {
	return role == account.RoleSuperAdmin || role == account.RoleAdmin
}

// IsTop reports whether the role holds unrestricted note visibility,
// including private notes.
func IsTop(role account.Role) bool {
	return role == account.RoleSuperAdmin || role == account.RoleCEO
}

// ClampPrivate decides the effective privacy flag for a create or update.
// Only the top roles may mark a note private; a manager-supplied true is
// silently coerced to false rather than rejected.
func ClampPrivate(role account.Role, requested bool) bool {
	return requested && IsTop(role)
}

// CanCreateNote decides whether the actor may author a note about the given
// employee. Managers are bounded by team membership; hr and employee are not
// authoring roles.
func CanCreateNote(actor Actor, team TeamSet, employeeID string) bool {
	switch actor.Role {
	case account.RoleSuperAdmin, account.RoleCEO:
		return true
	case account.RoleManager:
		return team.Has(employeeID)
	default:
		return false
	}
}

// ForNote evaluates the actor's capabilities against a single note.
//
// Privacy is a strict override: a private note is invisible to managers and
// hr even when the manager authored it.
func ForNote(actor Actor, team TeamSet, n note.Note) Decision {
	switch actor.Role {
	case account.RoleSuperAdmin, account.RoleCEO:
		return Decision{Read: true, Write: true, Delete: true}
	case account.RoleManager:
		if n.IsPrivate {
			return Decision{}
		}
		if !team.Has(n.EmployeeID) {
			return Decision{}
		}
		own := n.CreatedBy == actor.ID
		return Decision{Read: true, Write: own, Delete: own}
	case account.RoleHR:
		return Decision{Read: !n.IsPrivate}
	default:
		return Decision{}
	}
}

// NoteFilter returns the list-scoping predicate for the actor. List
// operations filter the full candidate set instead of erroring per row.
func NoteFilter(actor Actor, team TeamSet) func(note.Note) bool {
	return func(n note.Note) bool {
		return ForNote(actor, team, n).Read
	}
}

// ForTag evaluates tag capabilities: managers see and manage only tags they
// authored for their own team, top roles manage all, hr reads all.
func ForTag(actor Actor, team TeamSet, t tag.Tag) Decision {
	switch actor.Role {
	case account.RoleSuperAdmin, account.RoleCEO:
		return Decision{Read: true, Write: true, Delete: true}
	case account.RoleManager:
		if t.CreatedBy != actor.ID || !team.Has(t.EmployeeID) {
			return Decision{}
		}
		return Decision{Read: true, Write: true, Delete: true}
	case account.RoleHR:
		return Decision{Read: true}
	default:
		return Decision{}
	}
}

// TagFilter returns the list-scoping predicate for employee tag listings.
func TagFilter(actor Actor, team TeamSet) func(tag.Tag) bool {
	return func(t tag.Tag) bool {
		return ForTag(actor, team, t).Read
	}
}

// CanViewActivityLog reports whether the role may query the audit trail at all.
func CanViewActivityLog(role account.Role) bool {
	switch role {
	case account.RoleSuperAdmin, account.RoleAdmin, account.RoleCEO, account.RoleManager:
		return true
	default:
		return false
	}
}

// ForActivity evaluates audit-entry capabilities. The manager scope is the
// entry's subject account: self or a team member's account.
func ForActivity(actor Actor, teamAccounts TeamSet, e activity.Entry) Decision {
	switch actor.Role {
	case account.RoleSuperAdmin, account.RoleAdmin, account.RoleCEO:
		return Decision{Read: true, Write: true, Delete: true}
	case account.RoleManager:
		if e.UserID != actor.ID && !teamAccounts.Has(e.UserID) {
			return Decision{}
		}
		return Decision{Read: true, Write: true, Delete: true}
	default:
		return Decision{}
	}
}
