package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
)

func TestForNote_RoleTable(t *testing.T) {
	m1 := Actor{ID: "acc-m1", Role: account.RoleManager}
	m1Team := NewTeamSet([]string{"emp-e1"})

	publicNote := note.Note{ID: "n1", EmployeeID: "emp-e1", CreatedBy: "acc-m1", IsPrivate: false}
	privateNote := note.Note{ID: "n2", EmployeeID: "emp-e1", CreatedBy: "acc-ceo", IsPrivate: true}

	cases := []struct {
		name  string
		actor Actor
		team  TeamSet
		note  note.Note
		want  Decision
	}{
		{
			name:  "super-admin reads and mutates private notes",
			actor: Actor{ID: "acc-sa", Role: account.RoleSuperAdmin},
			note:  privateNote,
			want:  Decision{Read: true, Write: true, Delete: true},
		},
		{
			name:  "ceo reads and mutates private notes",
			actor: Actor{ID: "acc-ceo", Role: account.RoleCEO},
			note:  privateNote,
			want:  Decision{Read: true, Write: true, Delete: true},
		},
		{
			name:  "manager full access to own public in-team note",
			actor: m1,
			team:  m1Team,
			note:  publicNote,
			want:  Decision{Read: true, Write: true, Delete: true},
		},
		{
			name:  "manager reads but cannot mutate colleague note on own team",
			actor: m1,
			team:  m1Team,
			note:  note.Note{ID: "n3", EmployeeID: "emp-e1", CreatedBy: "acc-ceo", IsPrivate: false},
			want:  Decision{Read: true},
		},
		{
			name:  "manager has no access outside team",
			actor: Actor{ID: "acc-m2", Role: account.RoleManager},
			team:  NewTeamSet([]string{"emp-e2"}),
			note:  publicNote,
			want:  Decision{},
		},
		{
			name:  "hr reads public notes",
			actor: Actor{ID: "acc-hr", Role: account.RoleHR},
			note:  publicNote,
			want:  Decision{Read: true},
		},
		{
			name:  "hr never sees private notes",
			actor: Actor{ID: "acc-hr", Role: account.RoleHR},
			note:  privateNote,
			want:  Decision{},
		},
		{
			name:  "admin is not a note consumer",
			actor: Actor{ID: "acc-adm", Role: account.RoleAdmin},
			note:  publicNote,
			want:  Decision{},
		},
		{
			name:  "employee has no note access",
			actor: Actor{ID: "acc-emp", Role: account.RoleEmployee},
			note:  publicNote,
			want:  Decision{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ForNote(c.actor, c.team, c.note))
		})
	}
}

// A note marked private by a higher role becomes invisible to the manager who
// authored it; the capability is re-evaluated from current state, not cached
// at creation time.
func TestForNote_PrivacyOverridesAuthorship(t *testing.T) {
	m1 := Actor{ID: "acc-m1", Role: account.RoleManager}
	m1Team := NewTeamSet([]string{"emp-e1"})

	n := note.Note{ID: "n1", EmployeeID: "emp-e1", CreatedBy: "acc-m1", IsPrivate: false}
	assert.Equal(t, Decision{Read: true, Write: true, Delete: true}, ForNote(m1, m1Team, n))

	n.IsPrivate = true
	assert.Equal(t, Decision{}, ForNote(m1, m1Team, n))
	assert.Equal(t, Decision{}, ForNote(Actor{ID: "acc-hr", Role: account.RoleHR}, nil, n))
	assert.Equal(t, Decision{Read: true, Write: true, Delete: true},
		ForNote(Actor{ID: "acc-ceo", Role: account.RoleCEO}, nil, n))
}

func TestNoteFilter_Listing(t *testing.T) {
	notes := []note.Note{
		{ID: "n1", EmployeeID: "emp-e1", CreatedBy: "acc-m1"},
		{ID: "n2", EmployeeID: "emp-e1", CreatedBy: "acc-ceo", IsPrivate: true},
		{ID: "n3", EmployeeID: "emp-e2", CreatedBy: "acc-m2"},
	}

	visible := func(actor Actor, team TeamSet) []string {
		keep := NoteFilter(actor, team)
		var ids []string
		for _, n := range notes {
			if keep(n) {
				ids = append(ids, n.ID)
			}
		}
		return ids
	}

	assert.Equal(t, []string{"n1", "n2", "n3"},
		visible(Actor{ID: "acc-sa", Role: account.RoleSuperAdmin}, nil))
	assert.Equal(t, []string{"n1", "n3"},
		visible(Actor{ID: "acc-hr", Role: account.RoleHR}, nil))
	assert.Equal(t, []string{"n1"},
		visible(Actor{ID: "acc-m1", Role: account.RoleManager}, NewTeamSet([]string{"emp-e1"})))
	assert.Equal(t, []string{"n3"},
		visible(Actor{ID: "acc-m2", Role: account.RoleManager}, NewTeamSet([]string{"emp-e2"})))
	assert.Empty(t, visible(Actor{ID: "acc-emp", Role: account.RoleEmployee}, nil))
}

func TestClampPrivate(t *testing.T) {
	assert.True(t, ClampPrivate(account.RoleSuperAdmin, true))
	assert.True(t, ClampPrivate(account.RoleCEO, true))
	// Manager-supplied privacy is silently coerced, not rejected.
	assert.False(t, ClampPrivate(account.RoleManager, true))
	assert.False(t, ClampPrivate(account.RoleHR, true))
	assert.False(t, ClampPrivate(account.RoleCEO, false))
}

func TestCanCreateNote(t *testing.T) {
	team := NewTeamSet([]string{"emp-e1"})

	assert.True(t, CanCreateNote(Actor{ID: "acc-ceo", Role: account.RoleCEO}, nil, "emp-e9"))
	assert.True(t, CanCreateNote(Actor{ID: "acc-sa", Role: account.RoleSuperAdmin}, nil, "emp-e9"))
	assert.True(t, CanCreateNote(Actor{ID: "acc-m1", Role: account.RoleManager}, team, "emp-e1"))
	assert.False(t, CanCreateNote(Actor{ID: "acc-m1", Role: account.RoleManager}, team, "emp-e2"))
	assert.False(t, CanCreateNote(Actor{ID: "acc-hr", Role: account.RoleHR}, nil, "emp-e1"))
	assert.False(t, CanCreateNote(Actor{ID: "acc-emp", Role: account.RoleEmployee}, nil, "emp-e1"))
}

func TestForTag(t *testing.T) {
	own := tag.Tag{ID: "t1", EmployeeID: "emp-e1", CreatedBy: "acc-m1"}
	other := tag.Tag{ID: "t2", EmployeeID: "emp-e1", CreatedBy: "acc-ceo"}

	m1 := Actor{ID: "acc-m1", Role: account.RoleManager}
	team := NewTeamSet([]string{"emp-e1"})

	assert.Equal(t, Decision{Read: true, Write: true, Delete: true}, ForTag(m1, team, own))
	assert.Equal(t, Decision{}, ForTag(m1, team, other))
	assert.Equal(t, Decision{}, ForTag(m1, NewTeamSet(nil), own))
	assert.Equal(t, Decision{Read: true}, ForTag(Actor{ID: "acc-hr", Role: account.RoleHR}, nil, other))
	assert.Equal(t, Decision{Read: true, Write: true, Delete: true},
		ForTag(Actor{ID: "acc-sa", Role: account.RoleSuperAdmin}, nil, other))
}

func TestForActivity(t *testing.T) {
	selfEntry := activity.Entry{ID: "a1", UserID: "acc-m1"}
	teamEntry := activity.Entry{ID: "a2", UserID: "acc-e1"}
	strangerEntry := activity.Entry{ID: "a3", UserID: "acc-x"}

	m1 := Actor{ID: "acc-m1", Role: account.RoleManager}
	teamAccounts := NewTeamSet([]string{"acc-e1"})

	assert.True(t, ForActivity(m1, teamAccounts, selfEntry).Read)
	assert.True(t, ForActivity(m1, teamAccounts, teamEntry).Delete)
	assert.Equal(t, Decision{}, ForActivity(m1, teamAccounts, strangerEntry))

	for _, role := range []account.Role{account.RoleSuperAdmin, account.RoleAdmin, account.RoleCEO} {
		assert.True(t, ForActivity(Actor{ID: "acc-top", Role: role}, nil, strangerEntry).Read, role)
	}
	assert.Equal(t, Decision{}, ForActivity(Actor{ID: "acc-hr", Role: account.RoleHR}, nil, selfEntry))
}

func TestCanViewActivityLog(t *testing.T) {
	assert.True(t, CanViewActivityLog(account.RoleSuperAdmin))
	assert.True(t, CanViewActivityLog(account.RoleAdmin))
	assert.True(t, CanViewActivityLog(account.RoleCEO))
	assert.True(t, CanViewActivityLog(account.RoleManager))
	assert.False(t, CanViewActivityLog(account.RoleHR))
	assert.False(t, CanViewActivityLog(account.RoleEmployee))
}
