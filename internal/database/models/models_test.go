package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamSetDerived(t *testing.T) {
	team := &Team{
		TeamName: "The Orbiters",
		Members: []Member{
			{Name: "Asha", Email: "Asha@X.com", RegisterNumber: "RA21AB"},
			{Name: "Ravi", Email: "ravi@x.com", RegisterNumber: "ra21cd"},
		},
	}

	team.SetDerived()

	assert.Equal(t, "the orbiters", team.TeamNameLower)
	assert.Equal(t, "the-orbiters", team.Slug)
	assert.Equal(t, "asha@x.com", team.Members[0].EmailLower)
	assert.Equal(t, "ra21ab", team.Members[0].RegisterNumberLower)
	assert.Equal(t, "Asha", team.Lead().Name)
}

func TestTeamSetDerivedKeepsAssignedSlug(t *testing.T) {
	team := &Team{TeamName: "Renamed", Slug: "orbiters-2"}
	team.SetDerived()
	assert.Equal(t, "orbiters-2", team.Slug)
}

func TestAssignSlug(t *testing.T) {
	others := []Team{
		{ID: "a", Slug: "orbiters"},
		{ID: "b", Slug: "orbiters-2"},
		{ID: "c", Slug: "team"},
	}

	tests := []struct {
		name      string
		teamName  string
		excludeID string
		want      string
	}{
		{name: "free base", teamName: "Nebula", want: "nebula"},
		{name: "punctuation collides", teamName: "Orbiters!", want: "orbiters-3"},
		{name: "symbols only", teamName: "!!!", want: "team-2"},
		{name: "own slug is free", teamName: "Orbiters", excludeID: "a", want: "orbiters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := &Team{TeamName: tt.teamName}
			team.AssignSlug(others, tt.excludeID)
			assert.Equal(t, tt.want, team.Slug)
		})
	}
	assert.Equal(t, "team", BaseSlug("???"))
}

func TestTeamSnapshotIsCopy(t *testing.T) {
	team := &Team{Members: []Member{{Name: "Asha"}, {Name: "Ravi"}}}
	snap := team.Snapshot()
	snap[0].Name = "changed"
	assert.Equal(t, "Asha", team.Members[0].Name)
	assert.Nil(t, (&Team{}).Lead())
}

func TestRole(t *testing.T) {
	r, ok := ParseRole(" Admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)
	assert.True(t, r.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.False(t, RoleJudge.IsAdmin())

	_, ok = ParseRole("owner")
	assert.False(t, ok)
}

func TestSettingsScheduleDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)
	on := true

	assert.False(t, DefaultSettings().ScheduleDue(now))
	assert.True(t, (&Settings{IsScheduled: true, ScheduledChange: &past, ScheduledState: &on}).ScheduleDue(now))
	assert.True(t, (&Settings{IsScheduled: true, ScheduledChange: &now, ScheduledState: &on}).ScheduleDue(now))
	assert.False(t, (&Settings{IsScheduled: true, ScheduledChange: &future, ScheduledState: &on}).ScheduleDue(now))
	assert.False(t, (&Settings{IsScheduled: true, ScheduledChange: &past}).ScheduleDue(now))
}

func TestSchools(t *testing.T) {
	list, err := Schools()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	name, ok := CanonicalSchool("  school of computing ")
	assert.True(t, ok)
	assert.Equal(t, "School of Computing", name)

	_, ok = CanonicalSchool("Hogwarts")
	assert.False(t, ok)

	list[0] = "mutated"
	again, _ := Schools()
	assert.NotEqual(t, "mutated", again[0])
}
