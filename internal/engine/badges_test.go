package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func labels(badges []Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.Label)
	}
	return out
}

func TestBadges(t *testing.T) {
	cases := []struct {
		name string
		team Team
		want []string
	}{
		{
			name: "empty team",
			team: Team{},
			want: []string{},
		},
		{
			name: "attackers around a defender",
			team: Team{
				{Name: "Greninja", Role: RoleAttacker, Lane: LaneJungle},
				{Name: "Snorlax", Role: RoleDefender, Lane: LaneTop},
				{Name: "Cramorant", Role: RoleAttacker, Lane: LaneBottom},
			},
			want: []string{
				BadgePerfectLaneCoverage,
				BadgeNoSupport,
				BadgeNoSpeedster,
				BadgeHighOffense,
				BadgeLowMobility,
			},
		},
		{
			name: "two junglers",
			team: Team{
				{Name: "Zeraora", Role: RoleSpeedster, Lane: LaneJungle},
				{Name: "Greninja", Role: RoleAttacker, Lane: LaneJungle},
			},
			want: []string{
				BadgeOneLaneFocus,
				BadgeNoSupport,
				BadgeNoDefender,
				BadgeLaneConflict,
				BadgeHighOffense,
				BadgeNoDefense,
				BadgeDoubleJungle,
			},
		},
		{
			name: "meta five stack",
			team: Team{
				{Name: "Zeraora", Role: RoleSpeedster, Lane: LaneJungle},
				{Name: "Snorlax", Role: RoleDefender, Lane: LaneTop},
				{Name: "Blissey", Role: RoleSupporter, Lane: LaneBottom},
				{Name: "Cinderace", Role: RoleAttacker, Lane: LaneTop},
				{Name: "Lucario", Role: RoleAllRounder, Lane: LaneBottom},
			},
			want: []string{
				BadgePerfectLaneCoverage,
				BadgeRoleDiversity,
				BadgeBalancedCore,
				BadgeMetaCore,
				BadgeNoSupport,
			},
		},
		{
			name: "three attackers top",
			team: Team{
				{Name: "Cinderace", Role: RoleAttacker, Lane: LaneTop},
				{Name: "Pikachu", Role: RoleAttacker, Lane: LaneTop},
				{Name: "Venusaur", Role: RoleAttacker, Lane: LaneTop},
			},
			want: []string{
				BadgeOneLaneFocus,
				BadgeStackedRole,
				BadgeNoSupport,
				BadgeNoDefender,
				BadgeNoSpeedster,
				BadgeOverstackedLane,
				BadgeHighOffense,
				BadgeLowMobility,
				BadgeNoDefense,
			},
		},
		{
			name: "two supporters",
			team: Team{
				{Name: "Blissey", Role: RoleSupporter, Lane: LaneBottom},
				{Name: "Eldegoss", Role: RoleSupporter, Lane: LaneTop},
			},
			want: []string{
				BadgeNoSupport,
				BadgeNoDefender,
				BadgeNoAttacker,
				BadgeNoSpeedster,
				BadgeHighDefense,
				BadgeLowMobility,
				BadgeNoOffense,
				BadgeDoubleSupport,
			},
		},
		{
			name: "offense and defense tied",
			team: Team{
				{Name: "Pikachu", Role: RoleAttacker, Lane: LaneTop},
				{Name: "Snorlax", Role: RoleDefender, Lane: LaneBottom},
			},
			want: []string{
				BadgeNoSupport,
				BadgeNoSpeedster,
				BadgeHighOffense,
				BadgeHighDefense,
				BadgeLowMobility,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, labels(Badges(tc.team)))
		})
	}
}

func TestBadges_NoSupportFiresWithSupporter(t *testing.T) {
	team := Team{{Name: "Blissey", Role: RoleSupporter, Lane: LaneBottom}}

	assert.True(t, HasBadge(Badges(team), BadgeNoSupport))
}

func TestBadges_IgnoresUnknownLanesAndRoles(t *testing.T) {
	team := Team{
		{Name: "Snorlax", Role: RoleDefender, Lane: LaneTop},
		{Name: "Zeraora", Role: RoleAttacker, Lane: LaneJungle},
		{Name: "Blissey", Role: RoleSupporter, Lane: "Mid"},
		{Name: "Mamoswine", Role: "Tank", Lane: LaneTop},
	}

	badges := Badges(team)
	assert.False(t, HasBadge(badges, BadgePerfectLaneCoverage))
	assert.False(t, HasBadge(badges, BadgeRoleDiversity))

	oneKnownLane := Team{
		{Name: "Snorlax", Role: RoleDefender, Lane: LaneTop},
		{Name: "Blissey", Role: RoleSupporter, Lane: "Mid"},
	}
	assert.True(t, HasBadge(Badges(oneKnownLane), BadgeOneLaneFocus))
}

func TestBadges_Colors(t *testing.T) {
	team := Team{
		{Name: "Zeraora", Role: RoleSpeedster, Lane: LaneJungle},
		{Name: "Greninja", Role: RoleAttacker, Lane: LaneJungle},
	}

	colors := map[string]string{}
	for _, b := range Badges(team) {
		colors[b.Label] = b.Color
	}
	assert.Equal(t, "bg-amber-700", colors[BadgeLaneConflict])
	assert.Equal(t, "bg-orange-700", colors[BadgeDoubleJungle])
	assert.Equal(t, "bg-pink-600", colors[BadgeNoSupport])
}

func TestAdvise(t *testing.T) {
	cases := []struct {
		name   string
		badges []string
		want   string
	}{
		{name: "no badges", badges: nil, want: AdviceSolid},
		{name: "lane conflict beats everything", badges: []string{BadgeLowMobility, BadgeNoSupport, BadgeLaneConflict}, want: advicePriority[0].advice},
		{name: "no support next", badges: []string{BadgeBalancedCore, BadgeNoSupport}, want: advicePriority[1].advice},
		{name: "balanced core over low mobility", badges: []string{BadgeLowMobility, BadgeBalancedCore}, want: advicePriority[5].advice},
		{name: "low mobility alone", badges: []string{BadgeLowMobility}, want: advicePriority[6].advice},
		{name: "unranked badges only", badges: []string{BadgeHighOffense, BadgeMetaCore}, want: AdviceSolid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			badges := make([]Badge, 0, len(tc.badges))
			for _, l := range tc.badges {
				badges = append(badges, Badge{Label: l})
			}
			assert.Equal(t, tc.want, Advise(badges))
		})
	}
}
