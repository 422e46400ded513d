package engine

import (
	"maps"
	"slices"
)

const (
	BadgeOneLaneFocus        = "One-Lane Focus"
	BadgePerfectLaneCoverage = "Perfect Lane Coverage"
	BadgeRoleDiversity       = "Role Diversity"
	BadgeStackedRole         = "Stacked Role"
	BadgeBalancedCore        = "Balanced Core"
	BadgeMetaCore            = "Meta Core"
	BadgeLaneConflict        = "Lane Conflict"
	BadgeOverstackedLane     = "Overstacked Lane"
	BadgeHighOffense         = "High Offense"
	BadgeHighDefense         = "High Defense"
	BadgeLowMobility         = "Low Mobility"
	BadgeNoOffense           = "No Offense"
	BadgeNoDefense           = "No Defense"
	BadgeDoubleSupport       = "Double Support"
	BadgeDoubleJungle        = "Double Jungle"

	BadgeNoSupport   = "No Support"
	BadgeNoDefender  = "No Defender"
	BadgeNoAttacker  = "No Attacker"
	BadgeNoSpeedster = "No Speedster"
)

// missingRoleKeys are checked against role counts verbatim. "Support" is not a Role,
// so "No Support" fires for every team; downstream copy depends on that.
var missingRoleKeys = []Role{"Support", RoleDefender, RoleAttacker, RoleSpeedster}

const missingRoleColor = "bg-pink-600"

type composition struct {
	team  Team
	lanes LaneCounts
	roles RoleCounts
}

type badgeRule struct {
	label string
	color string
	match func(c composition) bool
}

var badgeRules = []badgeRule{
	{BadgeOneLaneFocus, "bg-orange-500", func(c composition) bool { return len(c.lanes) == 1 }},
	{BadgePerfectLaneCoverage, "bg-green-500", func(c composition) bool { return len(c.lanes) == len(Lanes) }},
	{BadgeRoleDiversity, "bg-purple-500", func(c composition) bool { return len(c.roles) >= 4 }},
	{BadgeStackedRole, "bg-red-600", stackedRole},
	{BadgeBalancedCore, "bg-yellow-500", func(c composition) bool {
		return c.roles[RoleAttacker] > 0 && c.roles[RoleDefender] > 0 && c.roles[RoleSupporter] > 0
	}},
	{BadgeMetaCore, "bg-cyan-500", func(c composition) bool {
		return c.has(RoleSpeedster, LaneJungle) && c.has(RoleDefender, LaneTop) && c.has(RoleSupporter, LaneBottom)
	}},
}

var trailingBadgeRules = []badgeRule{
	{BadgeLaneConflict, "bg-amber-700", doubleJungle},
	{BadgeOverstackedLane, "bg-amber-800", func(c composition) bool {
		return c.lanes[LaneTop] >= 3 || c.lanes[LaneBottom] >= 3
	}},
	{BadgeHighOffense, "bg-red-500", func(c composition) bool {
		offense, _ := OffenseDefense(c.roles)
		return float64(offense) >= float64(len(c.team))/2
	}},
	{BadgeHighDefense, "bg-blue-500", func(c composition) bool {
		_, defense := OffenseDefense(c.roles)
		return float64(defense) >= float64(len(c.team))/2
	}},
	{BadgeLowMobility, "bg-gray-600", func(c composition) bool {
		return c.roles[RoleSpeedster] == 0 && c.roles[RoleAllRounder] == 0
	}},
	{BadgeNoOffense, "bg-pink-700", func(c composition) bool {
		offense, _ := OffenseDefense(c.roles)
		return offense == 0
	}},
	{BadgeNoDefense, "bg-pink-700", func(c composition) bool {
		_, defense := OffenseDefense(c.roles)
		return defense == 0
	}},
	{BadgeDoubleSupport, "bg-fuchsia-600", func(c composition) bool { return c.roles[RoleSupporter] >= 2 }},
	{BadgeDoubleJungle, "bg-orange-700", doubleJungle},
}

// Badges describes the team's lane and role distribution. Every matching rule adds one
// badge, in a fixed order. An empty team has no badges. Lanes and roles outside Lanes
// and Roles are ignored.
func Badges(team Team) []Badge {
	badges := []Badge{}
	if len(team) == 0 {
		return badges
	}

	c := composition{team: team, lanes: knownLanes(CountLanes(team)), roles: knownRoles(CountRoles(team))}

	for _, r := range badgeRules {
		if r.match(c) {
			badges = append(badges, Badge{Label: r.label, Color: r.color})
		}
	}
	for _, role := range missingRoleKeys {
		if c.roles[role] == 0 {
			badges = append(badges, Badge{Label: "No " + string(role), Color: missingRoleColor})
		}
	}
	for _, r := range trailingBadgeRules {
		if r.match(c) {
			badges = append(badges, Badge{Label: r.label, Color: r.color})
		}
	}
	return badges
}

// HasBadge reports whether label is among badges.
func HasBadge(badges []Badge, label string) bool {
	for _, b := range badges {
		if b.Label == label {
			return true
		}
	}
	return false
}

func (c composition) has(role Role, lane Lane) bool {
	for _, m := range c.team {
		if m.Role == role && m.Lane == lane {
			return true
		}
	}
	return false
}

func knownLanes(counts LaneCounts) LaneCounts {
	maps.DeleteFunc(counts, func(l Lane, _ int) bool { return !slices.Contains(Lanes, l) })
	return counts
}

func knownRoles(counts RoleCounts) RoleCounts {
	maps.DeleteFunc(counts, func(r Role, _ int) bool { return !slices.Contains(Roles, r) })
	return counts
}

func stackedRole(c composition) bool {
	for _, n := range c.roles {
		if n >= 3 {
			return true
		}
	}
	return false
}

// Lane Conflict and Double Jungle share this condition.
func doubleJungle(c composition) bool {
	return c.lanes[LaneJungle] >= 2
}
