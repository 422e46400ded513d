package engine

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAttacker   Role = "Attacker"
	RoleDefender   Role = "Defender"
	RoleSpeedster  Role = "Speedster"
	RoleSupporter  Role = "Supporter"
	RoleAllRounder Role = "All-Rounder"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAttacker, RoleDefender, RoleSpeedster, RoleSupporter, RoleAllRounder}

type Lane string

const (
	LaneTop    Lane = "Top"
	LaneJungle Lane = "Jungle"
	LaneBottom Lane = "Bottom"
)

var Lanes = []Lane{LaneTop, LaneJungle, LaneBottom}

type Tier string

const (
	TierS       Tier = "S"
	TierAPlus   Tier = "A+"
	TierA       Tier = "A"
	TierBPlus   Tier = "B+"
	TierB       Tier = "B"
	TierC       Tier = "C"
	TierD       Tier = "D"
	TierUnknown Tier = ""
)

var Tiers = []Tier{TierS, TierAPlus, TierA, TierBPlus, TierB, TierC, TierD}

// TierWeights scales a member's win rate by its tier.
var TierWeights = map[Tier]float64{
	TierS:     1.4,
	TierAPlus: 1.2,
	TierA:     1.0,
	TierBPlus: 0.8,
	TierB:     0.6,
	TierC:     0.4,
	TierD:     0.2,
}

const (
	MaxTierWeight     = 1.4
	UnknownTierWeight = 0.8
)

// Weight returns the tier's scoring weight, UnknownTierWeight for anything off the table.
func (t Tier) Weight() float64 {
	if w, ok := TierWeights[t]; ok {
		return w
	}
	return UnknownTierWeight
}

// RecommendedLanes is the canonical lane for each role.
var RecommendedLanes = map[Role]Lane{
	RoleAttacker:   LaneTop,
	RoleDefender:   LaneTop,
	RoleAllRounder: LaneBottom,
	RoleSupporter:  LaneBottom,
	RoleSpeedster:  LaneJungle,
}

func RecommendedLane(role Role) Lane {
	if lane, ok := RecommendedLanes[role]; ok {
		return lane
	}
	return LaneJungle
}

type StackSize string

const (
	Stack3 StackSize = "3 Stack"
	Stack5 StackSize = "5 Stack"
)

// Capacity is the maximum number of members a team may hold in this mode.
func (s StackSize) Capacity() int {
	if s == Stack5 {
		return 5
	}
	return 3
}

func (s StackSize) Valid() bool {
	return s == Stack3 || s == Stack5
}

// ParseStackSize accepts "3 Stack" / "5 Stack" or the bare counts "3" / "5".
func ParseStackSize(s string) (StackSize, error) {
	switch strings.TrimSpace(s) {
	case "3", string(Stack3):
		return Stack3, nil
	case "5", string(Stack5):
		return Stack5, nil
	}
	return "", fmt.Errorf("unknown stack size %q", s)
}

// UnmarshalText lets env and JSON decoding go through ParseStackSize.
func (s *StackSize) UnmarshalText(text []byte) error {
	v, err := ParseStackSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// RosterEntry is one playable character's aggregated stats. Nil win rates are absent.
type RosterEntry struct {
	Name                   string   `json:"name"`
	Role                   Role     `json:"role,omitempty"`
	PreferredLane          Lane     `json:"preferredLane,omitempty"`
	WinRate                *float64 `json:"winRate,omitempty"`
	FeedbackBoostedWinRate *float64 `json:"feedbackBoostedWinRate,omitempty"`
	Tier                   Tier     `json:"tier,omitempty"`
}

// TeamMember is a picked slot. Role and Lane are what the user assigned, not the roster default.
type TeamMember struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
	Lane Lane   `json:"lane"`
}

type Team []TeamMember

type LaneCounts map[Lane]int

type RoleCounts map[Role]int

func CountLanes(team Team) LaneCounts {
	counts := LaneCounts{}
	for _, m := range team {
		if m.Lane != "" {
			counts[m.Lane]++
		}
	}
	return counts
}

func CountRoles(team Team) RoleCounts {
	counts := RoleCounts{}
	for _, m := range team {
		if m.Role != "" {
			counts[m.Role]++
		}
	}
	return counts
}

// Contains reports whether a member with a matching name is already on the team.
func (t Team) Contains(name string) bool {
	key := NormalizeName(name)
	for _, m := range t {
		if NormalizeName(m.Name) == key {
			return true
		}
	}
	return false
}

type ScoredCandidate struct {
	Entry RosterEntry `json:"entry"`
	Score float64     `json:"score"`
}

// Suggestion is a ranked candidate ready for display.
type Suggestion struct {
	ScoredCandidate
	RecommendedLane Lane   `json:"recommendedLane"`
	WinRate         string `json:"winRate"`
}

type SynergyLabel string

const (
	SynergyBalanced    SynergyLabel = "Balanced"
	SynergyFragile     SynergyLabel = "Fragile"
	SynergyOvercrowded SynergyLabel = "Overcrowded"
	SynergyUnknown     SynergyLabel = "Unknown"
)

type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type SynergyResult struct {
	WinRatePercent int          `json:"winRatePercent"`
	Label          SynergyLabel `json:"label"`
	Message        string       `json:"message"`
	Advice         string       `json:"advice"`
	Badges         []Badge      `json:"badges"`
}

// Float returns a pointer to v, for building entries with optional win rates.
func Float(v float64) *float64 { return &v }
