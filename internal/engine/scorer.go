package engine

import (
	"fmt"
	"slices"
)

// SuggestionLimit is how many ranked candidates Suggest returns.
const SuggestionLimit = 3

const maxWinRateBonus = 10.0

// Candidate is what a ScoringRule sees: one roster entry against the current team.
type Candidate struct {
	Entry RosterEntry
	Team  Team
	Stack StackSize
	Lanes LaneCounts
	Roles RoleCounts
}

// ScoringRule contributes a signed delta to a candidate's score.
type ScoringRule struct {
	Name  string
	Delta func(c Candidate) float64
}

// DefaultRules is the rule set Score applies, in evaluation order.
var DefaultRules = []ScoringRule{
	{Name: "lane-fill", Delta: laneFill},
	{Name: "recommended-lane", Delta: recommendedLaneFill},
	{Name: "role-fill", Delta: roleFill},
	{Name: "role-priors", Delta: rolePriors},
	{Name: "balance", Delta: balance},
	{Name: "overcrowding", Delta: overcrowding},
	{Name: "win-rate", Delta: winRateBonus},
}

type Scorer struct {
	Rules []ScoringRule
	Limit int
}

func NewScorer() *Scorer {
	return &Scorer{Rules: DefaultRules, Limit: SuggestionLimit}
}

// Score ranks every eligible candidate against team, highest first. Ties keep roster order.
// The result is not truncated; Suggest applies Limit.
func (s *Scorer) Score(candidates []RosterEntry, team Team, stack StackSize) []ScoredCandidate {
	scored := []ScoredCandidate{}
	if len(team) == 0 || len(candidates) == 0 {
		return scored
	}

	lanes := CountLanes(team)
	roles := CountRoles(team)

	for _, entry := range candidates {
		if !eligible(entry, team) {
			continue
		}
		c := Candidate{Entry: entry, Team: team, Stack: stack, Lanes: lanes, Roles: roles}
		scored = append(scored, ScoredCandidate{Entry: entry, Score: s.fold(c)})
	}

	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return scored
}

// Suggest returns at most Limit top-ranked candidates as display records.
func (s *Scorer) Suggest(candidates []RosterEntry, team Team, stack StackSize) []Suggestion {
	scored := s.Score(candidates, team, stack)
	if s.Limit > 0 && len(scored) > s.Limit {
		scored = scored[:s.Limit]
	}

	out := make([]Suggestion, 0, len(scored))
	for _, sc := range scored {
		out = append(out, Suggestion{
			ScoredCandidate: sc,
			RecommendedLane: RecommendedLane(sc.Entry.Role),
			WinRate:         formatPercent(sc.Entry.FeedbackBoostedWinRate),
		})
	}
	return out
}

func (s *Scorer) fold(c Candidate) float64 {
	total := 0.0
	for _, rule := range s.Rules {
		total += rule.Delta(c)
	}
	return total
}

// Score ranks all eligible candidates with the default rules. Use Suggest for the
// top three.
func Score(candidates []RosterEntry, team Team, stack StackSize) []ScoredCandidate {
	return NewScorer().Score(candidates, team, stack)
}

// Suggest returns at most three candidates under the default rules.
func Suggest(candidates []RosterEntry, team Team, stack StackSize) []Suggestion {
	return NewScorer().Suggest(candidates, team, stack)
}

func eligible(entry RosterEntry, team Team) bool {
	if entry.Role == "" || entry.PreferredLane == "" {
		return false
	}
	return !team.Contains(entry.Name)
}

func formatPercent(rate *float64) string {
	if rate == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *rate*100)
}

func fillBonus(count int) float64 {
	switch count {
	case 0:
		return 4
	case 1:
		return 2
	}
	return 0
}

func laneFill(c Candidate) float64 {
	return fillBonus(c.Lanes[c.Entry.PreferredLane])
}

func recommendedLaneFill(c Candidate) float64 {
	if c.Lanes[RecommendedLane(c.Entry.Role)] == 0 {
		return 1
	}
	return 0
}

func roleFill(c Candidate) float64 {
	return fillBonus(c.Roles[c.Entry.Role])
}

func rolePriors(c Candidate) float64 {
	switch c.Entry.Role {
	case RoleSupporter:
		// Larger teams need more sustain.
		if c.Stack == Stack5 {
			return 3
		}
		return 2
	case RoleSpeedster:
		if c.Stack != Stack5 {
			return 1
		}
	case RoleDefender:
		return 1
	}
	return 0
}

func isOffense(r Role) bool { return r == RoleAttacker || r == RoleAllRounder }

func isDefense(r Role) bool { return r == RoleDefender || r == RoleSupporter }

// OffenseDefense splits role counts into the offensive and defensive sides.
func OffenseDefense(roles RoleCounts) (offense, defense int) {
	offense = roles[RoleAttacker] + roles[RoleAllRounder]
	defense = roles[RoleDefender] + roles[RoleSupporter]
	return offense, defense
}

func balance(c Candidate) float64 {
	offense, defense := OffenseDefense(c.Roles)
	switch {
	case offense > defense && isDefense(c.Entry.Role):
		return 1
	case defense > offense && isOffense(c.Entry.Role):
		return 1
	}
	return 0
}

func overcrowding(c Candidate) float64 {
	penalty := 0.0
	if c.Lanes[c.Entry.PreferredLane] >= 2 {
		penalty -= 2
	}
	if c.Roles[c.Entry.Role] >= 3 {
		penalty -= 3
	}
	return penalty
}

func winRateBonus(c Candidate) float64 {
	if c.Entry.FeedbackBoostedWinRate == nil {
		return 0
	}
	return min(*c.Entry.FeedbackBoostedWinRate*100, maxWinRateBonus)
}
