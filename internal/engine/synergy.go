package engine

import (
	"errors"
	"fmt"
	"math"
)

var ErrDataUnavailable = errors.New("roster data unavailable")
var ErrUnresolvedMember = errors.New("team member not in roster")

const (
	fragileBelow    = 35
	overcrowdedOver = 60
)

const (
	MessageFragile     = "Your team might struggle to hold objectives."
	MessageOvercrowded = "Too many damage dealers — consider adding support."
	MessageMissingData = "Missing data"
)

// Resolve maps every team member to its roster entry. A team is never partially resolved.
func Resolve(team Team, roster []RosterEntry) ([]RosterEntry, error) {
	if len(roster) == 0 {
		return nil, ErrDataUnavailable
	}

	entries := make([]RosterEntry, 0, len(team))
	for _, m := range team {
		e, ok := Lookup(roster, m.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedMember, m.Name)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Classify scores a team's estimated win rate and describes its composition.
// Unresolvable input yields an Unknown result rather than an error.
func Classify(team Team, roster []RosterEntry) SynergyResult {
	if len(team) == 0 {
		return unknownResult("")
	}

	entries, err := Resolve(team, roster)
	switch {
	case errors.Is(err, ErrDataUnavailable):
		return unknownResult("")
	case err != nil:
		return unknownResult(MessageMissingData)
	}

	percent := WinRatePercent(entries)
	label, message := labelFor(percent)
	badges := Badges(team)

	return SynergyResult{
		WinRatePercent: percent,
		Label:          label,
		Message:        message,
		Advice:         Advise(badges),
		Badges:         badges,
	}
}

// WinRatePercent averages the tier-weighted win rates of entries, normalized by the
// highest tier weight, as a whole percentage in [0, 100].
func WinRatePercent(entries []RosterEntry) int {
	if len(entries) == 0 {
		return 0
	}

	sum := 0.0
	for _, e := range entries {
		sum += effectiveWinRate(e) * e.Tier.Weight() / MaxTierWeight
	}
	avg := sum / float64(len(entries))

	percent := math.Round(avg * 100)
	if math.IsNaN(percent) {
		return 0
	}
	return int(max(0, min(100, percent)))
}

func effectiveWinRate(e RosterEntry) float64 {
	switch {
	case e.FeedbackBoostedWinRate != nil:
		return *e.FeedbackBoostedWinRate
	case e.WinRate != nil:
		return *e.WinRate
	}
	return 0
}

func labelFor(percent int) (SynergyLabel, string) {
	switch {
	case percent < fragileBelow:
		return SynergyFragile, MessageFragile
	case percent > overcrowdedOver:
		return SynergyOvercrowded, MessageOvercrowded
	}
	return SynergyBalanced, ""
}

func unknownResult(message string) SynergyResult {
	return SynergyResult{Label: SynergyUnknown, Message: message, Badges: []Badge{}}
}
