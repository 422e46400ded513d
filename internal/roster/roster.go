package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
)

var ErrInvalidRecord = errors.New("invalid roster record")
var ErrDuplicateName = errors.New("duplicate roster name")

// Record is one roster row as the data source delivers it, before validation.
type Record struct {
	Name                   string   `json:"Name"`
	Role                   string   `json:"Role"`
	PreferredLane          string   `json:"PreferredLane"`
	WinRate                *float64 `json:"WinRate"`
	FeedbackBoostedWinRate *float64 `json:"FeedbackBoostedWinRate"`
	Tier                   string   `json:"Tier"`

	// Set when the source gave an explicit unit, so the rate is already a fraction.
	winRateFraction bool
	boostedFraction bool
}

var laneAliases = map[string]engine.Lane{
	"bot": engine.LaneBottom,
}

// Build validates records and converts them to roster entries, preserving order.
func Build(records []Record) ([]engine.RosterEntry, error) {
	entries := make([]engine.RosterEntry, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		e, err := rec.Entry()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		key := engine.NormalizeName(e.Name)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("row %d: %w: %q also on row %d", i+1, ErrDuplicateName, e.Name, prev)
		}
		seen[key] = i + 1
		entries = append(entries, e)
	}
	return entries, nil
}

// Entry validates a single record.
func (r Record) Entry() (engine.RosterEntry, error) {
	name := strings.TrimSpace(r.Name)
	if engine.NormalizeName(name) == "" {
		return engine.RosterEntry{}, fmt.Errorf("%w: missing name", ErrInvalidRecord)
	}

	role, err := ParseRole(r.Role)
	if err != nil {
		return engine.RosterEntry{}, err
	}
	lane, err := ParseLane(r.PreferredLane)
	if err != nil {
		return engine.RosterEntry{}, err
	}

	return engine.RosterEntry{
		Name:                   name,
		Role:                   role,
		PreferredLane:          lane,
		WinRate:                normalizeRate(r.WinRate, r.winRateFraction),
		FeedbackBoostedWinRate: normalizeRate(r.FeedbackBoostedWinRate, r.boostedFraction),
		Tier:                   ParseTier(r.Tier),
	}, nil
}

// ParseRole accepts any spelling that normalizes to a known role. Empty means absent.
func ParseRole(s string) (engine.Role, error) {
	key := engine.NormalizeName(s)
	if key == "" {
		return "", nil
	}
	for _, r := range engine.Roles {
		if engine.NormalizeName(string(r)) == key {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrInvalidRecord, s)
}

func ParseLane(s string) (engine.Lane, error) {
	key := engine.NormalizeName(s)
	if key == "" {
		return "", nil
	}
	if lane, ok := laneAliases[key]; ok {
		return lane, nil
	}
	for _, l := range engine.Lanes {
		if engine.NormalizeName(string(l)) == key {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown lane %q", ErrInvalidRecord, s)
}

// ParseTier maps a tier label to its enum. Anything unrecognized is TierUnknown,
// which the engine weighs at the default weight.
func ParseTier(s string) engine.Tier {
	t := engine.Tier(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range engine.Tiers {
		if t == known {
			return t
		}
	}
	return engine.TierUnknown
}

// normalizeRate treats unitless values in (1, 100] as percentages.
func normalizeRate(v *float64, fraction bool) *float64 {
	if v == nil {
		return nil
	}
	rate := *v
	if !fraction && rate > 1 && rate <= 100 {
		rate /= 100
	}
	return &rate
}
