package main

import (
	"fmt"
	"strings"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
	"github.com/DoyleJ11/unite-synergy/internal/roster"
	"github.com/DoyleJ11/unite-synergy/internal/team"
)

// parseMember reads "name[:role[:lane]]". Missing role and lane fall back to the
// roster entry's role and preferred lane. Names not in the roster are kept as
// typed so the classifier can report them as missing data.
func parseMember(spec string, entries []engine.RosterEntry) (engine.TeamMember, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return engine.TeamMember{}, fmt.Errorf("member %q: want name[:role[:lane]]", spec)
	}

	m := engine.TeamMember{Name: strings.TrimSpace(parts[0])}
	if entry, ok := engine.Lookup(entries, m.Name); ok {
		m = engine.TeamMember{Name: entry.Name, Role: entry.Role, Lane: entry.PreferredLane}
	}

	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		role, err := roster.ParseRole(parts[1])
		if err != nil {
			return engine.TeamMember{}, fmt.Errorf("member %q: %w", spec, err)
		}
		m.Role = role
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		lane, err := roster.ParseLane(parts[2])
		if err != nil {
			return engine.TeamMember{}, fmt.Errorf("member %q: %w", spec, err)
		}
		m.Lane = lane
	}
	return m, nil
}

// buildTeam picks every member in order through the team rules, so duplicates
// and overfilled stacks are rejected the same way an interactive session would.
func buildTeam(specs []string, entries []engine.RosterEntry, stack engine.StackSize) (team.State, error) {
	s := team.NewState(stack)
	for _, spec := range specs {
		m, err := parseMember(spec, entries)
		if err != nil {
			return s, err
		}
		_, s, err = team.Apply(s, team.Command{Type: team.CmdPick, Member: m})
		if err != nil {
			return s, fmt.Errorf("pick %s: %w", m.Name, err)
		}
	}
	return s, nil
}
