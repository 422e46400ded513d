package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DoyleJ11/unite-synergy/internal/config"
	"github.com/DoyleJ11/unite-synergy/internal/engine"
	"github.com/DoyleJ11/unite-synergy/internal/team"
)

var testRoster = []engine.RosterEntry{
	{Name: "Pikachu", Role: engine.RoleAttacker, PreferredLane: engine.LaneBottom, WinRate: engine.Float(0.51), Tier: engine.TierA},
	{Name: "Blissey", Role: engine.RoleSupporter, PreferredLane: engine.LaneTop, WinRate: engine.Float(0.55), Tier: engine.TierS},
	{Name: "Mr. Mime", Role: engine.RoleSupporter, PreferredLane: engine.LaneTop, WinRate: engine.Float(0.50), Tier: engine.TierB},
	{Name: "Snorlax", Role: engine.RoleDefender, PreferredLane: engine.LaneTop, WinRate: engine.Float(0.49), Tier: engine.TierB},
}

func TestParseMember(t *testing.T) {
	cases := []struct {
		name string
		spec string
		want engine.TeamMember
	}{
		{"roster defaults", "pikachu", engine.TeamMember{Name: "Pikachu", Role: engine.RoleAttacker, Lane: engine.LaneBottom}},
		{"role override", "Blissey:defender", engine.TeamMember{Name: "Blissey", Role: engine.RoleDefender, Lane: engine.LaneTop}},
		{"lane override only", "mrmime::jungle", engine.TeamMember{Name: "Mr. Mime", Role: engine.RoleSupporter, Lane: engine.LaneJungle}},
		{"lane alias", "Snorlax:Defender:bot", engine.TeamMember{Name: "Snorlax", Role: engine.RoleDefender, Lane: engine.LaneBottom}},
		{"unknown name kept", "Mew", engine.TeamMember{Name: "Mew"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMember(tc.spec, testRoster)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMember_Errors(t *testing.T) {
	for _, spec := range []string{"Pikachu:tank", "Pikachu:Attacker:mid", "a:b:c:d"} {
		_, err := parseMember(spec, testRoster)
		assert.Error(t, err, spec)
	}
}

func TestBuildTeam(t *testing.T) {
	s, err := buildTeam([]string{"Pikachu", "Blissey"}, testRoster, engine.Stack3)
	require.NoError(t, err)
	assert.Len(t, s.Members, 2)

	_, err = buildTeam([]string{"Pikachu", "pikachu"}, testRoster, engine.Stack3)
	assert.ErrorIs(t, err, team.ErrDuplicateMember)

	_, err = buildTeam([]string{"Pikachu", "Blissey", "Snorlax", "Mr. Mime"}, testRoster, engine.Stack3)
	assert.ErrorIs(t, err, team.ErrTeamFull)
}

func TestWriteSuggestions(t *testing.T) {
	var buf bytes.Buffer
	members := engine.Team{{Name: "Pikachu", Role: engine.RoleAttacker, Lane: engine.LaneBottom}}
	require.NoError(t, writeSuggestions(&buf, engine.Suggest(testRoster, members, engine.Stack3)))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Blissey")
	assert.NotContains(t, out, "Pikachu")

	buf.Reset()
	require.NoError(t, writeSuggestions(&buf, nil))
	assert.Equal(t, "no suggestions\n", buf.String())
}

func TestWriteSynergy(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSynergy(&buf, engine.SynergyResult{
		WinRatePercent: 30,
		Label:          engine.SynergyFragile,
		Message:        engine.MessageFragile,
		Badges:         []engine.Badge{{Label: "No Offense"}, {Label: "Double Support"}},
	}))

	out := buf.String()
	assert.Contains(t, out, "Fragile (30%)")
	assert.Contains(t, out, "No Offense, Double Support")
	assert.NotContains(t, out, "advice:")
}

func TestRunSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &app{
		cfg:    config.Config{StackSize: engine.Stack3},
		log:    zap.NewNop(),
		roster: testRoster,
	}
	in := strings.NewReader("pick Pikachu\npick pikachu\nbogus\ndrop Pikachu\nstack 5\nquit\n")
	var out bytes.Buffer

	require.NoError(t, a.runSession(ctx, in, &out))

	got := out.String()
	assert.Contains(t, got, "team (3 Stack, 0/3)")
	assert.Contains(t, got, "team (3 Stack, 1/3)")
	assert.Contains(t, got, "error: already on team")
	assert.Contains(t, got, `unknown command "bogus"`)
	assert.Contains(t, got, "team (5 Stack, 0/5)")
}
