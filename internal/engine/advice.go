package engine

const AdviceSolid = "Your team has solid synergy. Keep the pressure on!"

var advicePriority = []struct {
	badge  string
	advice string
}{
	{BadgeLaneConflict, "Two or more junglers will fight over camps. Move one into a lane."},
	{BadgeNoSupport, "Nobody is healing or shielding. A Supporter would keep fights going longer."},
	{BadgeNoDefender, "No Defender to soak damage. Your scorers will be exposed."},
	{BadgeStackedRole, "One role is stacked three deep. Swap a pick for coverage."},
	{BadgePerfectLaneCoverage, "Every lane is covered. Rotate early and contest objectives."},
	{BadgeBalancedCore, "Attacker, Defender and Supporter form a dependable core."},
	{BadgeLowMobility, "Low mobility. A Speedster or All-Rounder would help you rotate."},
}

// Advise returns the single advisory line for the highest-priority badge present.
func Advise(badges []Badge) string {
	for _, p := range advicePriority {
		if HasBadge(badges, p.badge) {
			return p.advice
		}
	}
	return AdviceSolid
}
