package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
)

func newClassifyCmd(a *app, flags *rootFlags) *cobra.Command {
	var members []string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Estimate a team's win rate and label its synergy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := buildTeam(members, a.roster, a.cfg.StackSize)
			if err != nil {
				return err
			}

			result := engine.Classify(state.Members, a.roster)
			a.log.Debug("classified",
				zap.String("label", string(result.Label)),
				zap.Int("winRatePercent", result.WinRatePercent))

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeSynergy(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringArrayVarP(&members, "member", "m", nil, "team member as name[:role[:lane]] (repeatable)")
	return cmd
}

func writeSynergy(w io.Writer, r engine.SynergyResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "synergy:  %s (%d%%)\n", r.Label, r.WinRatePercent)
	if r.Message != "" {
		fmt.Fprintf(&b, "message:  %s\n", r.Message)
	}
	if r.Advice != "" {
		fmt.Fprintf(&b, "advice:   %s\n", r.Advice)
	}
	if len(r.Badges) > 0 {
		labels := make([]string, 0, len(r.Badges))
		for _, badge := range r.Badges {
			labels = append(labels, badge.Label)
		}
		fmt.Fprintf(&b, "badges:   %s\n", strings.Join(labels, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
