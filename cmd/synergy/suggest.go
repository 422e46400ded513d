package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
)

func newSuggestCmd(a *app, flags *rootFlags) *cobra.Command {
	var members []string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank the best next picks for a partial team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := buildTeam(members, a.roster, a.cfg.StackSize)
			if err != nil {
				return err
			}

			suggestions := engine.Suggest(a.roster, state.Members, state.StackSize)
			a.log.Debug("suggested",
				zap.Int("team", len(state.Members)),
				zap.Int("results", len(suggestions)))

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), suggestions)
			}
			return writeSuggestions(cmd.OutOrStdout(), suggestions)
		},
	}

	cmd.Flags().StringArrayVarP(&members, "member", "m", nil, "team member as name[:role[:lane]] (repeatable)")
	return cmd
}

func writeSuggestions(w io.Writer, suggestions []engine.Suggestion) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, "no suggestions")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROLE\tLANE\tWIN RATE\tSCORE")
	for _, s := range suggestions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\n",
			s.Entry.Name, s.Entry.Role, s.RecommendedLane, s.WinRate, s.Score)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
