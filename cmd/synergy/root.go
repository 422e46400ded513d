package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DoyleJ11/unite-synergy/internal/config"
	"github.com/DoyleJ11/unite-synergy/internal/engine"
	"github.com/DoyleJ11/unite-synergy/internal/logger"
	"github.com/DoyleJ11/unite-synergy/internal/roster"
)

// app is what every subcommand gets once the root has loaded config and roster.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	roster []engine.RosterEntry
}

type rootFlags struct {
	envFile   string
	rosterSrc string
	dsn       string
	stack     string
	asJSON    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	a := &app{}

	root := &cobra.Command{
		Use:           "synergy",
		Short:         "Score team composition and suggest teammates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.init(cmd, flags)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", ".env", "optional dotenv file")
	pf.StringVar(&flags.rosterSrc, "roster", "", "roster file (.json or .csv); overrides SYNERGY_ROSTER")
	pf.StringVar(&flags.dsn, "roster-dsn", "", "postgres DSN for the roster table; overrides SYNERGY_ROSTER_DSN")
	pf.StringVar(&flags.stack, "stack", "", `stack size, "3 Stack" or "5 Stack" (3 and 5 accepted)`)
	pf.BoolVar(&flags.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		newSuggestCmd(a, &flags),
		newClassifyCmd(a, &flags),
		newSessionCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return err
	}
	if flags.rosterSrc != "" {
		cfg.RosterPath = flags.rosterSrc
	}
	if flags.dsn != "" {
		cfg.RosterDSN = flags.dsn
	}
	if flags.stack != "" {
		stack, err := engine.ParseStackSize(flags.stack)
		if err != nil {
			return err
		}
		cfg.StackSize = stack
	}
	a.cfg = cfg

	a.log, err = logger.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		return err
	}

	src := cfg.RosterSource()
	a.roster, err = roster.Load(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	a.log.Debug("roster loaded", zap.Stringer("source", src), zap.Int("entries", len(a.roster)))
	return nil
}
