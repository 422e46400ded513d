package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
	"github.com/DoyleJ11/unite-synergy/internal/roster"
	"github.com/DoyleJ11/unite-synergy/internal/session"
	"github.com/DoyleJ11/unite-synergy/internal/team"
)

const sessionHelp = `commands:
  pick name[:role[:lane]]   add a member
  drop name                 remove a member
  stack 3|5                 change stack size
  reset                     clear the team
  reload                    reload the roster source
  show                      print the team again
  quit                      leave`

var errQuit = errors.New("quit")

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Build a team interactively, rescoring after every change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

type repl struct {
	app    *app
	sess   *session.Session
	outbox chan session.Snapshot
	out    io.Writer
	last   session.Snapshot
}

func (a *app) runSession(ctx context.Context, in io.Reader, out io.Writer) error {
	sess := session.NewSession(ctx, a.roster, team.NewState(a.cfg.StackSize), a.log)
	defer func() { sess.Inbox() <- session.Shutdown{} }()

	r := &repl{
		app:    a,
		sess:   sess,
		outbox: make(chan session.Snapshot, 8),
		out:    out,
	}
	sess.Inbox() <- session.Join{ClientID: "cli", Outbox: r.outbox}
	if err := r.await(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, sessionHelp)
	r.print()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := r.handle(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		}
	}
}

func (r *repl) handle(ctx context.Context, line string) error {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "":
		return nil
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(r.out, sessionHelp)
		return nil
	case "show":
		r.print()
		return nil
	case "pick":
		m, err := parseMember(arg, r.app.roster)
		if err != nil {
			return err
		}
		return r.apply(ctx, team.Command{Type: team.CmdPick, Member: m})
	case "drop":
		return r.apply(ctx, team.Command{Type: team.CmdDeselect, Name: arg})
	case "reset":
		return r.apply(ctx, team.Command{Type: team.CmdReset})
	case "stack":
		stack, err := engine.ParseStackSize(arg)
		if err != nil {
			return err
		}
		return r.apply(ctx, team.Command{Type: team.CmdSetStackSize, StackSize: stack})
	case "reload":
		entries, err := roster.Load(ctx, r.app.cfg.RosterSource())
		if err != nil {
			return err
		}
		r.app.roster = entries
		r.sess.Inbox() <- session.ReloadRoster{Entries: entries}
		if err := r.await(ctx); err != nil {
			return err
		}
		r.print()
		return nil
	}
	return fmt.Errorf("unknown command %q (try help)", verb)
}

func (r *repl) apply(ctx context.Context, cmd team.Command) error {
	reply := make(chan error, 1)
	r.sess.Inbox() <- session.FromClient{Cmd: cmd, Reply: reply}

	select {
	case err := <-reply:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := r.await(ctx); err != nil {
		return err
	}
	r.print()
	return nil
}

// await blocks until the session pushes the next snapshot.
func (r *repl) await(ctx context.Context) error {
	select {
	case snap, ok := <-r.outbox:
		if !ok {
			return errors.New("session closed")
		}
		r.last = snap
		r.app.log.Debug("snapshot", zap.Int("version", snap.Version))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *repl) print() {
	snap := r.last
	fmt.Fprintf(r.out, "\nteam (%s, %d/%d):\n", snap.State.StackSize, len(snap.State.Members), snap.State.StackSize.Capacity())
	for _, m := range snap.State.Members {
		fmt.Fprintf(r.out, "  %s  %s  %s\n", m.Name, m.Role, m.Lane)
	}
	_ = writeSynergy(r.out, snap.Synergy)
	_ = writeSuggestions(r.out, snap.Suggestions)
}
