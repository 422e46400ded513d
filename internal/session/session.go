package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
	"github.com/DoyleJ11/unite-synergy/internal/team"
)

type Msg interface{ isSessionMsg() }

// FromClient applies a team command. Reply, if set, receives the outcome. The session
// never waits on Reply: give it a buffer of one or the outcome is dropped.
type FromClient struct {
	Cmd   team.Command
	Reply chan<- error
}

func (FromClient) isSessionMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

// ReloadRoster swaps in a fresh roster snapshot and rescores the current team.
type ReloadRoster struct {
	Entries []engine.RosterEntry
}

func (ReloadRoster) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

type Snapshot struct {
	Version     int                  `json:"version"`
	State       team.State           `json:"state"`
	Synergy     engine.SynergyResult `json:"synergy"`
	Suggestions []engine.Suggestion  `json:"suggestions"`
}

type View struct {
	Version    int
	NumClients int
	State      team.State
	RosterSize int
}

type Session struct {
	inbox   chan Msg
	state   team.State
	roster  []engine.RosterEntry
	version int
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewSession(parent context.Context, roster []engine.RosterEntry, initial team.State, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		inbox:   make(chan Msg, 64),
		state:   initial,
		roster:  roster,
		version: 0,
		clients: make(map[string]chan Snapshot),
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.log.Debug("client joined", zap.String("client", msg.ClientID))
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- s.snapshot()

			case Leave:
				delete(s.clients, msg.ClientID)

			case FromClient:
				_, newState, err := team.Apply(s.state, msg.Cmd)
				if msg.Reply != nil {
					select {
					case msg.Reply <- err:
					default:
						s.log.Warn("command reply dropped", zap.String("command", string(msg.Cmd.Type)))
					}
				}
				if err != nil {
					s.log.Info("command rejected",
						zap.String("command", string(msg.Cmd.Type)),
						zap.Error(err))
					break
				}
				s.state = newState
				s.version++
				s.broadcast(s.snapshot())

			case ReloadRoster:
				s.roster = msg.Entries
				s.version++
				s.log.Info("roster reloaded", zap.Int("entries", len(msg.Entries)))
				s.broadcast(s.snapshot())

			case GetState:
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					State:      s.state,
					RosterSize: len(s.roster),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Version:     s.version,
		State:       s.state,
		Synergy:     engine.Classify(s.state.Members, s.roster),
		Suggestions: engine.Suggest(s.roster, s.state.Members, s.state.StackSize),
	}
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch) // no more snapshots
		delete(s.clients, id)
	}
	s.cancel()
}

func (s *Session) broadcast(snap Snapshot) {
	for id, ch := range s.clients {
		select {
		case ch <- snap:
		default:
			// Client is slow/full - drop them.
			s.log.Warn("dropping slow client", zap.String("client", id))
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) Inbox() chan<- Msg { return s.inbox }
