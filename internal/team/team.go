package team

import (
	"errors"
	"fmt"
	"slices"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
)

var ErrTeamFull = errors.New("team is full")
var ErrDuplicateMember = errors.New("already on team")
var ErrMemberNotFound = errors.New("not on team")
var ErrInvalidMember = errors.New("invalid member")
var ErrInvalidStackSize = errors.New("invalid stack size")
var ErrStackTooSmall = errors.New("stack size smaller than team")
var ErrUnsupportedCommand = errors.New("unsupported command")

type State struct {
	StackSize engine.StackSize `json:"stackSize"`
	Members   engine.Team      `json:"members"`
}

func NewState(stack engine.StackSize) State {
	if !stack.Valid() {
		stack = engine.Stack3
	}
	return State{StackSize: stack, Members: engine.Team{}}
}

// Full reports whether the team is at capacity for its stack size.
func (s State) Full() bool {
	return len(s.Members) >= s.StackSize.Capacity()
}

type CommandType string

const (
	CmdPick         CommandType = "Pick"
	CmdDeselect     CommandType = "Deselect"
	CmdReset        CommandType = "Reset"
	CmdSetStackSize CommandType = "SetStackSize"
)

/*
	CmdPick         -> EvtMemberPicked -> EvtTeamFilled (when the pick reaches capacity)
	CmdDeselect     -> EvtMemberRemoved
	CmdReset        -> EvtTeamReset
	CmdSetStackSize -> EvtStackSizeChanged
*/

type Command struct {
	Type      CommandType
	Member    engine.TeamMember
	Name      string
	StackSize engine.StackSize
}

type EventType string

const (
	EvtMemberPicked     EventType = "MemberPicked"
	EvtMemberRemoved    EventType = "MemberRemoved"
	EvtTeamReset        EventType = "TeamReset"
	EvtStackSizeChanged EventType = "StackSizeChanged"
	EvtTeamFilled       EventType = "TeamFilled"
)

type Event struct {
	Type      EventType
	Member    engine.TeamMember
	StackSize engine.StackSize
}

// Apply validates cmd against s and returns the resulting events and state.
// s is never modified; on error it is returned as is.
func Apply(s State, cmd Command) ([]Event, State, error) {
	switch cmd.Type {
	case CmdPick:
		m := cmd.Member
		if err := validMember(m); err != nil {
			return nil, s, err
		}
		if s.Members.Contains(m.Name) {
			return nil, s, fmt.Errorf("%w: %s", ErrDuplicateMember, m.Name)
		}
		if s.Full() {
			return nil, s, ErrTeamFull
		}

		newState := s.clone()
		newState.Members = append(newState.Members, m)

		events := []Event{{Type: EvtMemberPicked, Member: m}}
		if newState.Full() {
			events = append(events, Event{Type: EvtTeamFilled})
		}
		return events, newState, nil

	case CmdDeselect:
		idx := slices.IndexFunc(s.Members, func(m engine.TeamMember) bool {
			return engine.SameName(m.Name, cmd.Name)
		})
		if idx < 0 {
			return nil, s, fmt.Errorf("%w: %s", ErrMemberNotFound, cmd.Name)
		}

		newState := s.clone()
		removed := newState.Members[idx]
		newState.Members = slices.Delete(newState.Members, idx, idx+1)
		return []Event{{Type: EvtMemberRemoved, Member: removed}}, newState, nil

	case CmdReset:
		return []Event{{Type: EvtTeamReset}}, NewState(s.StackSize), nil

	case CmdSetStackSize:
		if !cmd.StackSize.Valid() {
			return nil, s, fmt.Errorf("%w: %q", ErrInvalidStackSize, cmd.StackSize)
		}
		if len(s.Members) > cmd.StackSize.Capacity() {
			return nil, s, ErrStackTooSmall
		}

		newState := s.clone()
		newState.StackSize = cmd.StackSize
		return []Event{{Type: EvtStackSizeChanged, StackSize: cmd.StackSize}}, newState, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

// Reduce replays events onto an empty team of the given stack size.
func Reduce(stack engine.StackSize, events []Event) State {
	s := NewState(stack)
	for _, event := range events {
		switch event.Type {
		case EvtMemberPicked:
			s.Members = append(s.Members, event.Member)
		case EvtMemberRemoved:
			s.Members = slices.DeleteFunc(s.Members, func(m engine.TeamMember) bool {
				return engine.SameName(m.Name, event.Member.Name)
			})
		case EvtTeamReset:
			s.Members = engine.Team{}
		case EvtStackSizeChanged:
			s.StackSize = event.StackSize
		}
	}
	return s
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	s.Members = slices.Clone(s.Members)
	if s.Members == nil {
		s.Members = engine.Team{}
	}
	return s
}

func validMember(m engine.TeamMember) error {
	if engine.NormalizeName(m.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMember)
	}
	if m.Role != "" && !slices.Contains(engine.Roles, m.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidMember, m.Role)
	}
	if m.Lane != "" && !slices.Contains(engine.Lanes, m.Lane) {
		return fmt.Errorf("%w: unknown lane %q", ErrInvalidMember, m.Lane)
	}
	return nil
}
