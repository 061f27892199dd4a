package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nexusdraft/hots-draft-backend/internal/draft"
)

var ErrUnsupportedCommand = errors.New("unsupported command")

// StatsProvider supplies a tracked player's win-rate table for a
// battleground. Implementations must be safe for concurrent use; the
// session actor is the only caller within one session.
type StatsProvider interface {
	PlayerStats(ctx context.Context, battletag, battleground string) (*draft.PlayerStats, error)
}

type CommandType string

const (
	CmdApplySelection CommandType = "ApplySelection"
	CmdUndo           CommandType = "Undo"
	CmdReset          CommandType = "Reset"
	CmdSetConfig      CommandType = "SetConfig"
)

// Command is a client request against the session's draft state.
type Command struct {
	Type         CommandType
	Hero         string
	Battleground string
	OurTeam      draft.Team
	Battletag    string
}

type Msg interface{ isSessionMsg() }

type FromClient struct {
	Cmd Command
	// Reply, when non-nil, receives the validation outcome so the
	// transport can surface InvalidSelection / NothingToUndo to the
	// client instead of dropping it.
	Reply chan error
}

func (FromClient) isSessionMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

// Config is the per-session draft context supplied by the UI.
type Config struct {
	Battleground string
	OurTeam      draft.Team
	Battletag    string
}

// Snapshot is what subscribed clients receive after every accepted
// mutation. Recommendations are recomputed inside the actor so the
// state never escapes the session goroutine mid-mutation.
type Snapshot struct {
	Version         int
	State           draft.State
	Config          Config
	Recommendations []draft.Recommendation
}

// View is a read-only reflection of session internals, served to the
// HTTP layer and tests without racing the actor.
type View struct {
	Version         int
	NumClients      int
	State           draft.State
	Config          Config
	Recommendations []draft.Recommendation
}

// Session owns one draft.State and serializes all access through its
// inbox. One goroutine per session, started by New.
type Session struct {
	inbox   chan Msg
	state   *draft.State
	cfg     Config
	stats   StatsProvider
	log     *zap.Logger
	version int
	clients map[string]chan Snapshot
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, cfg Config, stats StatsProvider, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		inbox:   make(chan Msg, 64),
		state:   draft.NewState(cfg.OurTeam),
		cfg:     cfg,
		stats:   stats,
		log:     log,
		clients: make(map[string]chan Snapshot),
		ctx:     ctx,
		cancel:  cancel,
	}

	go s.loop()
	return s
}

// Inbox exposes the message channel to the transport layer and tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- s.snapshot()

			case Leave:
				delete(s.clients, msg.ClientID)

			case FromClient:
				err := s.apply(msg.Cmd)
				if msg.Reply != nil {
					msg.Reply <- err
				}
				if err != nil {
					s.log.Debug("command rejected",
						zap.String("type", string(msg.Cmd.Type)),
						zap.String("hero", msg.Cmd.Hero),
						zap.Error(err))
					break
				}
				s.version++
				s.broadcast(s.snapshot())

			case GetState:
				msg.Reply <- View{
					Version:         s.version,
					NumClients:      len(s.clients),
					State:           s.stateCopy(),
					Config:          s.cfg,
					Recommendations: s.recommend(),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

// apply runs one command against the draft state. Validation errors
// come straight from the controller and are local, never fatal.
func (s *Session) apply(cmd Command) error {
	switch cmd.Type {
	case CmdApplySelection:
		return s.state.ApplySelection(cmd.Hero)
	case CmdUndo:
		return s.state.Undo()
	case CmdReset:
		s.state.Reset()
		return nil
	case CmdSetConfig:
		// Merge field-wise: a battleground-only update must not wipe
		// the tracked battletag or the team assignment.
		if cmd.Battleground != "" {
			s.cfg.Battleground = cmd.Battleground
		}
		if cmd.Battletag != "" {
			s.cfg.Battletag = cmd.Battletag
		}
		if cmd.OurTeam != "" {
			s.cfg.OurTeam = cmd.OurTeam
			s.state.OurTeam = cmd.OurTeam
		}
		return nil
	default:
		return ErrUnsupportedCommand
	}
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		Version:         s.version,
		State:           s.stateCopy(),
		Config:          s.cfg,
		Recommendations: s.recommend(),
	}
}

// stateCopy clones the draft state with its own History backing
// array. A plain struct copy would share it, letting an undo followed
// by a new selection rewrite snapshots already handed to client
// goroutines.
func (s *Session) stateCopy() draft.State {
	st := *s.state
	st.History = append([]draft.Selection(nil), s.state.History...)
	return st
}

// recommend scores the current turn with whatever player context the
// session has. Called from the actor goroutine only.
func (s *Session) recommend() []draft.Recommendation {
	opts := draft.Options{Battleground: s.cfg.Battleground}
	if s.stats != nil && s.cfg.Battletag != "" {
		ps, err := s.stats.PlayerStats(s.ctx, s.cfg.Battletag, s.cfg.Battleground)
		if err != nil {
			s.log.Warn("player stats unavailable",
				zap.String("battletag", s.cfg.Battletag), zap.Error(err))
		} else {
			opts.Player = ps
		}
	}
	return draft.Recommend(s.state, opts)
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch)
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
			close(ch)
			delete(s.clients, id)
		}
	}
}
