package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/nexusdraft/hots-draft-backend/internal/session"
)

type HubMsg interface{ isHubMsg() }

// EnsureSession creates the session for Code if it does not exist yet
// and replies with it either way.
type EnsureSession struct {
	Code   string
	Config session.Config
	Reply  chan *session.Session
}

// GetSession replies with the session for Code, or nil.
type GetSession struct {
	Code  string
	Reply chan *session.Session
}

// RemoveSession shuts the session down and forgets its code.
type RemoveSession struct {
	Code string
}

type ShutdownHub struct{}

func (EnsureSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Hub owns the code -> session registry. Like the sessions themselves
// it is an actor: all access goes through the inbox.
type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*session.Session
	stats    session.StatsProvider
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, stats session.StatsProvider, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	if log == nil {
		log = zap.NewNop()
	}
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		sessions: make(map[string]*session.Session),
		stats:    stats,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case EnsureSession:
				if s := h.sessions[msg.Code]; s != nil {
					msg.Reply <- s
					break
				}
				s := session.New(h.ctx, msg.Config, h.stats, h.log.With(zap.String("session", msg.Code)))
				h.sessions[msg.Code] = s
				h.log.Info("session created",
					zap.String("session", msg.Code),
					zap.String("battleground", msg.Config.Battleground))
				msg.Reply <- s

			case GetSession:
				msg.Reply <- h.sessions[msg.Code] // may be nil

			case RemoveSession:
				if s := h.sessions[msg.Code]; s != nil {
					s.Inbox() <- session.Shutdown{}
					delete(h.sessions, msg.Code)
					h.log.Info("session removed", zap.String("session", msg.Code))
				}

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, s := range h.sessions {
		s.Inbox() <- session.Shutdown{}
	}
	clear(h.sessions)
	h.cancel()
}
