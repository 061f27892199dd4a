package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/nexusdraft/hots-draft-backend/internal/draft"
	"github.com/nexusdraft/hots-draft-backend/internal/hub"
	"github.com/nexusdraft/hots-draft-backend/internal/session"
	"github.com/nexusdraft/hots-draft-backend/internal/types"
)

func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		sess := <-reply
		if sess == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Snapshot, 8)
		clientID := randID(6)
		log.Debug("client joined", zap.String("session", code), zap.String("client", clientID))

		sess.Inbox() <- session.Join{ClientID: clientID, Outbox: out}
		defer func() { sess.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				msg := types.ServerMessage{
					Type:            "StateSnapshot",
					Version:         snap.Version,
					State:           &snap.State,
					Config:          &snap.Config,
					Recommendations: snap.Recommendations,
				}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			cmd, ok := toSessionCommand(cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}

			// Validation errors go back to the sender only; accepted
			// commands reach everyone through the snapshot broadcast.
			errReply := make(chan error, 1)
			sess.Inbox() <- session.FromClient{Cmd: cmd, Reply: errReply}
			if cmdErr := <-errReply; cmdErr != nil {
				writeError(r.Context(), conn, cmdErr.Error())
			}
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}

func toSessionCommand(m types.ClientMessage) (session.Command, bool) {
	switch m.Type {
	case "ApplySelection":
		if m.Hero == "" {
			return session.Command{}, false
		}
		return session.Command{Type: session.CmdApplySelection, Hero: m.Hero}, true
	case "Undo":
		return session.Command{Type: session.CmdUndo}, true
	case "Reset":
		return session.Command{Type: session.CmdReset}, true
	case "SetConfig":
		cmd := session.Command{
			Type:         session.CmdSetConfig,
			Battleground: m.Battleground,
			Battletag:    m.Battletag,
		}
		// Team is optional; omitting it keeps the current assignment.
		if m.Team != "" {
			team, ok := parseTeam(m.Team)
			if !ok {
				return session.Command{}, false
			}
			cmd.OurTeam = team
		}
		return cmd, true
	default:
		return session.Command{}, false
	}
}

func parseTeam(team string) (draft.Team, bool) {
	switch team {
	case "blue":
		return draft.TeamBlue, true
	case "red":
		return draft.TeamRed, true
	default:
		return "", false
	}
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
