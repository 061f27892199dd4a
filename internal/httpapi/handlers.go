package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nexusdraft/hots-draft-backend/internal/commentary"
	"github.com/nexusdraft/hots-draft-backend/internal/draft"
	"github.com/nexusdraft/hots-draft-backend/internal/hub"
	"github.com/nexusdraft/hots-draft-backend/internal/session"
)

// The dashboard shows this many suggestions; the engine itself
// returns the full ranked set.
const defaultRecommendationLimit = 12

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

type createSessionRequest struct {
	Battleground string `json:"battleground"`
	Team         string `json:"team"`
	Battletag    string `json:"battletag,omitempty"`
}

func CreateSession(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		team := draft.Team(req.Team)
		if team != draft.TeamBlue && team != draft.TeamRed {
			http.Error(w, "team must be blue or red", http.StatusBadRequest)
			return
		}

		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *session.Session, 1)
			h.Inbox() <- hub.GetSession{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Debug("code collision, regenerating", zap.String("code", c))
		}

		cfg := session.Config{
			Battleground: req.Battleground,
			OurTeam:      team,
			Battletag:    req.Battletag,
		}
		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.EnsureSession{Code: code, Config: cfg, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

// Recommendations serves the ranked hero list for a session's current
// turn, truncated for display.
func Recommendations(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := sessionView(h, w, r)
		if !ok {
			return
		}

		limit := defaultRecommendationLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}
		recs := view.Recommendations
		if len(recs) > limit {
			recs = recs[:limit]
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Version         int                    `json:"version"`
			Recommendations []draft.Recommendation `json:"recommendations"`
		}{Version: view.Version, Recommendations: recs})
	}
}

// Commentary asks the text-generation collaborator for a short note
// on the current draft.
func Commentary(h *hub.Hub, gen *commentary.Generator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, ok := sessionView(h, w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
		defer cancel()

		text, err := gen.Generate(ctx, view.Config.Battleground, view.State, view.Recommendations)
		if errors.Is(err, commentary.ErrDisabled) {
			http.Error(w, "commentary not configured", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			log.Warn("commentary failed", zap.Error(err))
			http.Error(w, "commentary failed", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(struct {
			Commentary string `json:"commentary"`
		}{Commentary: text})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// sessionView resolves {code} and fetches a consistent view of the
// session, writing the HTTP error itself when either step fails.
func sessionView(h *hub.Hub, w http.ResponseWriter, r *http.Request) (session.View, bool) {
	code := chi.URLParam(r, "code")

	reply := make(chan *session.Session, 1)
	h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
	sess := <-reply
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return session.View{}, false
	}

	viewReply := make(chan session.View, 1)
	sess.Inbox() <- session.GetState{Reply: viewReply}
	return <-viewReply, true
}
