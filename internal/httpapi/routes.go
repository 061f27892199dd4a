package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nexusdraft/hots-draft-backend/internal/commentary"
	"github.com/nexusdraft/hots-draft-backend/internal/hub"
	"github.com/nexusdraft/hots-draft-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, gen *commentary.Generator, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", CreateSession(h, log))
	r.Get("/sessions/{code}/recommendations", Recommendations(h))
	r.Post("/sessions/{code}/commentary", Commentary(h, gen, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log))
	return r
}
