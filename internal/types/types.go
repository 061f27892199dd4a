package types

import (
	"github.com/nexusdraft/hots-draft-backend/internal/draft"
	"github.com/nexusdraft/hots-draft-backend/internal/session"
)

type ClientMessage struct {
	Type         string `json:"type"`
	Hero         string `json:"hero,omitempty"`
	Battleground string `json:"battleground,omitempty"`
	Team         string `json:"team,omitempty"`
	Battletag    string `json:"battletag,omitempty"`
}

type ServerMessage struct {
	Type            string                 `json:"type"` // "StateSnapshot" | "Error"
	Version         int                    `json:"version,omitempty"`
	State           *draft.State           `json:"state,omitempty"`
	Config          *session.Config        `json:"config,omitempty"`
	Recommendations []draft.Recommendation `json:"recommendations,omitempty"`
	Error           string                 `json:"error,omitempty"`
}
