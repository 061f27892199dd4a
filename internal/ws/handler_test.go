package ws

import (
	"testing"

	"github.com/nexusdraft/hots-draft-backend/internal/draft"
	"github.com/nexusdraft/hots-draft-backend/internal/session"
	"github.com/nexusdraft/hots-draft-backend/internal/types"
)

func TestToSessionCommand(t *testing.T) {
	cases := []struct {
		name   string
		msg    types.ClientMessage
		wantOk bool
		want   session.Command
	}{
		{
			name:   "apply selection",
			msg:    types.ClientMessage{Type: "ApplySelection", Hero: "Muradin"},
			wantOk: true,
			want:   session.Command{Type: session.CmdApplySelection, Hero: "Muradin"},
		},
		{
			name: "apply selection without hero is rejected",
			msg:  types.ClientMessage{Type: "ApplySelection"},
		},
		{
			name:   "set config without team keeps assignment",
			msg:    types.ClientMessage{Type: "SetConfig", Battleground: "Dragon Shire"},
			wantOk: true,
			want:   session.Command{Type: session.CmdSetConfig, Battleground: "Dragon Shire"},
		},
		{
			name:   "set config with team",
			msg:    types.ClientMessage{Type: "SetConfig", Team: "red", Battletag: "Stormrider#1234"},
			wantOk: true,
			want:   session.Command{Type: session.CmdSetConfig, OurTeam: draft.TeamRed, Battletag: "Stormrider#1234"},
		},
		{
			name: "set config with bogus team is rejected",
			msg:  types.ClientMessage{Type: "SetConfig", Team: "green"},
		},
		{
			name: "unknown type is rejected",
			msg:  types.ClientMessage{Type: "HoverHero", Hero: "Muradin"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toSessionCommand(tc.msg)
			if ok != tc.wantOk {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
