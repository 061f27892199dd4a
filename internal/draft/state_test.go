package draft

import (
	"errors"
	"testing"
)

func TestApplySelection_RejectsDuplicates(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(*State)
		hero    string
		wantErr error
	}{
		{
			name:  "first selection succeeds",
			setup: func(s *State) {},
			hero:  "Muradin",
		},
		{
			name: "hero banned earlier is rejected",
			setup: func(s *State) {
				mustApply(t, s, "Muradin")
			},
			hero:    "Muradin",
			wantErr: ErrInvalidSelection,
		},
		{
			name: "hero picked by the other team is rejected",
			setup: func(s *State) {
				mustApply(t, s, "Muradin", "Diablo", "Johanna") // turns 0-2
			},
			hero:    "Johanna",
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "empty hero name is rejected",
			setup:   func(s *State) {},
			hero:    "",
			wantErr: ErrInvalidSelection,
		},
		{
			name: "completed draft rejects everything",
			setup: func(s *State) {
				mustApply(t, s, AllHeroes()[:NumTurns]...)
			},
			hero:    "Zul'jin",
			wantErr: ErrDraftComplete,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(TeamBlue)
			tc.setup(s)
			before := *s

			err := s.ApplySelection(tc.hero)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
			// Failed selections must leave state untouched.
			if s.Cursor != before.Cursor || s.Selections != before.Selections || len(s.History) != len(before.History) {
				t.Fatalf("state mutated on rejected selection")
			}
		})
	}
}

func TestApplySelection_AdvancesExactlyOneTurn(t *testing.T) {
	s := NewState(TeamBlue)
	heroes := AllHeroes()

	for i := 0; i < NumTurns; i++ {
		if err := s.ApplySelection(heroes[i]); err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if s.Cursor != i+1 {
			t.Fatalf("turn %d: cursor=%d, want %d", i, s.Cursor, i+1)
		}
		if len(s.History) != i+1 {
			t.Fatalf("turn %d: history len=%d, want %d", i, len(s.History), i+1)
		}
		if got := len(s.AvailableHeroes(heroes)); got != len(heroes)-(i+1) {
			t.Fatalf("turn %d: available=%d, want %d", i, got, len(heroes)-(i+1))
		}
	}

	if !s.Complete() {
		t.Fatalf("expected draft complete after %d selections", NumTurns)
	}
	if _, done := s.CurrentStep(); !done {
		t.Fatalf("CurrentStep should report done on a complete draft")
	}
}

func TestUndo_IsExactInverseOfApply(t *testing.T) {
	s := NewState(TeamRed)
	mustApply(t, s, "Muradin", "Diablo", "Johanna", "Kael'thas")

	before := snapshot(s)
	if err := s.ApplySelection("Valla"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	after := snapshot(s)
	if before != after {
		t.Fatalf("undo did not restore state:\n before %+v\n after  %+v", before, after)
	}
}

func TestUndo_EmptyHistoryFails(t *testing.T) {
	s := NewState(TeamBlue)
	if err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("got %v, want ErrNothingToUndo", err)
	}
}

func TestReset_ClearsEverythingButTeam(t *testing.T) {
	s := NewState(TeamRed)
	mustApply(t, s, "Muradin", "Diablo", "Johanna")

	s.Reset()

	if s.Cursor != 0 || len(s.History) != 0 {
		t.Fatalf("reset left cursor=%d history=%d", s.Cursor, len(s.History))
	}
	for i, sel := range s.Selections {
		if sel != "" {
			t.Fatalf("reset left selection at turn %d: %q", i, sel)
		}
	}
	if s.OurTeam != TeamRed {
		t.Fatalf("reset dropped team assignment")
	}
}

func TestTeamQueries(t *testing.T) {
	s := NewState(TeamBlue)
	// turns 0-4: R-ban, B-ban, B-pick(s0), R-pick(s0), R-pick(s1)
	mustApply(t, s, "Muradin", "Genji", "Johanna", "Kael'thas", "Valla")

	if got := s.BansForTeam(TeamRed); len(got) != 1 || got[0] != "Muradin" {
		t.Fatalf("red bans: got %v", got)
	}
	if got := s.BansForTeam(TeamBlue); len(got) != 1 || got[0] != "Genji" {
		t.Fatalf("blue bans: got %v", got)
	}
	if got := s.PicksForTeam(TeamBlue); got[0] != "Johanna" || got[1] != "" {
		t.Fatalf("blue picks: got %v", got)
	}
	if got := s.TeamPicks(TeamRed); len(got) != 2 || got[0] != "Kael'thas" || got[1] != "Valla" {
		t.Fatalf("red picks: got %v", got)
	}
	if !s.IsOurTurn() {
		t.Fatalf("turn 5 is a blue ban; expected IsOurTurn for blue")
	}
}

// stateKey is a comparable snapshot for inverse-operation checks.
type stateKey struct {
	selections [NumTurns]string
	cursor     int
	team       Team
	history    int
	lastHero   string
	lastTurn   int
}

func snapshot(s *State) stateKey {
	k := stateKey{selections: s.Selections, cursor: s.Cursor, team: s.OurTeam, history: len(s.History)}
	if n := len(s.History); n > 0 {
		k.lastHero = s.History[n-1].Hero
		k.lastTurn = s.History[n-1].Step.Index
	}
	return k
}

func mustApply(t *testing.T, s *State, heroes ...string) {
	t.Helper()
	for _, h := range heroes {
		if err := s.ApplySelection(h); err != nil {
			t.Fatalf("apply %s: %v", h, err)
		}
	}
}
