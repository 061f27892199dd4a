package draft

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSelection = errors.New("invalid selection")
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrDraftComplete is a flavor of ErrInvalidSelection; errors.Is
// matches both.
var ErrDraftComplete = fmt.Errorf("%w: draft complete", ErrInvalidSelection)

// Selection is one applied ban or pick, in the order it happened.
type Selection struct {
	Step Step      `json:"step"`
	Hero string    `json:"hero"`
	At   time.Time `json:"at"`
}

// State is the full draft session state. One instance per session,
// single owner, mutated only through ApplySelection / Undo / Reset.
// Selections[i] is non-empty only for i < Cursor.
type State struct {
	Selections [NumTurns]string `json:"selections"`
	Cursor     int              `json:"cursor"`
	OurTeam    Team             `json:"our_team"`
	History    []Selection      `json:"history"`
}

func NewState(ourTeam Team) *State {
	return &State{OurTeam: ourTeam}
}

// ApplySelection records hero for the current turn and advances the
// cursor. A hero may appear at most once across the whole draft,
// banned or picked, either team.
func (s *State) ApplySelection(hero string) error {
	if s.Cursor >= NumTurns {
		return ErrDraftComplete
	}
	if hero == "" {
		return fmt.Errorf("%w: empty hero name", ErrInvalidSelection)
	}
	if s.Used(hero) {
		return fmt.Errorf("%w: %s already banned or picked", ErrInvalidSelection, hero)
	}

	s.Selections[s.Cursor] = hero
	s.History = append(s.History, Selection{Step: DraftOrder[s.Cursor], Hero: hero, At: time.Now()})
	s.Cursor++
	return nil
}

// Undo reverses the most recent selection. There is no redo.
func (s *State) Undo() error {
	if len(s.History) == 0 {
		return ErrNothingToUndo
	}
	last := s.History[len(s.History)-1]
	s.History = s.History[:len(s.History)-1]
	s.Selections[last.Step.Index] = ""
	s.Cursor--
	return nil
}

// Reset returns the draft to turn 0 with no selections. Team
// assignment survives a reset.
func (s *State) Reset() {
	s.Selections = [NumTurns]string{}
	s.History = nil
	s.Cursor = 0
}

// Complete reports whether all 16 turns have been taken.
func (s *State) Complete() bool {
	return s.Cursor >= NumTurns
}

// CurrentStep returns the step awaiting a selection, or done=true
// when the draft is complete.
func (s *State) CurrentStep() (Step, bool) {
	return StepAt(s.Cursor)
}

// IsOurTurn reports whether the acting team of the current step is ours.
func (s *State) IsOurTurn() bool {
	step, done := s.CurrentStep()
	return !done && step.Team == s.OurTeam
}

// Used reports whether hero has been banned or picked by anyone.
func (s *State) Used(hero string) bool {
	for _, sel := range s.Selections {
		if sel != "" && sel == hero {
			return true
		}
	}
	return false
}

// Unavailable returns the set of every hero banned or picked so far.
func (s *State) Unavailable() map[string]bool {
	out := make(map[string]bool, s.Cursor)
	for _, sel := range s.Selections {
		if sel != "" {
			out[sel] = true
		}
	}
	return out
}

// AvailableHeroes filters all down to heroes not yet banned or picked,
// preserving input order.
func (s *State) AvailableHeroes(all []string) []string {
	used := s.Unavailable()
	out := make([]string, 0, len(all))
	for _, h := range all {
		if !used[h] {
			out = append(out, h)
		}
	}
	return out
}

// PicksForTeam returns team's roster in slot order 0..4, empty string
// for slots not yet filled.
func (s *State) PicksForTeam(team Team) [5]string {
	var out [5]string
	for _, step := range DraftOrder {
		if step.Team == team && step.Action == ActionPick {
			out[step.PickSlot] = s.Selections[step.Index]
		}
	}
	return out
}

// TeamPicks is PicksForTeam without the empty slots, in slot order.
func (s *State) TeamPicks(team Team) []string {
	slots := s.PicksForTeam(team)
	out := make([]string, 0, len(slots))
	for _, h := range slots {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// BansForTeam returns team's bans in the order they were taken.
func (s *State) BansForTeam(team Team) []string {
	out := make([]string, 0, 3)
	for _, step := range DraftOrder {
		if step.Team == team && step.Action == ActionBan && s.Selections[step.Index] != "" {
			out = append(out, s.Selections[step.Index])
		}
	}
	return out
}
