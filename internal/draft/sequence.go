package draft

type Team string

const (
	TeamBlue Team = "blue"
	TeamRed  Team = "red"
)

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamBlue {
		return TeamRed
	}
	return TeamBlue
}

type Action string

const (
	ActionBan  Action = "ban"
	ActionPick Action = "pick"
)

// Step is one entry of the fixed 16-turn draft protocol.
// Sequence is the team's nth ban or pick (1-based); PickSlot is the
// roster slot 0..4 filled by a pick, -1 for bans.
type Step struct {
	Team     Team
	Action   Action
	Phase    int
	Sequence int
	PickSlot int
	Index    int
}

const NumTurns = 16

// DraftOrder is the official ban/pick protocol. It is never reordered
// or derived at runtime; Index matches array position.
var DraftOrder = [NumTurns]Step{
	// Phase 1
	{Team: TeamRed, Action: ActionBan, Phase: 1, Sequence: 1, PickSlot: -1, Index: 0},
	{Team: TeamBlue, Action: ActionBan, Phase: 1, Sequence: 1, PickSlot: -1, Index: 1},
	{Team: TeamBlue, Action: ActionPick, Phase: 1, Sequence: 1, PickSlot: 0, Index: 2},
	{Team: TeamRed, Action: ActionPick, Phase: 1, Sequence: 1, PickSlot: 0, Index: 3},
	{Team: TeamRed, Action: ActionPick, Phase: 1, Sequence: 2, PickSlot: 1, Index: 4},
	// Phase 2
	{Team: TeamBlue, Action: ActionBan, Phase: 2, Sequence: 2, PickSlot: -1, Index: 5},
	{Team: TeamRed, Action: ActionBan, Phase: 2, Sequence: 2, PickSlot: -1, Index: 6},
	{Team: TeamRed, Action: ActionPick, Phase: 2, Sequence: 3, PickSlot: 2, Index: 7},
	{Team: TeamBlue, Action: ActionPick, Phase: 2, Sequence: 2, PickSlot: 1, Index: 8},
	{Team: TeamBlue, Action: ActionPick, Phase: 2, Sequence: 3, PickSlot: 2, Index: 9},
	// Phase 3
	{Team: TeamRed, Action: ActionBan, Phase: 3, Sequence: 3, PickSlot: -1, Index: 10},
	{Team: TeamBlue, Action: ActionBan, Phase: 3, Sequence: 3, PickSlot: -1, Index: 11},
	{Team: TeamBlue, Action: ActionPick, Phase: 3, Sequence: 4, PickSlot: 3, Index: 12},
	{Team: TeamRed, Action: ActionPick, Phase: 3, Sequence: 4, PickSlot: 3, Index: 13},
	{Team: TeamRed, Action: ActionPick, Phase: 3, Sequence: 5, PickSlot: 4, Index: 14},
	{Team: TeamBlue, Action: ActionPick, Phase: 3, Sequence: 5, PickSlot: 4, Index: 15},
}

// StepAt returns the step at turn index i, or done=true when the
// draft is past its final turn.
func StepAt(i int) (Step, bool) {
	if i >= NumTurns {
		return Step{}, true
	}
	return DraftOrder[i], false
}
