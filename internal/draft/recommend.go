package draft

import (
	"fmt"
	"math"
	"sort"
)

type ReasonType string

const (
	ReasonSynergy      ReasonType = "synergy"
	ReasonCounter      ReasonType = "counter"
	ReasonHeroWR       ReasonType = "hero_wr"
	ReasonPlayerStrong ReasonType = "player_strong"
	ReasonRoleNeed     ReasonType = "role_need"
	ReasonRolePenalty  ReasonType = "role_penalty"
	ReasonBanWorthy    ReasonType = "ban_worthy"
)

// Scoring constants, in percentage points. Tunable; the relative
// ordering (high > medium, critical > important > suggested) is the
// contract, the exact values are not.
const (
	synergyHighDelta   = 4.0
	synergyMediumDelta = 2.5
	counterHighDelta   = 3.5
	counterMediumDelta = 2.0

	minSampleGames = 3
	standoutGames  = 10
	standoutMargin = 10.0
	heroWRScale    = 0.5

	needCriticalDelta  = 3.0
	needImportantDelta = 2.0
	needSuggestedDelta = 1.0
	rolePenaltyDelta   = -2.0
	roleSaturation     = 2
)

// Reason is one itemized contribution to a recommendation score.
type Reason struct {
	Type  ReasonType `json:"type"`
	Label string     `json:"label"`
	Delta float64    `json:"delta"`
}

// Recommendation scores one available hero for the current turn.
type Recommendation struct {
	Hero            string   `json:"hero"`
	NetDelta        float64  `json:"net_delta"`
	Reasons         []Reason `json:"reasons"`
	SuggestedPlayer string   `json:"suggested_player,omitempty"`
}

// HeroRecord is one hero's line from a player's win-rate table.
type HeroRecord struct {
	Games   int
	Wins    int
	WinRate float64
}

// PlayerStats is a tracked player's per-hero performance, supplied by
// the stats provider. Overall is the roster-average win rate.
type PlayerStats struct {
	Battletag string
	Overall   float64
	Heroes    map[string]HeroRecord
}

// Options carries the session context for a recommendation request.
// Battleground is opaque to the engine; it only gates whether there
// is enough context to recommend at all.
type Options struct {
	Battleground string
	Player       *PlayerStats
}

// Recommend scores every hero still available for the current turn
// and returns the full ranked set, net delta descending with lexical
// hero-name tie-break. The caller truncates for display.
//
// No battleground selected is a valid "no data yet" state and yields
// an empty result, not an error. Same for a completed draft.
func Recommend(s *State, opts Options) []Recommendation {
	if opts.Battleground == "" {
		return nil
	}
	step, done := s.CurrentStep()
	if done {
		return nil
	}

	ourPicks := s.TeamPicks(s.OurTeam)
	enemyPicks := s.TeamPicks(s.OurTeam.Other())
	used := s.Unavailable()

	var recs []Recommendation
	for _, hero := range AllHeroes() {
		if used[hero] {
			continue
		}

		var rec Recommendation
		if step.Action == ActionBan {
			rec = scoreBan(hero, ourPicks, enemyPicks)
		} else {
			rec = scorePick(hero, ourPicks, enemyPicks, opts.Player)
		}
		rec.Hero = hero
		for _, r := range rec.Reasons {
			rec.NetDelta += r.Delta
		}
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].NetDelta != recs[j].NetDelta {
			return recs[i].NetDelta > recs[j].NetDelta
		}
		return recs[i].Hero < recs[j].Hero
	})
	return recs
}

// scorePick evaluates hero as a pick for our own roster.
func scorePick(hero string, allies, enemies []string, player *PlayerStats) Recommendation {
	rec := Recommendation{}
	rec.Reasons = append(rec.Reasons, pairReasons(hero, allies, enemies)...)
	rec.Reasons = append(rec.Reasons, roleReasons(hero, allies)...)

	if player != nil {
		if r, sp := playerReason(hero, player); r != nil {
			rec.Reasons = append(rec.Reasons, *r)
			rec.SuggestedPlayer = sp
		}
	}
	return rec
}

// scoreBan evaluates how dangerous hero would be in the opponent's
// hands: the same pairwise scoring run from their side of the table,
// with the dominant contribution re-tagged ban_worthy.
func scoreBan(hero string, ourPicks, enemyPicks []string) Recommendation {
	rec := Recommendation{}
	rec.Reasons = append(rec.Reasons, pairReasons(hero, enemyPicks, ourPicks)...)
	rec.Reasons = append(rec.Reasons, roleReasons(hero, enemyPicks)...)

	best := -1
	for i, r := range rec.Reasons {
		if r.Delta > 0 && (best < 0 || r.Delta > rec.Reasons[best].Delta) {
			best = i
		}
	}
	if best >= 0 {
		rec.Reasons[best].Type = ReasonBanWorthy
	}
	return rec
}

// pairReasons collects synergy contributions with allies and counter
// contributions against enemies from the pair catalog.
func pairReasons(hero string, allies, enemies []string) []Reason {
	var out []Reason
	for _, ally := range allies {
		e, ok := LookupPair(hero, ally)
		if !ok || e.Kind != KindSynergy {
			continue
		}
		out = append(out, Reason{
			Type:  ReasonSynergy,
			Label: fmt.Sprintf("pairs with %s: %s", ally, e.Note),
			Delta: strengthDelta(e.Strength, synergyHighDelta, synergyMediumDelta),
		})
	}
	for _, enemy := range enemies {
		e, ok := LookupPair(hero, enemy)
		if !ok || e.Kind != KindCounter {
			continue
		}
		delta := strengthDelta(e.Strength, counterHighDelta, counterMediumDelta)
		label := fmt.Sprintf("counters %s: %s", enemy, e.Note)
		if e.Heroes[0] != hero {
			// The catalog says the enemy holds the advantage.
			delta = -delta
			label = fmt.Sprintf("countered by %s: %s", enemy, e.Note)
		}
		out = append(out, Reason{Type: ReasonCounter, Label: label, Delta: delta})
	}
	return out
}

// roleReasons scores hero against the team's open role needs and
// penalizes piling onto an already saturated role.
func roleReasons(hero string, picks []string) []Reason {
	var out []Reason
	role := RoleOf(hero)
	for _, need := range RoleNeeds(picks) {
		if !matchesNeed(role, need) {
			continue
		}
		out = append(out, Reason{
			Type:  ReasonRoleNeed,
			Label: fmt.Sprintf("fills %s need (%s)", need.Role, need.Priority),
			Delta: needDelta(need.Priority),
		})
	}
	if role != RoleUnknown && CountRoles(picks)[role] > roleSaturation {
		out = append(out, Reason{
			Type:  ReasonRolePenalty,
			Label: fmt.Sprintf("team already heavy on %s", role),
			Delta: rolePenaltyDelta,
		})
	}
	return out
}

// playerReason scores the tracked player's personal record on hero.
// Returns the suggested battletag when the hero is a standout.
func playerReason(hero string, player *PlayerStats) (*Reason, string) {
	rec, ok := player.Heroes[hero]
	if !ok || rec.Games < minSampleGames {
		return nil, ""
	}
	diff := rec.WinRate - player.Overall
	delta := math.Round(diff*heroWRScale*10) / 10
	if delta == 0 {
		return nil, ""
	}
	if rec.Games >= standoutGames && diff >= standoutMargin {
		return &Reason{
			Type:  ReasonPlayerStrong,
			Label: fmt.Sprintf("standout hero for %s (%.0f%% over %d games)", player.Battletag, rec.WinRate, rec.Games),
			Delta: delta,
		}, player.Battletag
	}
	return &Reason{
		Type:  ReasonHeroWR,
		Label: fmt.Sprintf("%s runs %+.0f%% vs their average here", player.Battletag, diff),
		Delta: delta,
	}, ""
}

func strengthDelta(s Strength, high, medium float64) float64 {
	if s == StrengthHigh {
		return high
	}
	return medium
}

func needDelta(p Priority) float64 {
	switch p {
	case PriorityCritical:
		return needCriticalDelta
	case PriorityImportant:
		return needImportantDelta
	default:
		return needSuggestedDelta
	}
}
