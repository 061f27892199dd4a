package draft

import (
	"reflect"
	"testing"
)

func findRec(recs []Recommendation, hero string) (Recommendation, bool) {
	for _, r := range recs {
		if r.Hero == hero {
			return r, true
		}
	}
	return Recommendation{}, false
}

func hasReason(rec Recommendation, rt ReasonType) bool {
	for _, r := range rec.Reasons {
		if r.Type == rt {
			return true
		}
	}
	return false
}

func TestRecommend_NoBattlegroundIsEmptyNotError(t *testing.T) {
	s := NewState(TeamBlue)
	if recs := Recommend(s, Options{}); recs != nil {
		t.Fatalf("want empty result without battleground, got %d recs", len(recs))
	}
}

func TestRecommend_CompletedDraftIsEmpty(t *testing.T) {
	s := NewState(TeamBlue)
	mustApply(t, s, AllHeroes()[:NumTurns]...)
	if recs := Recommend(s, Options{Battleground: "Cursed Hollow"}); recs != nil {
		t.Fatalf("want empty result on completed draft, got %d recs", len(recs))
	}
}

func TestRecommend_ExcludesUnavailableHeroes(t *testing.T) {
	s := NewState(TeamBlue)
	mustApply(t, s, "Muradin", "Genji", "Johanna", "Kael'thas")

	recs := Recommend(s, Options{Battleground: "Cursed Hollow"})
	if len(recs) != len(AllHeroes())-4 {
		t.Fatalf("want %d candidates, got %d", len(AllHeroes())-4, len(recs))
	}
	for _, used := range []string{"Muradin", "Genji", "Johanna", "Kael'thas"} {
		if _, ok := findRec(recs, used); ok {
			t.Fatalf("%s should not be recommended after being used", used)
		}
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	s := NewState(TeamBlue)
	mustApply(t, s, "Muradin", "Genji", "Johanna", "Kael'thas")
	opts := Options{
		Battleground: "Cursed Hollow",
		Player: &PlayerStats{
			Battletag: "Stormrider#1234",
			Overall:   50,
			Heroes:    map[string]HeroRecord{"Valla": {Games: 20, Wins: 13, WinRate: 65}},
		},
	}

	first := Recommend(s, opts)
	second := Recommend(s, opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different rankings")
	}
}

func TestRecommend_RankingOrder(t *testing.T) {
	s := NewState(TeamBlue)
	mustApply(t, s, "Muradin", "Genji", "Johanna", "Kael'thas")

	recs := Recommend(s, Options{Battleground: "Cursed Hollow"})
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if prev.NetDelta < cur.NetDelta {
			t.Fatalf("ranking not descending at %d: %s %.1f < %s %.1f",
				i, prev.Hero, prev.NetDelta, cur.Hero, cur.NetDelta)
		}
		if prev.NetDelta == cur.NetDelta && prev.Hero > cur.Hero {
			t.Fatalf("tie at %.1f not broken lexically: %s before %s",
				cur.NetDelta, prev.Hero, cur.Hero)
		}
	}
}

func TestRecommend_SynergyOutranksUnrelated(t *testing.T) {
	// Blue has Johanna, red has Kael'thas; turn 4 is a red pick so the
	// engine still scores from blue's perspective as configured team.
	s := NewState(TeamBlue)
	mustApply(t, s, "Muradin", "Genji", "Johanna", "Kael'thas")

	recs := Recommend(s, Options{Battleground: "Cursed Hollow"})

	valla, ok := findRec(recs, "Valla")
	if !ok {
		t.Fatalf("Valla missing from recommendations")
	}
	if !hasReason(valla, ReasonSynergy) {
		t.Fatalf("Valla should carry a synergy reason next to Johanna: %+v", valla.Reasons)
	}

	// Tracer fills the same damage need but has no pair with Johanna.
	tracer, ok := findRec(recs, "Tracer")
	if !ok {
		t.Fatalf("Tracer missing from recommendations")
	}
	if valla.NetDelta <= tracer.NetDelta {
		t.Fatalf("synergy pick should outrank unrelated pick: Valla %.1f vs Tracer %.1f",
			valla.NetDelta, tracer.NetDelta)
	}
}

func TestRecommend_CounterSignFollowsCatalogDirection(t *testing.T) {
	// Red picked Illidan; Arthas counters him (high), while a hero the
	// enemy counters takes a penalty.
	s := NewState(TeamRed)
	mustApply(t, s, "Muradin", "Genji", "Illidan") // turn 2: blue picks Illidan

	recs := Recommend(s, Options{Battleground: "Dragon Shire"})
	arthas, ok := findRec(recs, "Arthas")
	if !ok {
		t.Fatalf("Arthas missing")
	}
	var counterDelta float64
	for _, r := range arthas.Reasons {
		if r.Type == ReasonCounter {
			counterDelta = r.Delta
		}
	}
	if counterDelta <= 0 {
		t.Fatalf("Arthas should gain from countering Illidan, got %+v", arthas.Reasons)
	}

	// Kael'thas is countered by enemy Johanna when she is on the other side.
	s2 := NewState(TeamRed)
	mustApply(t, s2, "Muradin", "Genji", "Johanna") // blue picks Johanna
	recs2 := Recommend(s2, Options{Battleground: "Dragon Shire"})
	kael, ok := findRec(recs2, "Kael'thas")
	if !ok {
		t.Fatalf("Kael'thas missing")
	}
	for _, r := range kael.Reasons {
		if r.Type == ReasonCounter && r.Delta >= 0 {
			t.Fatalf("Kael'thas into Johanna should be penalized, got %+v", kael.Reasons)
		}
	}
	if !hasReason(kael, ReasonCounter) {
		t.Fatalf("expected a counter reason on Kael'thas vs Johanna")
	}
}

func TestRecommend_BanTurnTagsBanWorthy(t *testing.T) {
	// Turn 0 is a red ban; the top recommendation should explain
	// itself as a ban, not as a pick for us.
	s := NewState(TeamRed)
	recs := Recommend(s, Options{Battleground: "Cursed Hollow"})
	if len(recs) == 0 {
		t.Fatalf("expected recommendations on ban turn")
	}
	if !hasReason(recs[0], ReasonBanWorthy) {
		t.Fatalf("top ban recommendation lacks ban_worthy reason: %+v", recs[0].Reasons)
	}
}

func TestRecommend_PlayerStats(t *testing.T) {
	cases := []struct {
		name       string
		record     HeroRecord
		wantType   ReasonType
		wantNone   bool
		wantPlayer bool
	}{
		{
			name:     "below sample floor is ignored",
			record:   HeroRecord{Games: 2, Wins: 2, WinRate: 100},
			wantNone: true,
		},
		{
			name:     "modest edge tagged hero_wr",
			record:   HeroRecord{Games: 5, Wins: 3, WinRate: 60},
			wantType: ReasonHeroWR,
		},
		{
			name:       "standout tagged player_strong with attribution",
			record:     HeroRecord{Games: 15, Wins: 11, WinRate: 73},
			wantType:   ReasonPlayerStrong,
			wantPlayer: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(TeamBlue)
			mustApply(t, s, "Muradin", "Genji") // next turn: blue pick
			opts := Options{
				Battleground: "Cursed Hollow",
				Player: &PlayerStats{
					Battletag: "Stormrider#1234",
					Overall:   50,
					Heroes:    map[string]HeroRecord{"Valla": tc.record},
				},
			}

			recs := Recommend(s, opts)
			valla, ok := findRec(recs, "Valla")
			if !ok {
				t.Fatalf("Valla missing")
			}
			if tc.wantNone {
				if hasReason(valla, ReasonHeroWR) || hasReason(valla, ReasonPlayerStrong) {
					t.Fatalf("small sample should contribute nothing: %+v", valla.Reasons)
				}
				return
			}
			if !hasReason(valla, tc.wantType) {
				t.Fatalf("want %s reason, got %+v", tc.wantType, valla.Reasons)
			}
			if tc.wantPlayer && valla.SuggestedPlayer != "Stormrider#1234" {
				t.Fatalf("standout should attribute the pick, got %q", valla.SuggestedPlayer)
			}
		})
	}
}

func TestRecommend_RolePenaltyOnSaturation(t *testing.T) {
	// Blue stacks four ranged assassins, then evaluates a fifth on the
	// next pick turn.
	s := NewState(TeamBlue)
	mustApply(t, s,
		"Muradin", "Diablo", // phase 1 bans
		"Valla", "Johanna", "Arthas", // phase 1 picks
		"Garrosh", "Stitches", // phase 2 bans
		"Illidan", "Tracer", "Greymane", // phase 2 picks
		"Mephisto", "Nova", // phase 3 bans
		"Li-Ming", // blue's fourth pick
	)

	recs := Recommend(s, Options{Battleground: "Cursed Hollow"})
	jaina, ok := findRec(recs, "Jaina")
	if !ok {
		t.Fatalf("Jaina missing")
	}
	if !hasReason(jaina, ReasonRolePenalty) {
		t.Fatalf("fourth ranged assassin should be penalized: %+v", jaina.Reasons)
	}
}
