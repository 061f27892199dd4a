package draft

type PairKind string

const (
	KindSynergy PairKind = "synergy"
	KindCounter PairKind = "counter"
)

type Strength string

const (
	StrengthHigh   Strength = "high"
	StrengthMedium Strength = "medium"
)

// PairEntry documents a known interaction between two heroes. For
// synergies the pair is symmetric; for counters Heroes[0] holds the
// advantage when played against Heroes[1].
type PairEntry struct {
	Heroes   [2]string
	Kind     PairKind
	Strength Strength
	Note     string
}

var pairCatalog = []PairEntry{
	// Synergies
	{Heroes: [2]string{"E.T.C.", "Kael'thas"}, Kind: KindSynergy, Strength: StrengthHigh, Note: "Mosh Pit guarantees the full Flamestrike combo"},
	{Heroes: [2]string{"Diablo", "Kael'thas"}, Kind: KindSynergy, Strength: StrengthHigh, Note: "Overpower feeds Gravity Lapse chain stuns"},
	{Heroes: [2]string{"Abathur", "Illidan"}, Kind: KindSynergy, Strength: StrengthHigh, Note: "Symbiote turns the dive target unkillable"},
	{Heroes: [2]string{"Rehgar", "Illidan"}, Kind: KindSynergy, Strength: StrengthHigh, Note: "Ancestral Healing sustains the dive"},
	{Heroes: [2]string{"Zeratul", "Jaina"}, Kind: KindSynergy, Strength: StrengthHigh, Note: "Void Prison sets up full AoE burst"},
	{Heroes: [2]string{"Malfurion", "Kael'thas"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "Entangling Roots guarantees Living Bomb spread"},
	{Heroes: [2]string{"Garrosh", "Jaina"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "throws land inside Ring of Frost"},
	{Heroes: [2]string{"Medivh", "Genji"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "portals extend dive range and escape"},
	{Heroes: [2]string{"Auriel", "Azmodan"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "orb spam keeps Auriel's energy topped"},
	{Heroes: [2]string{"Zarya", "Tracer"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "shields let Tracer trade freely"},
	{Heroes: [2]string{"Tyrael", "Valla"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "Sanctification protects the hypercarry"},
	{Heroes: [2]string{"Johanna", "Valla"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "sticky frontline buys space for sustained damage"},
	{Heroes: [2]string{"Muradin", "Greymane"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "stun peel covers Worgen all-ins"},
	{Heroes: [2]string{"E.T.C.", "Li-Ming"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "Mosh Pit resets cascade into kills"},
	{Heroes: [2]string{"Abathur", "Tracer"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "global hat on the safest carry"},
	{Heroes: [2]string{"Stukov", "Deathwing"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "lurking arm zones while Deathwing lands"},
	{Heroes: [2]string{"Anub'arak", "Kerrigan"}, Kind: KindSynergy, Strength: StrengthMedium, Note: "layered stuns against mobile backlines"},

	// Counters: first hero holds the advantage against the second.
	{Heroes: [2]string{"Johanna", "Kael'thas"}, Kind: KindCounter, Strength: StrengthMedium, Note: "Unstoppable walks through Gravity Lapse"},
	{Heroes: [2]string{"Arthas", "Illidan"}, Kind: KindCounter, Strength: StrengthHigh, Note: "Frozen Tempest strips attack speed"},
	{Heroes: [2]string{"Li Li", "Illidan"}, Kind: KindCounter, Strength: StrengthHigh, Note: "Blinding Wind shuts down auto-attackers"},
	{Heroes: [2]string{"Johanna", "Illidan"}, Kind: KindCounter, Strength: StrengthMedium, Note: "Blessed Shield plus blind stops the dive"},
	{Heroes: [2]string{"Muradin", "Zeratul"}, Kind: KindCounter, Strength: StrengthMedium, Note: "stun peel punishes stealth engages"},
	{Heroes: [2]string{"Brightwing", "The Butcher"}, Kind: KindCounter, Strength: StrengthMedium, Note: "Polymorph cancels Ruthless Onslaught"},
	{Heroes: [2]string{"Tychus", "Diablo"}, Kind: KindCounter, Strength: StrengthHigh, Note: "percent damage melts high-health frontlines"},
	{Heroes: [2]string{"Tychus", "Deathwing"}, Kind: KindCounter, Strength: StrengthHigh, Note: "Minigun shreds giant heroes"},
	{Heroes: [2]string{"Malfurion", "Valeera"}, Kind: KindCounter, Strength: StrengthMedium, Note: "Moonfire reveals stealth openers"},
	{Heroes: [2]string{"Jaina", "Sonya"}, Kind: KindCounter, Strength: StrengthMedium, Note: "chill kites Whirlwind sustain"},
	{Heroes: [2]string{"Uther", "Kerrigan"}, Kind: KindCounter, Strength: StrengthMedium, Note: "Divine Shield blanks the combo target"},
	{Heroes: [2]string{"Genji", "Azmodan"}, Kind: KindCounter, Strength: StrengthMedium, Note: "Deflect returns Globe of Annihilation"},
}

// pairKey normalizes an unordered hero pair.
func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

var pairIndex = func() map[[2]string]PairEntry {
	idx := make(map[[2]string]PairEntry, len(pairCatalog))
	for _, e := range pairCatalog {
		idx[pairKey(e.Heroes[0], e.Heroes[1])] = e
	}
	return idx
}()

// LookupPair returns the catalog entry for a hero pair, in either order.
func LookupPair(a, b string) (PairEntry, bool) {
	e, ok := pairIndex[pairKey(a, b)]
	return e, ok
}
