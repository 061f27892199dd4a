package draft

import "sort"

// Role is the coarse combat-function category of a hero. Unknown is
// reserved for names missing from the metadata table so a typo never
// silently matches a real role.
type Role string

const (
	RoleTank           Role = "tank"
	RoleBruiser        Role = "bruiser"
	RoleHealer         Role = "healer"
	RoleRangedAssassin Role = "ranged_assassin"
	RoleMeleeAssassin  Role = "melee_assassin"
	RoleSupport        Role = "support"
	RoleUnknown        Role = "unknown"

	// RoleDamage is a composite category used only by role needs; it
	// matches both assassin roles and never appears in the hero table.
	RoleDamage Role = "damage"
)

// roleOrder fixes the enumeration order used when needs tie on priority.
var roleOrder = []Role{RoleTank, RoleBruiser, RoleHealer, RoleRangedAssassin, RoleMeleeAssassin, RoleSupport, RoleDamage}

func roleRank(r Role) int {
	for i, o := range roleOrder {
		if o == r {
			return i
		}
	}
	return len(roleOrder)
}

// heroRoles is the static hero metadata table, loaded once and never
// mutated. Names follow the in-game spelling.
var heroRoles = map[string]Role{
	// Tanks
	"Anub'arak":  RoleTank,
	"Arthas":     RoleTank,
	"Blaze":      RoleTank,
	"Diablo":     RoleTank,
	"E.T.C.":     RoleTank,
	"Garrosh":    RoleTank,
	"Johanna":    RoleTank,
	"Mal'Ganis":  RoleTank,
	"Mei":        RoleTank,
	"Muradin":    RoleTank,
	"Stitches":   RoleTank,
	"Tyrael":     RoleTank,

	// Bruisers
	"Artanis":   RoleBruiser,
	"Chen":      RoleBruiser,
	"D.Va":      RoleBruiser,
	"Deathwing": RoleBruiser,
	"Dehaka":    RoleBruiser,
	"Hogger":    RoleBruiser,
	"Imperius":  RoleBruiser,
	"Leoric":    RoleBruiser,
	"Malthael":  RoleBruiser,
	"Ragnaros":  RoleBruiser,
	"Rexxar":    RoleBruiser,
	"Sonya":     RoleBruiser,
	"Thrall":    RoleBruiser,
	"Varian":    RoleBruiser,
	"Xul":       RoleBruiser,
	"Yrel":      RoleBruiser,

	// Healers
	"Alexstrasza": RoleHealer,
	"Ana":         RoleHealer,
	"Anduin":      RoleHealer,
	"Auriel":      RoleHealer,
	"Brightwing":  RoleHealer,
	"Deckard":     RoleHealer,
	"Kharazim":    RoleHealer,
	"Li Li":       RoleHealer,
	"Lt. Morales": RoleHealer,
	"Lúcio":       RoleHealer,
	"Malfurion":   RoleHealer,
	"Rehgar":      RoleHealer,
	"Stukov":      RoleHealer,
	"Uther":       RoleHealer,
	"Whitemane":   RoleHealer,

	// Ranged assassins
	"Azmodan":     RoleRangedAssassin,
	"Cassia":      RoleRangedAssassin,
	"Chromie":     RoleRangedAssassin,
	"Falstad":     RoleRangedAssassin,
	"Fenix":       RoleRangedAssassin,
	"Genji":       RoleRangedAssassin,
	"Greymane":    RoleRangedAssassin,
	"Gul'dan":     RoleRangedAssassin,
	"Hanzo":       RoleRangedAssassin,
	"Jaina":       RoleRangedAssassin,
	"Junkrat":     RoleRangedAssassin,
	"Kael'thas":   RoleRangedAssassin,
	"Kel'Thuzad":  RoleRangedAssassin,
	"Li-Ming":     RoleRangedAssassin,
	"Lunara":      RoleRangedAssassin,
	"Mephisto":    RoleRangedAssassin,
	"Nazeebo":     RoleRangedAssassin,
	"Nova":        RoleRangedAssassin,
	"Orphea":      RoleRangedAssassin,
	"Raynor":      RoleRangedAssassin,
	"Sgt. Hammer": RoleRangedAssassin,
	"Sylvanas":    RoleRangedAssassin,
	"Tassadar":    RoleRangedAssassin,
	"Tracer":      RoleRangedAssassin,
	"Tychus":      RoleRangedAssassin,
	"Valla":       RoleRangedAssassin,
	"Zagara":      RoleRangedAssassin,
	"Zul'jin":     RoleRangedAssassin,

	// Melee assassins
	"Alarak":      RoleMeleeAssassin,
	"Illidan":     RoleMeleeAssassin,
	"Kerrigan":    RoleMeleeAssassin,
	"Maiev":       RoleMeleeAssassin,
	"Murky":       RoleMeleeAssassin,
	"Qhira":       RoleMeleeAssassin,
	"Samuro":      RoleMeleeAssassin,
	"The Butcher": RoleMeleeAssassin,
	"Valeera":     RoleMeleeAssassin,
	"Zeratul":     RoleMeleeAssassin,

	// Supports
	"Abathur":           RoleSupport,
	"Medivh":            RoleSupport,
	"The Lost Vikings":  RoleSupport,
	"Zarya":             RoleSupport,
}

var allHeroes = func() []string {
	names := make([]string, 0, len(heroRoles))
	for name := range heroRoles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// RoleOf returns the role of a hero, RoleUnknown for unrecognized names.
func RoleOf(hero string) Role {
	if r, ok := heroRoles[hero]; ok {
		return r
	}
	return RoleUnknown
}

// AllHeroes returns every known hero name in lexical order. Callers
// must not mutate the returned slice.
func AllHeroes() []string {
	return allHeroes
}
