package draft

import "sort"

type Priority string

const (
	PriorityCritical  Priority = "critical"
	PriorityImportant Priority = "important"
	PrioritySuggested Priority = "suggested"
)

func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityImportant:
		return 1
	default:
		return 2
	}
}

// RoleCounts tallies a team's picks per role.
type RoleCounts map[Role]int

// Need is an unmet composition requirement for one team.
type Need struct {
	Role     Role     `json:"role"`
	Priority Priority `json:"priority"`
}

// CountRoles builds a role tally from a team's current picks. Empty
// entries are skipped; unrecognized names count as RoleUnknown.
func CountRoles(picks []string) RoleCounts {
	counts := RoleCounts{}
	for _, h := range picks {
		if h == "" {
			continue
		}
		counts[RoleOf(h)]++
	}
	return counts
}

// Damage returns the combined assassin count.
func (c RoleCounts) Damage() int {
	return c[RoleMeleeAssassin] + c[RoleRangedAssassin]
}

// Total returns the number of tallied picks.
func (c RoleCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// RoleNeeds evaluates the fixed composition rules against a team's
// picks. Rules are independent; several needs can be open at once.
// Result order is priority descending, then role enumeration order.
func RoleNeeds(picks []string) []Need {
	counts := CountRoles(picks)
	var needs []Need

	if counts[RoleTank] == 0 {
		needs = append(needs, Need{Role: RoleTank, Priority: PriorityCritical})
	}
	if counts[RoleHealer] == 0 {
		needs = append(needs, Need{Role: RoleHealer, Priority: PriorityCritical})
	}
	if counts.Damage() == 0 {
		needs = append(needs, Need{Role: RoleDamage, Priority: PriorityImportant})
	}
	// Support scarcity only matters once most slots are filled.
	if counts[RoleSupport] == 0 && counts.Total() >= 4 {
		needs = append(needs, Need{Role: RoleSupport, Priority: PrioritySuggested})
	}

	sort.SliceStable(needs, func(i, j int) bool {
		if needs[i].Priority != needs[j].Priority {
			return priorityRank(needs[i].Priority) < priorityRank(needs[j].Priority)
		}
		return roleRank(needs[i].Role) < roleRank(needs[j].Role)
	})
	return needs
}

// matchesNeed reports whether a hero of role r satisfies need n.
func matchesNeed(r Role, n Need) bool {
	if n.Role == RoleDamage {
		return r == RoleMeleeAssassin || r == RoleRangedAssassin
	}
	return r == n.Role
}
