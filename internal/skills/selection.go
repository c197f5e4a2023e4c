// Package skills maintains the user-controlled skill filter that drives job
// searches.
package skills

// DefaultSeedCount is the number of skills selected automatically after a
// successful extraction.
const DefaultSeedCount = 3

// Selection is the set of skills currently filtering the job search.
// Membership is what matters; the insertion order is kept only to build
// deterministic query terms. The zero value is an empty selection with no
// seeded fallback.
//
// Selection has value semantics: Toggle returns a new Selection and never
// mutates the receiver.
type Selection struct {
	active []string
	seeded []string
}

// Seed selects the first min(n, len(all)) skills in their original order.
// It is called exactly once per successful extraction; the seeded skills
// also serve as the fallback query when the user deselects everything.
func Seed(all []string, n int) Selection {
	if n > len(all) {
		n = len(all)
	}
	if n < 0 {
		n = 0
	}
	seeded := make([]string, n)
	copy(seeded, all[:n])

	active := make([]string, n)
	copy(active, seeded)

	return Selection{active: active, seeded: seeded}
}

// Toggle flips membership of a skill: present skills are removed, absent
// skills are appended. The receiver is left unchanged.
func (s Selection) Toggle(skill string) Selection {
	next := Selection{seeded: s.seeded}

	found := false
	for _, existing := range s.active {
		if existing == skill {
			found = true
			continue
		}
		next.active = append(next.active, existing)
	}
	if !found {
		next.active = append(s.copyActive(), skill)
	}
	return next
}

// Has reports whether a skill is currently selected.
func (s Selection) Has(skill string) bool {
	for _, existing := range s.active {
		if existing == skill {
			return true
		}
	}
	return false
}

// Active returns the selected skills in insertion order.
func (s Selection) Active() []string {
	return s.copyActive()
}

// Len returns the number of selected skills.
func (s Selection) Len() int {
	return len(s.active)
}

// QuerySkills returns the skills to search with. An empty selection falls
// back to the originally seeded skills so the search never runs with an
// empty, unfiltered term.
func (s Selection) QuerySkills() []string {
	if len(s.active) > 0 {
		return s.copyActive()
	}
	fallback := make([]string, len(s.seeded))
	copy(fallback, s.seeded)
	return fallback
}

func (s Selection) copyActive() []string {
	out := make([]string, len(s.active))
	copy(out, s.active)
	return out
}
