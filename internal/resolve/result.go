package resolve

// Tier identifies which resolution step activated a profile. Ordering of
// tiers defines the ordering of the final active list: core first, then
// type-derived, dimension-derived, feature-derived, trigger-derived, and
// finally profiles present only through an explicit include.
type Tier int

const (
	TierCore Tier = iota
	TierType
	TierDimension
	TierFeature
	TierTrigger
	TierOverride
)

// precedence returns the mutex tie-break rank of a tier. An explicitly
// configured dimension beats a type-derived default, which beats
// feature-derived and trigger-derived additions.
func (t Tier) precedence() int {
	switch t {
	case TierCore:
		return 4
	case TierDimension:
		return 3
	case TierType:
		return 2
	case TierFeature:
		return 1
	default:
		return 0
	}
}

// Result is the resolved outcome: the ordered active set plus the rules
// that activated each member. Results are immutable once returned; Reasons
// exist for diagnostics, never for control flow.
type Result struct {
	// Active holds unique profile ids ordered by tier, alphabetical within
	// each tier.
	Active []string
	// Reasons maps each active id to the rules that activated it, e.g.
	// "core", "type:web", "dimension:backend=supabase",
	// "feature:authentication", "trigger:when", "override:include".
	Reasons map[string][]string
}

// Contains reports whether a profile id is active.
func (r *Result) Contains(id string) bool {
	for _, active := range r.Active {
		if active == id {
			return true
		}
	}
	return false
}
