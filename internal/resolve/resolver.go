// Package resolve computes the unique, conflict-free set of active profiles
// for a project description. Resolution is a pure function of the catalog
// contents and the description: no clock, no randomness, no hidden state.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/agentsel-dev/agentsel/internal/catalog"
	"github.com/agentsel-dev/agentsel/internal/project"
)

// candidate tracks one profile during resolution.
type candidate struct {
	id       string
	tier     Tier // earliest tier that added the profile; decides ordering
	prec     int  // highest precedence among rule-derived additions
	rules    []string
	override bool // force-included; exempt from mutex enforcement
}

// Resolve computes the selection for desc against a loaded catalog. On any
// UnknownValueError or ConfigConflictError no partial result is returned;
// the caller must fix the input and retry.
func Resolve(cat *catalog.Catalog, desc project.Description) (*Result, error) {
	cands := make(map[string]*candidate)

	// Step 1: fixed core set.
	for _, id := range coreProfiles {
		add(cands, id, TierCore, "core")
	}

	// Step 2: type-derived defaults.
	if !desc.Type.Valid() {
		return nil, &UnknownValueError{Dimension: "type", Value: string(desc.Type), Allowed: typeNames()}
	}
	for _, id := range typeProfiles[desc.Type] {
		add(cands, id, TierType, "type:"+string(desc.Type))
	}

	// Step 3: dimension-derived profiles. Dimension names are iterated in
	// their fixed declaration order; unknown names or out-of-enum values are
	// fatal.
	for name := range desc.Dimensions {
		if !knownDimension(name) {
			return nil, &UnknownValueError{Dimension: name, Value: desc.Dimensions[name]}
		}
	}
	for _, name := range project.Dimensions {
		value := desc.Dimension(name)
		if value == project.None {
			continue
		}
		id, ok := dimensionProfiles[name][value]
		if !ok {
			return nil, &UnknownValueError{Dimension: name, Value: value, Allowed: allowedValues(name)}
		}
		add(cands, id, TierDimension, fmt.Sprintf("dimension:%s=%s", name, value))
	}

	// Step 4: feature-derived profiles, in sorted feature order.
	for _, feature := range sortedEnabled(desc.Features) {
		id, ok := featureProfiles[feature]
		if !ok {
			continue
		}
		add(cands, id, TierFeature, "feature:"+feature)
	}

	// Step 4b: catalog-declared triggers (when expressions and keywords).
	if err := applyTriggers(cands, cat, desc); err != nil {
		return nil, err
	}

	// Step 5: explicit overrides, include then exclude.
	for _, id := range desc.Overrides.Include {
		add(cands, id, TierOverride, "override:include")
		cands[id].override = true
	}
	for _, id := range desc.Overrides.Exclude {
		delete(cands, id)
	}

	// Step 6: mutex group enforcement.
	if err := enforceMutexGroups(cands, cat); err != nil {
		return nil, err
	}

	// Step 7: deterministic ordering and reason attachment.
	return assemble(cands), nil
}

// add registers a rule-derived (or override) addition for id, merging with
// any earlier addition of the same profile.
func add(cands map[string]*candidate, id string, tier Tier, rule string) {
	c, ok := cands[id]
	if !ok {
		c = &candidate{id: id, tier: tier, prec: tier.precedence()}
		cands[id] = c
	}
	if tier < c.tier {
		c.tier = tier
	}
	if tier != TierOverride && tier.precedence() > c.prec {
		c.prec = tier.precedence()
	}
	for _, existing := range c.rules {
		if existing == rule {
			return
		}
	}
	c.rules = append(c.rules, rule)
}

// applyTriggers evaluates every descriptor's declared triggers against the
// description. Descriptors are visited in catalog order, so trigger-derived
// additions are deterministic.
func applyTriggers(cands map[string]*candidate, cat *catalog.Catalog, desc project.Description) error {
	env := triggerEnv(desc)

	for _, d := range cat.Descriptors() {
		if !d.HasTriggers() {
			continue
		}

		if d.When != "" {
			matched, err := evalWhen(d.When, env)
			if err != nil {
				return fmt.Errorf("profile %s: trigger expression %q: %w", d.ID, d.When, err)
			}
			if matched {
				add(cands, d.ID, TierTrigger, "trigger:when")
			}
		}

		if desc.Notes != "" {
			notes := strings.ToLower(desc.Notes)
			for _, kw := range d.Keywords {
				if strings.Contains(notes, strings.ToLower(kw)) {
					add(cands, d.ID, TierTrigger, "trigger:keyword:"+kw)
				}
			}
		}
	}
	return nil
}

// triggerEnv builds the expression environment. Every dimension and known
// feature is present with a default so expressions never observe a missing
// key.
func triggerEnv(desc project.Description) map[string]any {
	dims := make(map[string]string, len(project.Dimensions))
	for _, name := range project.Dimensions {
		dims[name] = desc.Dimension(name)
	}

	features := make(map[string]bool, len(featureProfiles))
	for name := range featureProfiles {
		features[name] = false
	}
	for name, enabled := range desc.Features {
		features[name] = enabled
	}

	return map[string]any{
		"type":       string(desc.Type),
		"dimensions": dims,
		"features":   features,
		"notes":      desc.Notes,
	}
}

func evalWhen(code string, env map[string]any) (bool, error) {
	program, err := expr.Compile(code, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, err
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression did not evaluate to a boolean")
	}
	return matched, nil
}

// enforceMutexGroups keeps at most one rule-derived member per group.
// Override-included members are exempt: a caller forcing two same-group
// profiles is an explicit, intentional configuration and both remain.
func enforceMutexGroups(cands map[string]*candidate, cat *catalog.Catalog) error {
	contested := make(map[string][]*candidate)
	for _, c := range cands {
		if c.override {
			continue
		}
		d, ok := cat.Get(c.id)
		if !ok || d.MutexGroup == "" {
			continue
		}
		contested[d.MutexGroup] = append(contested[d.MutexGroup], c)
	}

	groups := make([]string, 0, len(contested))
	for g := range contested {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		members := contested[g]
		if len(members) < 2 {
			continue
		}

		best := members[0]
		for _, m := range members[1:] {
			if m.prec > best.prec {
				best = m
			}
		}

		var winners []string
		for _, m := range members {
			if m.prec == best.prec {
				winners = append(winners, m.id)
			}
		}
		if len(winners) > 1 {
			ids := make([]string, 0, len(members))
			for _, m := range members {
				ids = append(ids, m.id)
			}
			sort.Strings(ids)
			return &ConfigConflictError{Group: g, Candidates: ids}
		}

		for _, m := range members {
			if m.id != best.id {
				delete(cands, m.id)
			}
		}
	}
	return nil
}

// assemble orders surviving candidates by tier then id and attaches reasons.
func assemble(cands map[string]*candidate) *Result {
	ordered := make([]*candidate, 0, len(cands))
	for _, c := range cands {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].tier != ordered[j].tier {
			return ordered[i].tier < ordered[j].tier
		}
		return ordered[i].id < ordered[j].id
	})

	result := &Result{Reasons: make(map[string][]string, len(ordered))}
	for _, c := range ordered {
		result.Active = append(result.Active, c.id)
		result.Reasons[c.id] = c.rules
	}
	return result
}

// sortedEnabled returns the names of enabled features in sorted order so
// feature-derived additions are deterministic.
func sortedEnabled(features map[string]bool) []string {
	var enabled []string
	for name, on := range features {
		if on {
			enabled = append(enabled, name)
		}
	}
	sort.Strings(enabled)
	return enabled
}

func knownDimension(name string) bool {
	_, ok := dimensionProfiles[name]
	return ok
}

func typeNames() []string {
	names := make([]string, 0, len(project.Types))
	for _, t := range project.Types {
		names = append(names, string(t))
	}
	return names
}
