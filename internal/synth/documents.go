package synth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentsel-dev/agentsel/internal/catalog"
	"github.com/agentsel-dev/agentsel/internal/project"
	"github.com/agentsel-dev/agentsel/internal/resolve"
)

// Suggested relative names for the three artifacts. Persistence and
// directory layout are the caller's responsibility.
const (
	RulesDocName   = "AGENTS.md"
	ContextDocName = "PROJECT_CONTEXT.md"
	PromptsDocName = "PROMPTS.md"
)

// placeholderSummary replaces the summary of a profile whose body has no
// extractable line. Sections are never emitted empty.
const placeholderSummary = "Refer to the full agent document for guidance on this area."

// rulesPreamble opens the combined rules document.
const rulesPreamble = `# Agent Rules

This document combines the guidance of every agent profile active for this
project. Each section summarizes one profile; consult the profile source for
the complete text.`

// Artifact pairs assembled content with its suggested relative name.
type Artifact struct {
	Name    string
	Content string
}

// RulesDocument assembles the combined rules artifact: a fixed preamble,
// then one labeled section per active profile in selection order. Fails
// with a missing-profile SynthesisError when the selection references an id
// absent from the catalog.
func RulesDocument(sel *resolve.Result, cat *catalog.Catalog) (Artifact, error) {
	var sb strings.Builder
	sb.WriteString(rulesPreamble)
	sb.WriteString("\n")

	for _, id := range sel.Active {
		d, ok := cat.Get(id)
		if !ok {
			return Artifact{}, &SynthesisError{Kind: KindMissingProfile, ID: id}
		}

		summary, ok := ExtractSummary(d.Body)
		if !ok {
			summary = placeholderSummary
		}

		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", d.DisplayName, summary)
	}

	return Artifact{Name: RulesDocName, Content: sb.String()}, nil
}

// ContextDocument assembles the context artifact: project facts followed by
// the flat list of active profiles. Display names are derived from the ids
// themselves, so no catalog access is needed.
func ContextDocument(sel *resolve.Result, desc project.Description) Artifact {
	var sb strings.Builder
	sb.WriteString("# Project Context\n\n")
	fmt.Fprintf(&sb, "Type: %s\n", desc.Type)

	for _, name := range project.Dimensions {
		value := desc.Dimension(name)
		if value == project.None {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", catalog.DisplayName(name), value)
	}

	if enabled := sortedEnabled(desc.Features); len(enabled) > 0 {
		fmt.Fprintf(&sb, "Features: %s\n", strings.Join(enabled, ", "))
	}

	sb.WriteString("\n## Active Agents\n\n")
	for _, id := range sel.Active {
		fmt.Fprintf(&sb, "- %s (%s)\n", catalog.DisplayName(id), id)
	}

	return Artifact{Name: ContextDocName, Content: sb.String()}
}

// All assembles the three artifacts in their fixed order.
func All(sel *resolve.Result, cat *catalog.Catalog, desc project.Description) ([]Artifact, error) {
	rules, err := RulesDocument(sel, cat)
	if err != nil {
		return nil, err
	}
	return []Artifact{
		rules,
		ContextDocument(sel, desc),
		PromptsDocument(sel, desc.Type),
	}, nil
}

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
