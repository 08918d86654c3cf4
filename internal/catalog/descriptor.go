// Package catalog loads and indexes the agent-profile catalog.
// A catalog is any fs.FS containing *.agent.md entries: optional YAML front
// matter (mutex group, triggers) followed by free-form guidance text.
package catalog

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// EntrySuffix is the fixed suffix stripped from entry names to derive ids.
const EntrySuffix = ".agent.md"

// Descriptor holds the identity and matching metadata of one profile.
// Descriptors are immutable once the catalog is loaded.
type Descriptor struct {
	// ID is the unique, stable profile id derived from the entry name.
	ID string
	// DisplayName is the human label derived from ID.
	DisplayName string
	// Source is the entry path within the catalog FS. Never mutated.
	Source string
	// MutexGroup names the group of which at most one member may be active.
	// Empty means the profile participates in no group.
	MutexGroup string
	// When is an optional boolean trigger expression over the project
	// description (e.g. `dimensions.backend == "supabase"`).
	When string
	// Keywords are optional free-text triggers matched against the project
	// notes.
	Keywords []string
	// Body is the guidance text after the front matter.
	Body string
}

// frontMatter is the YAML block optionally delimited by "---" lines at the
// top of an entry.
type frontMatter struct {
	Group    string   `yaml:"group,omitempty"`
	When     string   `yaml:"when,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// DisplayName derives the human label for a profile id: tokens split on
// dashes, each title-cased, joined with spaces. The derivation is pure so
// callers that only hold an id can still label it.
func DisplayName(id string) string {
	tokens := strings.Split(id, "-")
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		tokens[i] = strings.ToUpper(tok[:1]) + tok[1:]
	}
	return strings.Join(tokens, " ")
}

// parseDescriptor builds a Descriptor from a raw catalog entry. Ids are
// lowercased during derivation, so entries differing only in case collide
// and surface as duplicate-id errors.
func parseDescriptor(name string, raw []byte) (*Descriptor, error) {
	id := strings.ToLower(strings.TrimSuffix(name, EntrySuffix))

	matter, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		ID:          id,
		DisplayName: DisplayName(id),
		Source:      name,
		Body:        body,
	}

	if matter != "" {
		var fm frontMatter
		if err := yaml.UnmarshalWithOptions([]byte(matter), &fm, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("parsing front matter: %w", err)
		}
		d.MutexGroup = fm.Group
		d.When = fm.When
		d.Keywords = fm.Keywords
	}

	return d, nil
}

// splitFrontMatter separates an optional leading "---" delimited YAML block
// from the entry body. Entries without front matter are returned whole.
func splitFrontMatter(text string) (matter, body string, err error) {
	const delim = "---"

	if !strings.HasPrefix(text, delim+"\n") && text != delim {
		return "", text, nil
	}

	rest := strings.TrimPrefix(text, delim+"\n")
	end := strings.Index(rest, "\n"+delim)
	if end < 0 {
		return "", "", fmt.Errorf("front matter opened but never closed")
	}

	matter = rest[:end]
	body = rest[end+len("\n"+delim):]
	body = strings.TrimPrefix(body, "\n")
	return matter, body, nil
}

// HasTriggers reports whether the descriptor declares any trigger condition.
func (d *Descriptor) HasTriggers() bool {
	return d.When != "" || len(d.Keywords) > 0
}
