package catalog

import (
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Catalog is the immutable, duplicate-free index of profile descriptors.
type Catalog struct {
	// Manifest is the optional catalog manifest, nil when the catalog ships
	// without one.
	Manifest *Manifest

	descriptors map[string]*Descriptor
	order       []string
}

// Load scans the given catalog filesystem and indexes every *.agent.md
// entry. Entry contents are read concurrently, but results are merged back
// in lexicographic entry-name order so id derivation, duplicate detection,
// and any first-wins tie-break elsewhere are reproducible regardless of
// read completion order.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, &RegistryError{Kind: KindUnreadableSource, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), EntrySuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	raws := make([][]byte, len(names))
	var group errgroup.Group
	for i, name := range names {
		group.Go(func() error {
			raw, err := fs.ReadFile(fsys, name)
			if err != nil {
				return &RegistryError{Kind: KindUnreadableSource, Path: name, Err: err}
			}
			raws[i] = raw
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	cat := &Catalog{descriptors: make(map[string]*Descriptor, len(names))}
	for i, name := range names {
		desc, err := parseDescriptor(name, raws[i])
		if err != nil {
			return nil, &RegistryError{Kind: KindBadFrontMatter, Path: name, Err: err}
		}
		if _, exists := cat.descriptors[desc.ID]; exists {
			return nil, &RegistryError{Kind: KindDuplicateID, ID: desc.ID, Path: name}
		}
		cat.descriptors[desc.ID] = desc
		cat.order = append(cat.order, desc.ID)
	}

	manifest, err := loadManifest(fsys)
	if err != nil {
		return nil, err
	}
	cat.Manifest = manifest

	return cat, nil
}

// Get returns the descriptor for a profile id.
func (c *Catalog) Get(id string) (*Descriptor, bool) {
	d, ok := c.descriptors[id]
	return d, ok
}

// Has reports whether the catalog contains a profile id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.descriptors[id]
	return ok
}

// IDs returns all profile ids in deterministic (entry-name) order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Descriptors returns all descriptors in deterministic order.
func (c *Catalog) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.descriptors[id])
	}
	return out
}

// Len returns the number of indexed profiles.
func (c *Catalog) Len() int {
	return len(c.order)
}
