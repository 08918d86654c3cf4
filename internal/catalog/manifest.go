package catalog

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
)

// ManifestName is the optional manifest entry at the catalog root.
const ManifestName = "catalog.yaml"

// Manifest carries catalog-level metadata. Catalogs may ship without one.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	// MinEngine is a semver constraint the running tool version must
	// satisfy, e.g. ">= 0.2.0".
	MinEngine string `yaml:"minEngine,omitempty"`
}

// loadManifest reads catalog.yaml when present. A missing manifest is not an
// error.
func loadManifest(fsys fs.FS) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &RegistryError{Kind: KindUnreadableSource, Path: ManifestName, Err: err}
	}

	var m Manifest
	if err := yaml.UnmarshalWithOptions(raw, &m, yaml.Strict()); err != nil {
		return nil, &RegistryError{Kind: KindBadFrontMatter, Path: ManifestName, Err: err}
	}
	return &m, nil
}

// Compatible checks the running engine version against the manifest's
// MinEngine constraint. Development builds ("dev") always pass.
func (m *Manifest) Compatible(engineVersion string) error {
	if m == nil || m.MinEngine == "" || engineVersion == "dev" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.MinEngine)
	if err != nil {
		return &RegistryError{
			Kind: KindIncompatibleCatalog,
			Err:  fmt.Errorf("invalid minEngine constraint %q: %w", m.MinEngine, err),
		}
	}

	current, err := semver.NewVersion(engineVersion)
	if err != nil {
		return &RegistryError{
			Kind: KindIncompatibleCatalog,
			Err:  fmt.Errorf("invalid engine version %q: %w", engineVersion, err),
		}
	}

	if !constraint.Check(current) {
		return &RegistryError{
			Kind: KindIncompatibleCatalog,
			Err:  fmt.Errorf("catalog %q requires engine %s, running %s", m.Name, m.MinEngine, engineVersion),
		}
	}
	return nil
}
