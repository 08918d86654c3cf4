// Package project defines the ProjectDescription supplied by callers and
// its YAML loader. The description is a closed, tagged structure: project
// type and dimension values come from fixed enumerations so that an
// out-of-range value is an enumerable failure, never a silent no-op.
package project

// Type classifies the project under configuration.
type Type string

// The closed project type enumeration.
const (
	TypeWeb       Type = "web"
	TypeMobile    Type = "mobile"
	TypeFullstack Type = "fullstack"
	TypeAPI       Type = "api"
	TypeDesktop   Type = "desktop"
	TypeCLI       Type = "cli"
	TypeOther     Type = "other"
)

// Types lists every valid project type.
var Types = []Type{TypeWeb, TypeMobile, TypeFullstack, TypeAPI, TypeDesktop, TypeCLI, TypeOther}

// Valid reports whether t is a member of the closed enumeration.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Dimension names recognized in Description.Dimensions.
const (
	DimFrontend   = "frontend"
	DimBackend    = "backend"
	DimMobile     = "mobile"
	DimDatabase   = "database"
	DimDeployment = "deployment"
)

// Dimensions lists every recognized dimension name.
var Dimensions = []string{DimFrontend, DimBackend, DimMobile, DimDatabase, DimDeployment}

// None is the dimension value meaning "this dimension does not apply".
const None = "none"

// Description holds caller-supplied facts about the project. It is an
// immutable input to resolution; nothing in this package mutates it after
// loading.
type Description struct {
	Type Type `yaml:"type"`
	// Dimensions maps a dimension name to a value from that dimension's
	// closed enumeration, or "none".
	Dimensions map[string]string `yaml:"dimensions,omitempty"`
	// Features maps a feature name to whether the project needs it.
	Features map[string]bool `yaml:"features,omitempty"`
	// Notes is optional free text matched against keyword triggers.
	Notes string `yaml:"notes,omitempty"`
	// Overrides force-includes or force-excludes profile ids, taking
	// precedence over rule-derived results.
	Overrides Overrides `yaml:"overrides,omitempty"`
}

// Overrides are explicit caller instructions that bypass ordinary rule
// resolution and mutex enforcement.
type Overrides struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// Dimension returns the value set for a dimension, or "none" when unset.
func (d Description) Dimension(name string) string {
	if v, ok := d.Dimensions[name]; ok && v != "" {
		return v
	}
	return None
}

// Excluded reports whether a profile id is force-excluded.
func (d Description) Excluded(id string) bool {
	for _, ex := range d.Overrides.Exclude {
		if ex == id {
			return true
		}
	}
	return false
}
