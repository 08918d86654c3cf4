package resolve

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentsel-dev/agentsel/internal/catalog"
	"github.com/agentsel-dev/agentsel/internal/catalog/builtin"
	"github.com/agentsel-dev/agentsel/internal/project"
)

func builtinCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(builtin.FS())
	require.NoError(t, err)
	return cat
}

func TestResolve_WebWithSupabase(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:       project.TypeWeb,
		Dimensions: map[string]string{project.DimBackend: "supabase"},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"documentation", "testing", "version-control",
		"design", "frontend",
		"supabase-backend",
	}, sel.Active)

	assert.NotContains(t, sel.Active, "firebase-backend")
	assert.NotContains(t, sel.Active, "aws-backend")
	assert.NotContains(t, sel.Active, "flutter-mobile")
	assert.NotContains(t, sel.Active, "react-native-mobile")
	assert.NotContains(t, sel.Active, "ios-native-mobile")
	assert.NotContains(t, sel.Active, "mobile")

	// The supabase profile is reachable both through the dimension table and
	// its own when trigger; both reasons are recorded.
	assert.Contains(t, sel.Reasons["supabase-backend"], "dimension:backend=supabase")
	assert.Contains(t, sel.Reasons["supabase-backend"], "trigger:when")
}

func TestResolve_MobileFlutterFirebase(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type: project.TypeMobile,
		Dimensions: map[string]string{
			project.DimMobile:  "flutter",
			project.DimBackend: "firebase",
		},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)

	assert.Contains(t, sel.Active, "flutter-mobile")
	assert.Contains(t, sel.Active, "firebase-backend")

	// The explicit platform dimension outranks the type-derived default, so
	// the generic mobile profile is displaced and only one group member
	// remains.
	assert.NotContains(t, sel.Active, "mobile")
	assert.NotContains(t, sel.Active, "react-native-mobile")
	assert.NotContains(t, sel.Active, "ios-native-mobile")
	assert.NotContains(t, sel.Active, "supabase-backend")
	assert.NotContains(t, sel.Active, "aws-backend")
}

func TestResolve_OverrideBypassesMutex(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:       project.TypeWeb,
		Dimensions: map[string]string{project.DimBackend: "aws"},
		Overrides:  project.Overrides{Include: []string{"firebase-backend"}},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)

	// Forcing a second member of the backend group is accepted as an
	// explicit, intentional configuration.
	assert.Contains(t, sel.Active, "aws-backend")
	assert.Contains(t, sel.Active, "firebase-backend")
	assert.Equal(t, []string{"override:include"}, sel.Reasons["firebase-backend"])
}

func TestResolve_UnknownDimensionValue(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:       project.TypeWeb,
		Dimensions: map[string]string{project.DimDeployment: "heroku-legacy"},
	}

	sel, err := Resolve(cat, desc)
	assert.Nil(t, sel)

	var unknownErr *UnknownValueError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "deployment", unknownErr.Dimension)
	assert.Equal(t, "heroku-legacy", unknownErr.Value)
	assert.Equal(t, []string{"aws", "docker", "netlify", "vercel", "none"}, unknownErr.Allowed)
}

func TestResolve_UnknownDimensionName(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:       project.TypeWeb,
		Dimensions: map[string]string{"mainframe": "ibm"},
	}

	_, err := Resolve(cat, desc)
	var unknownErr *UnknownValueError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "mainframe", unknownErr.Dimension)
}

func TestResolve_InvalidType(t *testing.T) {
	cat := builtinCatalog(t)
	_, err := Resolve(cat, project.Description{Type: "mainframe"})

	var unknownErr *UnknownValueError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "type", unknownErr.Dimension)
	assert.Equal(t, "mainframe", unknownErr.Value)
}

func TestResolve_CoreAlwaysActive(t *testing.T) {
	cat := builtinCatalog(t)

	for _, typ := range project.Types {
		sel, err := Resolve(cat, project.Description{Type: typ})
		require.NoError(t, err)
		assert.Contains(t, sel.Active, "documentation")
		assert.Contains(t, sel.Active, "testing")
		assert.Contains(t, sel.Active, "version-control")
	}
}

func TestResolve_CoreExplicitlyExcluded(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:      project.TypeCLI,
		Overrides: project.Overrides{Exclude: []string{"documentation"}},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)
	assert.NotContains(t, sel.Active, "documentation")
	assert.Contains(t, sel.Active, "testing")
}

func TestResolve_EmptyDimensionsAndFeatures(t *testing.T) {
	cat := builtinCatalog(t)
	sel, err := Resolve(cat, project.Description{Type: project.TypeAPI})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"documentation", "testing", "version-control",
		"api-design", "backend",
	}, sel.Active)
}

func TestResolve_TypeAndDimensionsAreAdditive(t *testing.T) {
	// An api project with a frontend dimension still gets the frontend
	// profile; type and dimensions only contend inside a mutex group.
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:       project.TypeAPI,
		Dimensions: map[string]string{project.DimFrontend: "react"},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)
	assert.Contains(t, sel.Active, "react-frontend")
	assert.Contains(t, sel.Active, "backend")
}

func TestResolve_FeatureProfiles(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type: project.TypeWeb,
		Features: map[string]bool{
			"authentication": true,
			"payments":       true,
			"realtime":       false,
		},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)

	assert.Contains(t, sel.Active, "auth")
	assert.Contains(t, sel.Active, "payments")
	assert.NotContains(t, sel.Active, "realtime")
	assert.Equal(t, []string{"feature:authentication"}, sel.Reasons["auth"])
}

func TestResolve_TestingExtraMergesIntoCore(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:     project.TypeWeb,
		Features: map[string]bool{"testing-extra": true},
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)

	count := 0
	for _, id := range sel.Active {
		if id == "testing" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, sel.Reasons["testing"], "core")
	assert.Contains(t, sel.Reasons["testing"], "feature:testing-extra")
}

func TestResolve_KeywordTriggers(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:  project.TypeWeb,
		Notes: "Screen reader support and A11y compliance are required.",
	}

	sel, err := Resolve(cat, desc)
	require.NoError(t, err)

	assert.Contains(t, sel.Active, "accessibility")
	assert.Contains(t, sel.Reasons["accessibility"], "trigger:keyword:a11y")
	assert.NotContains(t, sel.Active, "performance")
}

func TestResolve_Idempotent(t *testing.T) {
	cat := builtinCatalog(t)
	desc := project.Description{
		Type:       project.TypeFullstack,
		Dimensions: map[string]string{project.DimBackend: "supabase", project.DimDatabase: "postgres"},
		Features:   map[string]bool{"authentication": true, "realtime": true},
		Notes:      "performance sensitive dashboard",
	}

	first, err := Resolve(cat, desc)
	require.NoError(t, err)

	for range 5 {
		again, err := Resolve(cat, desc)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_MutexConflictSamePrecedence(t *testing.T) {
	fsys := fstest.MapFS{
		"exp-one.agent.md": &fstest.MapFile{Data: []byte(
			"---\ngroup: experiment\nkeywords: [chaos]\n---\nFirst experimental profile.\n")},
		"exp-two.agent.md": &fstest.MapFile{Data: []byte(
			"---\ngroup: experiment\nkeywords: [chaos]\n---\nSecond experimental profile.\n")},
	}
	cat, err := catalog.Load(fsys)
	require.NoError(t, err)

	desc := project.Description{
		Type:  project.TypeOther,
		Notes: "chaos engineering playground",
	}

	sel, err := Resolve(cat, desc)
	assert.Nil(t, sel)

	var conflictErr *ConfigConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "experiment", conflictErr.Group)
	assert.Equal(t, []string{"exp-one", "exp-two"}, conflictErr.Candidates)
}

func TestResolve_BadTriggerExpression(t *testing.T) {
	fsys := fstest.MapFS{
		"odd.agent.md": &fstest.MapFile{Data: []byte(
			"---\nwhen: 'type +'\n---\nBody.\n")},
	}
	cat, err := catalog.Load(fsys)
	require.NoError(t, err)

	_, err = Resolve(cat, project.Description{Type: project.TypeWeb})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odd")
}

func TestResolve_BuiltinCatalogCoversRuleTables(t *testing.T) {
	cat := builtinCatalog(t)

	for _, id := range coreProfiles {
		assert.True(t, cat.Has(id), "core profile %s missing from builtin catalog", id)
	}
	for typ, ids := range typeProfiles {
		for _, id := range ids {
			assert.True(t, cat.Has(id), "type %s profile %s missing", typ, id)
		}
	}
	for dim, table := range dimensionProfiles {
		for value, id := range table {
			assert.True(t, cat.Has(id), "dimension %s=%s profile %s missing", dim, value, id)
		}
	}
	for feature, id := range featureProfiles {
		assert.True(t, cat.Has(id), "feature %s profile %s missing", feature, id)
	}
}
