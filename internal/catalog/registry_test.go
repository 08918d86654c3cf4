package catalog

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"zulu.agent.md": &fstest.MapFile{Data: []byte(
			"# Zulu Agent\n\nLast in name order but indexed like any other.\n")},
		"alpha.agent.md": &fstest.MapFile{Data: []byte(
			"---\ngroup: greek\nwhen: type == \"web\"\nkeywords: [alpha, first]\n---\n# Alpha Agent\n\nFirst entry with full front matter.\n")},
		"beta.agent.md": &fstest.MapFile{Data: []byte(
			"# Beta Agent\n\nNo front matter at all.\n")},
		"notes.txt": &fstest.MapFile{Data: []byte("ignored, wrong suffix")},
	}
}

func TestLoad_IndexesEntries(t *testing.T) {
	cat, err := Load(testFS())
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []string{"alpha", "beta", "zulu"}, cat.IDs())

	alpha, ok := cat.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "Alpha", alpha.DisplayName)
	assert.Equal(t, "alpha.agent.md", alpha.Source)
	assert.Equal(t, "greek", alpha.MutexGroup)
	assert.Equal(t, `type == "web"`, alpha.When)
	assert.Equal(t, []string{"alpha", "first"}, alpha.Keywords)
	assert.Contains(t, alpha.Body, "First entry with full front matter.")
	assert.True(t, alpha.HasTriggers())

	beta, ok := cat.Get("beta")
	require.True(t, ok)
	assert.Empty(t, beta.MutexGroup)
	assert.False(t, beta.HasTriggers())
}

func TestLoad_DeterministicOrder(t *testing.T) {
	// Entry enumeration is merged in lexicographic order, so repeated loads
	// observe identical ordering regardless of read completion order.
	first, err := Load(testFS())
	require.NoError(t, err)

	for range 10 {
		again, err := Load(testFS())
		require.NoError(t, err)
		assert.Equal(t, first.IDs(), again.IDs())
	}
}

func TestLoad_DuplicateID(t *testing.T) {
	fsys := fstest.MapFS{
		"Shared.agent.md": &fstest.MapFile{Data: []byte("upper\n")},
		"shared.agent.md": &fstest.MapFile{Data: []byte("lower\n")},
	}

	_, err := Load(fsys)
	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, KindDuplicateID, regErr.Kind)
	assert.Equal(t, "shared", regErr.ID)
}

func TestLoad_BadFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.agent.md": &fstest.MapFile{Data: []byte("---\ngroup: [unclosed\n---\nbody\n")},
	}

	_, err := Load(fsys)
	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, KindBadFrontMatter, regErr.Kind)
	assert.Equal(t, "broken.agent.md", regErr.Path)
}

func TestLoad_UnclosedFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"open.agent.md": &fstest.MapFile{Data: []byte("---\ngroup: g\nno closing delimiter\n")},
	}

	_, err := Load(fsys)
	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, KindBadFrontMatter, regErr.Kind)
}

// unreadableFS fails enumeration to exercise the unreadable-source path.
type unreadableFS struct{}

func (unreadableFS) Open(string) (fs.File, error) {
	return nil, errors.New("backing store offline")
}

func TestLoad_UnreadableSource(t *testing.T) {
	_, err := Load(unreadableFS{})
	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, KindUnreadableSource, regErr.Kind)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"frontend", "Frontend"},
		{"supabase-backend", "Supabase Backend"},
		{"react-native-mobile", "React Native Mobile"},
		{"i18n", "I18n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.id))
	}
}

func TestSplitFrontMatter_NoMatter(t *testing.T) {
	matter, body, err := splitFrontMatter("# Heading\n\nJust a body.\n")
	require.NoError(t, err)
	assert.Empty(t, matter)
	assert.Equal(t, "# Heading\n\nJust a body.\n", body)
}
