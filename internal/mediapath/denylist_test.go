package mediapath

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDenyList(t *testing.T) {
	d := ParseDenyList("x264\nWEBRip\n\n  \nBluRay\n")
	assert.Equal(t, 3, d.Len())
}

func TestParseDenyList_SkipsBadPatterns(t *testing.T) {
	// "[" does not compile inside the word-boundary wrapper; the rest of
	// the file still loads.
	d := ParseDenyList("[\nx264")
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "Movie ", d.Scrub("Movie x264"))
}

func TestDenyList_Scrub(t *testing.T) {
	d := ParseDenyList("x264\nsample")
	assert.Equal(t, "Movie Title ", d.Scrub("Movie Title x264"))
	assert.Equal(t, "Movie  Pack", d.Scrub("Movie Sample Pack"))
	// Whole-word only: embedded occurrences survive.
	assert.Equal(t, "sampler", d.Scrub("sampler"))
}

func TestDenyList_MatchesStart(t *testing.T) {
	d := ParseDenyList("x264")
	assert.True(t, d.MatchesStart("x264 leftovers"))
	assert.False(t, d.MatchesStart("Movie x264"))
}

func TestDenyList_NilSafe(t *testing.T) {
	var d *DenyList
	assert.Zero(t, d.Len())
	assert.Equal(t, "untouched", d.Scrub("untouched"))
	assert.False(t, d.MatchesStart("anything"))
}

func TestLoadDenyList(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/deny.txt", []byte("x264\nYIFY\n"), 0o644))

	d, err := LoadDenyList(fs, "/deny.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestLoadDenyList_MissingFile(t *testing.T) {
	d, err := LoadDenyList(afero.NewMemMapFs(), "/nope.txt")
	require.NoError(t, err)
	assert.Zero(t, d.Len())
}
