package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	t.Setenv("HOME", "/home/wine")
	t.Setenv("WINEPREFIX", "/srv/prefix")
	t.Setenv("USER", "wine")
	t.Setenv("PATH", "/usr/bin:/bin")

	e, err := Process()
	require.NoError(t, err)
	assert.Equal(t, Env{
		Home:   "/home/wine",
		Prefix: "/srv/prefix",
		User:   "wine",
		Path:   "/usr/bin:/bin",
	}, e)
}

func TestProcessEmptyPrefix(t *testing.T) {
	t.Setenv("WINEPREFIX", "")

	e, err := Process()
	require.NoError(t, err)
	assert.Empty(t, e.Prefix)
}

func TestLookup(t *testing.T) {
	t.Setenv("WINECONF_TEST_LOADER", "/opt/wine/bin/wine")
	t.Setenv("WINECONF_TEST_EMPTY", "")

	v, ok := Lookup("WINECONF_TEST_LOADER")
	assert.True(t, ok)
	assert.Equal(t, "/opt/wine/bin/wine", v)

	_, ok = Lookup("WINECONF_TEST_EMPTY")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.False(t, ok)
}
