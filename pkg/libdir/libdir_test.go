package libdir

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorDir(t *testing.T) {
	tests := []struct {
		name    string
		exe     string
		err     error
		wantDir string
		wantOK  bool
	}{
		{"absolute", "/opt/wine/lib/wine64", nil, "/opt/wine/lib", true},
		{"root image", "/wine", nil, "/", true},
		{"relative", "lib/wine", nil, "", false},
		{"error", "", errors.New("no /proc"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocatorFunc(func() (string, error) { return tt.exe, tt.err })
			dir, ok := l.Dir()
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestLocatorCachesUnknown(t *testing.T) {
	calls := 0
	l := NewLocatorFunc(func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("not yet")
		}
		return "/opt/wine/lib/wine", nil
	})

	_, ok := l.Dir()
	require.False(t, ok)
	_, ok = l.Dir()
	assert.False(t, ok, "an unknown result must stay unknown")
	assert.Equal(t, 1, calls)
}

func TestNewLocator(t *testing.T) {
	dir, ok := NewLocator().Dir()
	if !ok {
		t.Skip("platform cannot report the executable path")
	}
	assert.True(t, filepath.IsAbs(dir))
}

func TestRebase(t *testing.T) {
	tests := []struct {
		name     string
		libDir   string
		root     string
		path     string
		fallback string
		filename string
		want     string
	}{
		{
			name:     "one level up",
			libDir:   "/opt/app/lib",
			root:     "/usr/lib",
			path:     "/usr/share/app/data",
			filename: "foo.dat",
			want:     "/opt/app/lib/../share/app/data/foo.dat",
		},
		{
			name:   "nested under root",
			libDir: "/opt/wine/lib",
			root:   "/usr/lib",
			path:   "/usr/lib/wine",
			want:   "/opt/wine/lib/wine",
		},
		{
			name:   "same as root with empty leaf",
			libDir: "/opt/wine/lib/",
			root:   "/usr/lib",
			path:   "/usr/lib",
			want:   "/opt/wine/lib",
		},
		{
			name:     "two levels up",
			libDir:   "/opt/wine/lib64/wine",
			root:     "/usr/lib64/wine",
			path:     "/usr/bin",
			filename: "wineserver",
			want:     "/opt/wine/lib64/wine/../../bin/wineserver",
		},
		{
			name:     "unknown libdir uses fallback",
			root:     "/usr/lib",
			path:     "/usr/bin",
			fallback: "/home/me/build/loader",
			filename: "wine",
			want:     "/home/me/build/loader/wine",
		},
		{
			name:     "unknown libdir without fallback",
			root:     "/usr/lib",
			path:     "/usr/bin/",
			filename: "wine",
			want:     "/usr/bin/wine",
		},
		{
			name: "unknown libdir strips trailing slash",
			root: "/usr/lib",
			path: "/usr/lib/wine/",
			want: "/usr/lib/wine",
		},
		{
			name: "root stays root",
			root: "/usr/lib",
			path: "/",
			want: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rebase(tt.libDir, tt.root, tt.path, tt.fallback, tt.filename)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRebaseResolvesLikeMovedTree(t *testing.T) {
	got := Rebase("/opt/app/lib", "/usr/lib", "/usr/share/app/data", "", "foo.dat")
	assert.Equal(t, "/opt/app/share/app/data/foo.dat", filepath.Clean(got))
}

func TestLocatorRebase(t *testing.T) {
	l := NewLocatorFunc(func() (string, error) { return "/opt/wine/lib/wine-preloader", nil })
	assert.Equal(t, "/opt/wine/lib/../bin/wine", l.Rebase("/usr/lib", "/usr/bin", "/ignored", "wine"))

	unknown := NewLocatorFunc(func() (string, error) { return "", errors.New("unsupported") })
	assert.Equal(t, "/ignored/wine", unknown.Rebase("/usr/lib", "/usr/bin", "/ignored", "wine"))
}
