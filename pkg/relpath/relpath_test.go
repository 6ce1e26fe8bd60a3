package relpath

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		from        string
		dest        string
		wantRest    string
		wantDotdots int
	}{
		{"identical", "/a/b", "/a/b", "", 0},
		{"root to root", "/", "/", "", 0},
		{"nested", "/a/b", "/a/b/c/d", "c/d", 0},
		{"sibling", "/a/b/c", "/a/x", "x", 2},
		{"disjoint", "/usr/lib", "/opt/app", "opt/app", 2},
		{"from root", "/", "/usr/share", "usr/share", 0},
		{"to root", "/usr/lib/wine", "/", "", 3},
		{"repeated separators", "//usr///lib/", "/usr//share/wine", "share/wine", 1},
		{"segment prefix is not a match", "/a/bc", "/a/b", "b", 1},
		{"dest segment longer", "/a/b", "/a/bc/d", "bc/d", 1},
		{"trailing slash on dest", "/usr/lib", "/usr/lib/", "", 0},
		{"install layout", "/usr/lib", "/usr/share/app/data", "share/app/data", 1},
		{"bin dir", "/usr/local/lib", "/usr/local/bin", "bin", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, dotdots := Resolve(tt.from, tt.dest)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantDotdots, dotdots)
		})
	}
}

func TestResolveRoundTrip(t *testing.T) {
	paths := []string{
		"/",
		"/a",
		"/a/b",
		"/a/b/c",
		"/a/x",
		"/a/bc",
		"/usr/lib",
		"/usr/lib/wine",
		"/usr/share/wine/fonts",
		"/opt/wine-stable/bin",
	}

	for _, from := range paths {
		for _, dest := range paths {
			rest, dotdots := Resolve(from, dest)
			joined := from + "/" + strings.Repeat("../", dotdots) + rest
			assert.Equal(t, path.Clean(dest), path.Clean(joined), "from=%s dest=%s", from, dest)
		}
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, ".", Join("/a/b", "/a/b"))
	assert.Equal(t, "c/d", Join("/a/b", "/a/b/c/d"))
	assert.Equal(t, "../../x", Join("/a/b/c", "/a/x"))
	assert.Equal(t, "../..", Join("/a/b", "/"))
}
