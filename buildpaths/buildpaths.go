// Package buildpaths holds the install layout fixed when the binary was built.
//
// The values are only a reference layout: at run time they are rebased onto
// the directory that actually holds the running binary, so a packaged tree can
// be moved as a whole.
package buildpaths

// These variables are populated by the Go linker during the build process,
// e.g. -ldflags "-X github.com/grovetools/wineconf/buildpaths.LibDir=/usr/lib".
var (
	LibDir = "/usr/local/lib"      // Directory the runtime image is installed in
	BinDir = "/usr/local/bin"      // Directory holding the loader and helper binaries
	DllDir = "/usr/local/lib/wine" // Default DLL directory
)

// Layout is a snapshot of the build-time install directories.
type Layout struct {
	LibDir string `json:"lib_dir" yaml:"lib_dir" toml:"lib_dir"`
	BinDir string `json:"bin_dir" yaml:"bin_dir" toml:"bin_dir"`
	DllDir string `json:"dll_dir" yaml:"dll_dir" toml:"dll_dir"`
}

// Get returns the layout baked into this binary.
func Get() Layout {
	return Layout{
		LibDir: LibDir,
		BinDir: BinDir,
		DllDir: DllDir,
	}
}
