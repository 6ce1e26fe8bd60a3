// Package version reports how this wineconf binary was built, including the
// install layout it rebases its paths from.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/grovetools/wineconf/buildpaths"
)

// Set with -ldflags "-X github.com/grovetools/wineconf/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string            `json:"version"`
	Commit    string            `json:"commit"`
	Branch    string            `json:"branch"`
	BuildDate string            `json:"buildDate"`
	GoVersion string            `json:"goVersion"`
	Platform  string            `json:"platform"`
	Layout    buildpaths.Layout `json:"layout"`
}

// GetInfo collects the link-time values, the toolchain and the install layout.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Layout:    buildpaths.Get(),
	}
}

// String renders one aligned "key: value" line per field.
func (i Info) String() string {
	rows := [][2]string{
		{"Version", i.Version},
		{"Commit", i.Commit},
		{"Branch", i.Branch},
		{"Build Date", i.BuildDate},
		{"Go Version", i.GoVersion},
		{"Platform", i.Platform},
		{"Lib Dir", i.Layout.LibDir},
		{"Bin Dir", i.Layout.BinDir},
		{"DLL Dir", i.Layout.DllDir},
	}

	var b strings.Builder
	for n, row := range rows {
		if n > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-11s %s", row[0]+":", row[1])
	}
	return b.String()
}
