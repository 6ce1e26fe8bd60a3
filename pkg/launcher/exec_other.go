//go:build !unix

package launcher

import (
	"fmt"
	"runtime"
)

type unsupportedExecer struct{}

// SystemExecer returns an Execer that always fails: this platform cannot
// replace the process image.
func SystemExecer() Execer {
	return unsupportedExecer{}
}

func (unsupportedExecer) Exec(path string, argv []string, envv []string) error {
	return fmt.Errorf("exec %s: not supported on %s", path, runtime.GOOS)
}
