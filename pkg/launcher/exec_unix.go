//go:build unix

package launcher

import (
	"golang.org/x/sys/unix"
)

type unixExecer struct{}

// SystemExecer returns the Execer backed by execve(2).
func SystemExecer() Execer {
	return unixExecer{}
}

func (unixExecer) Exec(path string, argv []string, envv []string) error {
	return unix.Exec(path, argv, envv)
}
