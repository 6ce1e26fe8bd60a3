// Package argv0 records where the process was invoked from.
package argv0

import (
	"os"
	"strings"
)

// Origin is the directory and base name of the invocation path. Dir is
// absolute, or empty when the invocation had no directory part.
type Origin struct {
	Dir  string
	Name string
}

// HasDir reports whether the invocation directory is known.
func (o Origin) HasDir() bool {
	return o.Dir != ""
}

// New splits arg0 into its directory and base name. A relative directory is
// made absolute against getwd; if the working directory cannot be read the
// directory stays unknown. An arg0 without any "/" leaves the directory
// unknown rather than assuming the working directory.
func New(arg0 string, getwd func() (string, error)) Origin {
	idx := strings.LastIndexByte(arg0, '/')
	if idx < 0 {
		return Origin{Name: arg0}
	}

	o := Origin{Name: arg0[idx+1:]}
	switch {
	case idx == 0:
		o.Dir = "/"
	case arg0[0] == '/':
		o.Dir = arg0[:idx]
	default:
		if getwd == nil {
			return o
		}
		cwd, err := getwd()
		if err != nil || cwd == "" {
			return o
		}
		o.Dir = strings.TrimRight(cwd, "/") + "/" + arg0[:idx]
	}
	return o
}

// FromProcess records the origin of the running process from os.Args[0].
func FromProcess() Origin {
	if len(os.Args) == 0 {
		return Origin{}
	}
	return New(os.Args[0], os.Getwd)
}
