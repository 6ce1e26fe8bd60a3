// Package launcher starts the runtime's helper binaries by trying a fixed
// chain of candidate locations until one of them execs.
package launcher

import (
	"iter"
	"os"
	"strings"

	"github.com/grovetools/wineconf/buildpaths"
	"github.com/grovetools/wineconf/errors"
	"github.com/grovetools/wineconf/logging"
	"github.com/grovetools/wineconf/pkg/argv0"
	"github.com/grovetools/wineconf/pkg/env"
	"github.com/grovetools/wineconf/pkg/libdir"
	"github.com/sirupsen/logrus"
)

// DefaultWrapper is exec'd in front of the default loader.
const DefaultWrapper = "wine-preloader"

// Execer replaces the running process image. A successful Exec never
// returns; an error means the process is unchanged.
type Execer interface {
	Exec(path string, argv []string, envv []string) error
}

// Step identifies where a candidate path came from.
type Step int

const (
	// StepLibDir is the build binary directory rebased onto the running image.
	StepLibDir Step = iota
	// StepEnvOverride is the exact path held in the caller's variable.
	StepEnvOverride
	// StepSearchPath is one PATH entry.
	StepSearchPath
	// StepBuildDir is the build binary directory as configured.
	StepBuildDir
)

func (s Step) String() string {
	switch s {
	case StepLibDir:
		return "libdir"
	case StepEnvOverride:
		return "env"
	case StepSearchPath:
		return "path"
	case StepBuildDir:
		return "bindir"
	default:
		return "unknown"
	}
}

// Candidate is one location to try.
type Candidate struct {
	Step Step
	Path string
}

// Launcher resolves and execs helper binaries.
type Launcher struct {
	Origin     argv0.Origin
	Locator    *libdir.Locator
	Execer     Execer
	Wrapper    string
	SearchPath string
	Environ    []string
	Lookup     func(name string) (string, bool)

	logger *logrus.Entry
}

// New returns a Launcher that execs through the operating system.
func New(origin argv0.Origin, locator *libdir.Locator, e env.Env) *Launcher {
	return &Launcher{
		Origin:     origin,
		Locator:    locator,
		Execer:     SystemExecer(),
		Wrapper:    DefaultWrapper,
		SearchPath: e.Path,
		Environ:    os.Environ(),
		Lookup:     env.Lookup,
		logger:     logging.NewLogger("launcher"),
	}
}

// Candidates yields, lazily and in order: the binary directory rebased onto
// the running image (falling back to the invocation directory), the path in
// envVar, each PATH entry, and finally the build-time binary directory.
func (l *Launcher) Candidates(name, envVar string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		var libDir string
		if l.Locator != nil {
			libDir, _ = l.Locator.Dir()
		}
		rebased := libdir.Rebase(libDir, buildpaths.LibDir, buildpaths.BinDir, l.Origin.Dir, name)
		if !yield(Candidate{Step: StepLibDir, Path: rebased}) {
			return
		}

		if envVar != "" && l.Lookup != nil {
			if p, ok := l.Lookup(envVar); ok {
				if !yield(Candidate{Step: StepEnvOverride, Path: p}) {
					return
				}
			}
		}

		for _, dir := range strings.Split(l.SearchPath, ":") {
			if dir == "" {
				continue
			}
			if !yield(Candidate{Step: StepSearchPath, Path: dir + "/" + name}) {
				return
			}
		}

		yield(Candidate{Step: StepBuildDir, Path: buildpaths.BinDir + "/" + name})
	}
}

// Exec runs the helper called name with argv, whose first slot is overwritten
// with each candidate path. An empty name runs the default loader, the binary
// the process was invoked as, and puts the wrapper in front of every
// candidate. envVar names an environment variable that may hold an exact path.
//
// On success the process image is replaced and Exec does not return. When
// every candidate fails Exec returns a LAUNCH_FAILED error; it never exits.
func (l *Launcher) Exec(name string, argv []string, envVar string) error {
	useWrapper := false
	if name == "" {
		if l.Origin.Name == "" {
			return errors.NoLoaderName()
		}
		name = l.Origin.Name
		useWrapper = l.Wrapper != ""
	}
	if len(argv) == 0 {
		argv = []string{""}
	}

	var tried []string
	var last error
	for cand := range l.Candidates(name, envVar) {
		argv[0] = cand.Path

		if useWrapper {
			wrapper := wrapperPath(cand.Path, l.Wrapper)
			wrappedArgv := append([]string{wrapper}, argv...)
			tried = append(tried, wrapper)
			if last = l.Execer.Exec(wrapper, wrappedArgv, l.Environ); last == nil {
				return nil
			}
			l.debug(cand, wrapper, last)
		}

		tried = append(tried, cand.Path)
		if last = l.Execer.Exec(cand.Path, argv, l.Environ); last == nil {
			return nil
		}
		l.debug(cand, cand.Path, last)
	}
	return errors.LaunchFailed(name, tried, last)
}

func (l *Launcher) debug(cand Candidate, path string, err error) {
	if l.logger == nil {
		return
	}
	l.logger.WithFields(logrus.Fields{
		"step": cand.Step.String(),
		"path": path,
	}).Debugf("exec failed: %v", err)
}

// wrapperPath replaces the last element of path with wrapper.
func wrapperPath(path, wrapper string) string {
	idx := strings.LastIndexByte(path, '/')
	return path[:idx+1] + wrapper
}
