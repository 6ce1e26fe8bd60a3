// Package paths resolves the per-user locations the runtime works in.
//
// Resolution order for the configuration root:
// 1. WINEPREFIX, which must name an existing directory
// 2. $HOME/.wine (home from HOME, else the account database), which may not
// exist yet
//
// The server directory is named from the device and inode of the
// configuration root, so aliased paths to the same prefix share one server.
package paths

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/grovetools/wineconf/buildpaths"
	"github.com/grovetools/wineconf/errors"
	"github.com/grovetools/wineconf/logging"
	"github.com/grovetools/wineconf/pkg/env"
	"github.com/grovetools/wineconf/pkg/libdir"
	"github.com/sirupsen/logrus"
)

// Context holds the locations resolved for one process. It is built once by
// Resolve and shared by reference; only the server directory may be filled in
// later, once the configuration root has been created.
type Context struct {
	sys     System
	env     env.Env
	locator *libdir.Locator
	logger  *logrus.Entry

	uid        int
	userName   string
	configDir  string
	fromPrefix bool

	mu        sync.Mutex
	serverDir string

	dllOnce sync.Once
	dllDir  string
}

// Option configures Resolve.
type Option func(*Context)

// WithLocator sets the locator used to find the running image.
func WithLocator(l *libdir.Locator) Option {
	return func(c *Context) {
		c.locator = l
	}
}

// Resolve determines the user name and configuration root. Every error it
// returns is fatal (see errors.IsFatal): the environment is unusable.
func Resolve(e env.Env, sys System, opts ...Option) (*Context, error) {
	c := &Context{
		sys:    sys,
		env:    e,
		logger: logging.NewLogger("paths"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.locator == nil {
		c.locator = libdir.NewLocator()
	}

	c.uid = sys.Getuid()
	account, accountErr := sys.LookupUser(c.uid)
	switch {
	case accountErr == nil && account.Name != "":
		c.userName = account.Name
	case e.User != "":
		c.userName = e.User
	case c.uid >= 0:
		c.userName = strconv.Itoa(c.uid)
	default:
		return nil, errors.NoUser()
	}

	var st FileStat
	var err error
	if e.Prefix != "" {
		c.configDir = trimTrailingSlashes(e.Prefix)
		c.fromPrefix = true
		if !strings.HasPrefix(c.configDir, "/") {
			return nil, errors.PrefixNotAbsolute(e.Prefix)
		}
		st, err = sys.Stat(c.configDir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.PrefixNotFound(c.configDir)
			}
			return nil, errors.StatFailed(c.configDir, true, err)
		}
	} else {
		home := e.Home
		if home == "" && accountErr == nil {
			home = account.HomeDir
		}
		if home == "" {
			return nil, errors.NoHome()
		}
		if !strings.HasPrefix(home, "/") {
			return nil, errors.HomeNotAbsolute(home)
		}
		c.configDir = strings.TrimRight(home, "/") + configDirSuffix
		st, err = sys.Stat(c.configDir)
		if err != nil {
			if os.IsNotExist(err) {
				c.logger.WithField("config_dir", c.configDir).Debug("Configuration root not created yet")
				return c, nil
			}
			return nil, errors.StatFailed(c.configDir, false, err)
		}
	}

	if !st.IsDir {
		return nil, errors.NotDirectory(c.configDir)
	}
	c.serverDir = ServerDirName(c.uid, st.Identity)
	c.logger.WithFields(logrus.Fields{
		"config_dir": c.configDir,
		"server_dir": c.serverDir,
	}).Debug("Resolved configuration root")
	return c, nil
}

// ConfigDir returns the configuration root ($WINEPREFIX or $HOME/.wine).
func (c *Context) ConfigDir() string {
	return c.configDir
}

// FromPrefix reports whether the configuration root came from WINEPREFIX.
func (c *Context) FromPrefix() bool {
	return c.fromPrefix
}

// UserName returns the name of the invoking user.
func (c *Context) UserName() string {
	return c.userName
}

// UID returns the numeric id of the invoking user.
func (c *Context) UID() int {
	return c.uid
}

// Env returns the environment the context was resolved from.
func (c *Context) Env() env.Env {
	return c.env
}

// Locator returns the locator for the running image.
func (c *Context) Locator() *libdir.Locator {
	return c.locator
}

// ServerDir returns the directory holding the server socket.
//
// If the configuration root did not exist when the context was resolved, it
// is probed again on every call until it does; a missing root gives
// NotYetProvisioned and a nil error. Any other probe failure is returned as a
// STAT_FAILED error instead of being reported as not provisioned.
func (c *Context) ServerDir() (ServerDir, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.serverDir != "" {
		return ServerDir{Status: Available, Path: c.serverDir}, nil
	}

	st, err := c.sys.Stat(c.configDir)
	if err != nil {
		if os.IsNotExist(err) {
			return ServerDir{Status: NotYetProvisioned}, nil
		}
		return ServerDir{}, errors.StatFailed(c.configDir, c.fromPrefix, err)
	}
	if !st.IsDir {
		return ServerDir{}, errors.NotDirectory(c.configDir)
	}

	c.serverDir = ServerDirName(c.uid, st.Identity)
	c.logger.WithField("server_dir", c.serverDir).Debug("Configuration root provisioned")
	return ServerDir{Status: Available, Path: c.serverDir}, nil
}

// DllDir returns the default DLL directory, rebased onto the directory of the
// running image.
func (c *Context) DllDir() string {
	c.dllOnce.Do(func() {
		c.dllDir = c.locator.Rebase(buildpaths.LibDir, buildpaths.DllDir, "", "")
	})
	return c.dllDir
}

// trimTrailingSlashes removes trailing separators, keeping a lone "/".
func trimTrailingSlashes(p string) string {
	for len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	return p
}
