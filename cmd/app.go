package cmd

import (
	"sync"

	"github.com/grovetools/wineconf/pkg/argv0"
	"github.com/grovetools/wineconf/pkg/env"
	"github.com/grovetools/wineconf/pkg/launcher"
	"github.com/grovetools/wineconf/pkg/libdir"
	"github.com/grovetools/wineconf/pkg/paths"
)

// App carries the process inputs shared by every subcommand. The path
// context is resolved on first use so that commands which do not need it,
// such as version, work in a broken environment.
type App struct {
	Env     env.Env
	System  paths.System
	Origin  argv0.Origin
	Locator *libdir.Locator
	// Execer overrides how the launcher replaces the process image.
	Execer launcher.Execer

	once sync.Once
	ctx  *paths.Context
	err  error
}

// NewApp builds an App from the running process.
func NewApp() (*App, error) {
	e, err := env.Process()
	if err != nil {
		return nil, err
	}
	return &App{
		Env:     e,
		System:  paths.DefaultSystem(),
		Origin:  argv0.FromProcess(),
		Locator: libdir.NewLocator(),
	}, nil
}

// Context resolves the path context once and returns the same result on
// every later call.
func (a *App) Context() (*paths.Context, error) {
	a.once.Do(func() {
		opts := []paths.Option{}
		if a.Locator != nil {
			opts = append(opts, paths.WithLocator(a.Locator))
		}
		a.ctx, a.err = paths.Resolve(a.Env, a.System, opts...)
	})
	return a.ctx, a.err
}

// Launcher returns a launcher bound to the App's origin and environment.
func (a *App) Launcher() *launcher.Launcher {
	l := launcher.New(a.Origin, a.Locator, a.Env)
	if a.Execer != nil {
		l.Execer = a.Execer
	}
	return l
}
