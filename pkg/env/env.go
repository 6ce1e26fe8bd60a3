// Package env binds the process environment variables the runtime reads.
package env

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Env holds the environment that drives path resolution.
// Empty values are treated as unset.
type Env struct {
	// Home overrides the account home directory.
	Home string `envconfig:"HOME"`
	// Prefix names the configuration root directly.
	Prefix string `envconfig:"WINEPREFIX"`
	// User is consulted when the account database has no entry for the uid.
	User string `envconfig:"USER"`
	// Path is the executable search path.
	Path string `envconfig:"PATH"`
}

// Process loads Env from the current process environment.
func Process() (Env, error) {
	var e Env
	if err := envconfig.Process("", &e); err != nil {
		return Env{}, fmt.Errorf("failed to load environment: %w", err)
	}
	return e, nil
}

// Lookup returns the value of a variable whose name is only known at run
// time, such as a per-binary location override. Empty values count as unset.
func Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
