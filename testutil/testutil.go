package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/grovetools/wineconf/pkg/paths"
	"github.com/stretchr/testify/require"
)

// FakeSystem is an in-memory paths.System that counts filesystem probes.
type FakeSystem struct {
	UID        int
	Account    paths.Account
	AccountErr error

	mu        sync.Mutex
	entries   map[string]paths.FileStat
	statErrs  map[string]error
	statCalls int
}

// NewFakeSystem returns a FakeSystem for uid whose account lookup succeeds.
func NewFakeSystem(uid int, name, home string) *FakeSystem {
	return &FakeSystem{
		UID:     uid,
		Account: paths.Account{Name: name, HomeDir: home},
	}
}

// AddDir makes path an existing directory with the given identity.
func (f *FakeSystem) AddDir(path string, dev, ino uint64) {
	f.add(path, paths.FileStat{IsDir: true, Identity: paths.Identity{Dev: dev, Ino: ino}})
}

// AddFile makes path an existing regular file.
func (f *FakeSystem) AddFile(path string) {
	f.add(path, paths.FileStat{})
}

// FailStat makes every stat of path return err.
func (f *FakeSystem) FailStat(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statErrs == nil {
		f.statErrs = make(map[string]error)
	}
	f.statErrs[path] = err
}

func (f *FakeSystem) add(path string, st paths.FileStat) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries == nil {
		f.entries = make(map[string]paths.FileStat)
	}
	f.entries[path] = st
}

// StatCalls returns how many times Stat has been called.
func (f *FakeSystem) StatCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statCalls
}

func (f *FakeSystem) Getuid() int {
	return f.UID
}

func (f *FakeSystem) LookupUser(uid int) (paths.Account, error) {
	if f.AccountErr != nil {
		return paths.Account{}, f.AccountErr
	}
	return f.Account, nil
}

func (f *FakeSystem) Stat(path string) (paths.FileStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statCalls++
	if err, ok := f.statErrs[path]; ok {
		return paths.FileStat{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	if st, ok := f.entries[path]; ok {
		return st, nil
	}
	return paths.FileStat{}, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// ExecCall is one recorded exec attempt.
type ExecCall struct {
	Path string
	Argv []string
}

// RecordingExecer records exec attempts. An attempt succeeds, i.e. returns
// nil as if the image had been replaced, when its path is in Succeed.
type RecordingExecer struct {
	Succeed map[string]bool
	Calls   []ExecCall
}

// Exec records the attempt and fails unless path is marked to succeed.
func (r *RecordingExecer) Exec(path string, argv []string, envv []string) error {
	r.Calls = append(r.Calls, ExecCall{Path: path, Argv: append([]string(nil), argv...)})
	if r.Succeed[path] {
		return nil
	}
	return &fs.PathError{Op: "exec", Path: path, Err: fs.ErrNotExist}
}

// Paths returns the attempted paths in order.
func (r *RecordingExecer) Paths() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, c.Path)
	}
	return out
}

// WriteScript creates a shell script at dir/name with the given mode and
// returns its path.
func WriteScript(t *testing.T, dir, name, script string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := fmt.Sprintf("#!/bin/sh\n%s\n", script)
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	// WriteFile applies the umask; set the mode exactly.
	require.NoError(t, os.Chmod(path, mode))
	return path
}
