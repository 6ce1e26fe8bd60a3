// Package libdir locates the directory holding the running image and rebases
// build-time install paths onto it.
package libdir

import (
	"os"
	"strings"
	"sync"

	"github.com/grovetools/wineconf/pkg/relpath"
)

// Locator discovers the directory of the running image once and caches the
// answer, including an unknown answer.
type Locator struct {
	executable func() (string, error)

	once sync.Once
	dir  string
	ok   bool
}

// NewLocator returns a Locator backed by os.Executable.
func NewLocator() *Locator {
	return &Locator{executable: os.Executable}
}

// NewLocatorFunc returns a Locator that asks fn for the image path.
func NewLocatorFunc(fn func() (string, error)) *Locator {
	return &Locator{executable: fn}
}

// Dir returns the absolute directory holding the running image. ok is false
// when the platform cannot report the image path or reports a relative one.
func (l *Locator) Dir() (dir string, ok bool) {
	l.once.Do(func() {
		l.dir, l.ok = imageDir(l.executable)
	})
	return l.dir, l.ok
}

func imageDir(executable func() (string, error)) (string, bool) {
	if executable == nil {
		return "", false
	}
	exe, err := executable()
	if err != nil || !strings.HasPrefix(exe, "/") {
		return "", false
	}
	idx := strings.LastIndexByte(exe, '/')
	if idx == 0 {
		return "/", true
	}
	return exe[:idx], true
}

// Rebase relocates path, fixed at build time under buildRoot, onto the
// directory of the running image. See the package-level Rebase.
func (l *Locator) Rebase(buildRoot, path, fallback, filename string) string {
	dir, _ := l.Dir()
	return Rebase(dir, buildRoot, path, fallback, filename)
}

// Rebase computes where path lives when the tree built under buildRoot has
// been installed so that buildRoot is now libDir.
//
// With an empty libDir it uses fallback, or path itself when fallback is empty.
// filename is appended with a single separator; an empty filename strips one
// trailing separator instead. The result is not cleaned: ".." components
// after libDir are left for the kernel to resolve through any symlinks.
func Rebase(libDir, buildRoot, path, fallback, filename string) string {
	var b strings.Builder

	if libDir != "" {
		rest, dotdots := relpath.Resolve(buildRoot, path)
		b.WriteString(libDir)
		if !strings.HasSuffix(libDir, "/") {
			b.WriteByte('/')
		}
		for ; dotdots > 0; dotdots-- {
			b.WriteString("../")
		}
		b.WriteString(rest)
	} else {
		if fallback != "" {
			path = fallback
		}
		b.WriteString(path)
	}

	ret := b.String()
	if filename != "" {
		if !strings.HasSuffix(ret, "/") {
			ret += "/"
		}
		return ret + filename
	}
	if len(ret) > 1 && strings.HasSuffix(ret, "/") {
		ret = ret[:len(ret)-1]
	}
	return ret
}
