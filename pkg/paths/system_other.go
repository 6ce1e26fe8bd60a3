//go:build !unix

package paths

import (
	"os"
	"os/user"
	"strconv"
)

type otherSystem struct{}

// DefaultSystem returns the System backed by the running process. Platforms
// without device and inode numbers report a zero Identity.
func DefaultSystem() System {
	return otherSystem{}
}

func (otherSystem) Getuid() int {
	return os.Getuid()
}

func (otherSystem) LookupUser(uid int) (Account, error) {
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return Account{}, err
	}
	return Account{Name: u.Username, HomeDir: u.HomeDir}, nil
}

func (otherSystem) Stat(path string) (FileStat, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileStat{}, err
	}
	return FileStat{IsDir: fi.IsDir()}, nil
}
