//go:build unix

package paths

import (
	"io/fs"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

type unixSystem struct{}

// DefaultSystem returns the System backed by the running process.
func DefaultSystem() System {
	return unixSystem{}
}

func (unixSystem) Getuid() int {
	return unix.Getuid()
}

func (unixSystem) LookupUser(uid int) (Account, error) {
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return Account{}, err
	}
	return Account{Name: u.Username, HomeDir: u.HomeDir}, nil
}

func (unixSystem) Stat(path string) (FileStat, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return FileStat{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return FileStat{
		IsDir: st.Mode&unix.S_IFMT == unix.S_IFDIR,
		Identity: Identity{
			Dev: uint64(st.Dev),
			Ino: uint64(st.Ino),
		},
	}, nil
}
