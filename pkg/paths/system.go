package paths

// Identity is the device and inode pair of a directory. It names the server
// directory and is never compared for any other purpose.
type Identity struct {
	Dev uint64
	Ino uint64
}

// FileStat is the part of a stat result path resolution needs.
type FileStat struct {
	IsDir    bool
	Identity Identity
}

// Account is an entry from the system account database.
type Account struct {
	Name    string
	HomeDir string
}

// System is the set of process and filesystem facts resolution reads.
// Stat errors must satisfy os.IsNotExist for a missing path.
type System interface {
	Getuid() int
	LookupUser(uid int) (Account, error)
	Stat(path string) (FileStat, error)
}
