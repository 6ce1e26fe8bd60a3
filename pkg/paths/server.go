package paths

import (
	"fmt"
	"strconv"
)

const (
	configDirSuffix  = "/.wine"      // config dir relative to $HOME
	serverRootPrefix = "/tmp/.wine-" // prefix for the per-uid server root
	serverDirPrefix  = "/server-"    // prefix for the server dir
)

// ServerDirStatus says whether a server directory name could be derived.
type ServerDirStatus int

const (
	// NotYetProvisioned means the configuration root does not exist yet.
	NotYetProvisioned ServerDirStatus = iota
	// Available means Path holds the server directory.
	Available
)

func (s ServerDirStatus) String() string {
	switch s {
	case Available:
		return "available"
	default:
		return "not-yet-provisioned"
	}
}

// ServerDir is the directory holding the server socket, or the fact that it
// cannot be named until the configuration root has been created.
type ServerDir struct {
	Status ServerDirStatus
	Path   string
}

// Available reports whether Path is usable.
func (s ServerDir) Available() bool {
	return s.Status == Available
}

// ServerDirName derives the server directory from the uid and the identity of
// the configuration root: /tmp/.wine-<uid>/server-<dev>-<ino>.
func ServerDirName(uid int, id Identity) string {
	return serverDirName(uid, id, strconv.IntSize)
}

func serverDirName(uid int, id Identity, wordBits int) string {
	return fmt.Sprintf("%s%d%s%s-%s",
		serverRootPrefix, uint32(uid), serverDirPrefix,
		formatID(id.Dev, wordBits), formatID(id.Ino, wordBits))
}

// formatID writes v in lowercase hex. Values wider than the native word are
// written as the high half followed by the zero-padded low 32 bits.
func formatID(v uint64, wordBits int) string {
	if wordBits < 64 && v > uint64(1)<<wordBits-1 {
		return fmt.Sprintf("%x%08x", v>>32, uint32(v))
	}
	return strconv.FormatUint(v, 16)
}
