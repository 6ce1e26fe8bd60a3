package errors

import (
	"fmt"
	"strings"
)

// NoUser creates an error for a process whose user name cannot be determined
func NoUser() *WineError {
	return New(ErrCodeNoUser, "cannot determine your user name, set the USER environment variable")
}

// NoHome creates an error for a missing home directory
func NoHome() *WineError {
	return New(ErrCodeNoHome, "could not determine your home directory")
}

// PrefixNotAbsolute creates an error for a relative WINEPREFIX
func PrefixNotAbsolute(prefix string) *WineError {
	return New(ErrCodeNotAbsolute,
		fmt.Sprintf("invalid directory %s in WINEPREFIX: not an absolute path", prefix)).
		WithDetail("path", prefix)
}

// HomeNotAbsolute creates an error for a relative home directory
func HomeNotAbsolute(home string) *WineError {
	return New(ErrCodeNotAbsolute,
		fmt.Sprintf("your home directory %s is not an absolute path", home)).
		WithDetail("path", home)
}

// PrefixNotFound creates an error for a WINEPREFIX naming a missing directory
func PrefixNotFound(dir string) *WineError {
	return New(ErrCodePrefixNotFound,
		fmt.Sprintf("the '%s' directory specified in WINEPREFIX doesn't exist.\n"+
			"You may want to create it by running 'wineprefixcreate'.", dir)).
		WithDetail("path", dir)
}

// NotDirectory creates an error for a config root that is not a directory
func NotDirectory(dir string) *WineError {
	return New(ErrCodeNotDirectory, fmt.Sprintf("%s is not a directory", dir)).
		WithDetail("path", dir)
}

// StatFailed creates an error for a config root that exists but cannot be inspected
func StatFailed(dir string, fromPrefix bool, err error) *WineError {
	msg := fmt.Sprintf("cannot open %s", dir)
	if fromPrefix {
		msg += " as specified in WINEPREFIX"
	}
	return Wrap(err, ErrCodeStatFailed, msg).
		WithDetail("path", dir)
}

// NoLoaderName creates an error for a default-loader launch before the invocation name is known
func NoLoaderName() *WineError {
	return New(ErrCodeNoLoaderName, "no binary name given and the invocation name is unknown")
}

// LaunchFailed creates an error listing every path that failed to start
func LaunchFailed(name string, tried []string, last error) *WineError {
	return Wrap(last, ErrCodeLaunchFailed,
		fmt.Sprintf("could not exec %s (tried %s)", name, strings.Join(tried, ", "))).
		WithDetail("binary", name).
		WithDetail("tried", tried)
}
