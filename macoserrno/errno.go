// Package macoserrno defines typed error numbers returned from macOS
// system calls.
//
// [Errno] wraps the raw error number from the xnu bsd/sys/errno.h
// numbering. One exported constant is defined per header entry, plus the
// [EWOULDBLOCK] alias. Zero is not an error number: [New] rejects it and
// nothing in this package produces it.
package macoserrno

import (
	"fmt"
	"strconv"
)

//go:generate go run github.com/ngicks/go-errno-helper/cmd/generrno

// Errno is an error number returned from a macOS system call.
//
// The zero value is not a valid error number. Use [New] for raw values
// that may be zero; converting directly with Errno(n) is the caller's
// assertion that n is non-zero.
type Errno int32

// EWOULDBLOCK is an alias for [EAGAIN] (operation would block). It is the
// only named error number sharing a value with another; name lookup for
// the shared value reports EAGAIN.
const EWOULDBLOCK = EAGAIN

// New returns the Errno for a raw error number. If errno is zero, ok is
// false and the returned Errno is invalid.
func New(errno int32) (e Errno, ok bool) {
	if errno == 0 {
		return 0, false
	}
	return Errno(errno), true
}

// Number returns the raw error number unchanged.
func (e Errno) Number() int32 {
	return int32(e)
}

// Name returns the symbolic name for e, like "ENOENT", if e is one of the
// error numbers defined by this package.
func Name(e Errno) (string, bool) {
	return errnoName(e)
}

// Error returns the description from errno.h, like "No such file or
// directory", when e is a defined error number, and "errno <n>"
// otherwise.
func (e Errno) Error() string {
	if desc, ok := errnoDesc(e); ok {
		return desc
	}
	return "errno " + strconv.FormatInt(int64(e), 10)
}

// String returns the symbolic name for defined error numbers, and
// "Errno(<n>)" for anything else.
func (e Errno) String() string {
	if name, ok := errnoName(e); ok {
		return name
	}
	return "Errno(" + strconv.FormatInt(int64(e), 10) + ")"
}

// Format implements [fmt.Formatter]. The integer verbs b, o, d, x and X
// format the raw error number exactly as an int32 would; s and v format
// as [Errno.String], q as its quoted form. Absent a Formatter, fmt would
// apply x and X to the Error() string instead of the number.
func (e Errno) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'd', 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), int32(e))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), e.String())
	}
}
