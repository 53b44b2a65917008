// Package posixcompat maps the OS-agnostic error conditions of
// [posixerrno] onto macOS error numbers.
//
// It is the opt-in bridge between the two representations: macoserrno
// itself knows nothing of the generic type, so consumers that never
// import this package link none of it.
package posixcompat

import (
	"github.com/ngicks/go-errno-helper/macoserrno"
	"github.com/ngicks/go-errno-helper/posixerrno"
)

// toMacos covers every condition posixerrno enumerates. Conditions the
// macOS numbering lacks a counterpart for would be left out rather than
// mapped approximately; as of POSIX.1-2008 there are none.
var toMacos = map[posixerrno.Errno]macoserrno.Errno{
	posixerrno.E2BIG:           macoserrno.E2BIG,
	posixerrno.EACCES:          macoserrno.EACCES,
	posixerrno.EADDRINUSE:      macoserrno.EADDRINUSE,
	posixerrno.EADDRNOTAVAIL:   macoserrno.EADDRNOTAVAIL,
	posixerrno.EAFNOSUPPORT:    macoserrno.EAFNOSUPPORT,
	posixerrno.EAGAIN:          macoserrno.EAGAIN,
	posixerrno.EALREADY:        macoserrno.EALREADY,
	posixerrno.EBADF:           macoserrno.EBADF,
	posixerrno.EBADMSG:         macoserrno.EBADMSG,
	posixerrno.EBUSY:           macoserrno.EBUSY,
	posixerrno.ECANCELED:       macoserrno.ECANCELED,
	posixerrno.ECHILD:          macoserrno.ECHILD,
	posixerrno.ECONNABORTED:    macoserrno.ECONNABORTED,
	posixerrno.ECONNREFUSED:    macoserrno.ECONNREFUSED,
	posixerrno.ECONNRESET:      macoserrno.ECONNRESET,
	posixerrno.EDEADLK:         macoserrno.EDEADLK,
	posixerrno.EDESTADDRREQ:    macoserrno.EDESTADDRREQ,
	posixerrno.EDOM:            macoserrno.EDOM,
	posixerrno.EDQUOT:          macoserrno.EDQUOT,
	posixerrno.EEXIST:          macoserrno.EEXIST,
	posixerrno.EFAULT:          macoserrno.EFAULT,
	posixerrno.EFBIG:           macoserrno.EFBIG,
	posixerrno.EHOSTUNREACH:    macoserrno.EHOSTUNREACH,
	posixerrno.EIDRM:           macoserrno.EIDRM,
	posixerrno.EILSEQ:          macoserrno.EILSEQ,
	posixerrno.EINPROGRESS:     macoserrno.EINPROGRESS,
	posixerrno.EINTR:           macoserrno.EINTR,
	posixerrno.EINVAL:          macoserrno.EINVAL,
	posixerrno.EIO:             macoserrno.EIO,
	posixerrno.EISCONN:         macoserrno.EISCONN,
	posixerrno.EISDIR:          macoserrno.EISDIR,
	posixerrno.ELOOP:           macoserrno.ELOOP,
	posixerrno.EMFILE:          macoserrno.EMFILE,
	posixerrno.EMLINK:          macoserrno.EMLINK,
	posixerrno.EMSGSIZE:        macoserrno.EMSGSIZE,
	posixerrno.EMULTIHOP:       macoserrno.EMULTIHOP,
	posixerrno.ENAMETOOLONG:    macoserrno.ENAMETOOLONG,
	posixerrno.ENETDOWN:        macoserrno.ENETDOWN,
	posixerrno.ENETRESET:       macoserrno.ENETRESET,
	posixerrno.ENETUNREACH:     macoserrno.ENETUNREACH,
	posixerrno.ENFILE:          macoserrno.ENFILE,
	posixerrno.ENOBUFS:         macoserrno.ENOBUFS,
	posixerrno.ENODATA:         macoserrno.ENODATA,
	posixerrno.ENODEV:          macoserrno.ENODEV,
	posixerrno.ENOENT:          macoserrno.ENOENT,
	posixerrno.ENOEXEC:         macoserrno.ENOEXEC,
	posixerrno.ENOLCK:          macoserrno.ENOLCK,
	posixerrno.ENOLINK:         macoserrno.ENOLINK,
	posixerrno.ENOMEM:          macoserrno.ENOMEM,
	posixerrno.ENOMSG:          macoserrno.ENOMSG,
	posixerrno.ENOPROTOOPT:     macoserrno.ENOPROTOOPT,
	posixerrno.ENOSPC:          macoserrno.ENOSPC,
	posixerrno.ENOSR:           macoserrno.ENOSR,
	posixerrno.ENOSTR:          macoserrno.ENOSTR,
	posixerrno.ENOSYS:          macoserrno.ENOSYS,
	posixerrno.ENOTCONN:        macoserrno.ENOTCONN,
	posixerrno.ENOTDIR:         macoserrno.ENOTDIR,
	posixerrno.ENOTEMPTY:       macoserrno.ENOTEMPTY,
	posixerrno.ENOTRECOVERABLE: macoserrno.ENOTRECOVERABLE,
	posixerrno.ENOTSOCK:        macoserrno.ENOTSOCK,
	posixerrno.ENOTSUP:         macoserrno.ENOTSUP,
	posixerrno.ENOTTY:          macoserrno.ENOTTY,
	posixerrno.ENXIO:           macoserrno.ENXIO,
	posixerrno.EOPNOTSUPP:      macoserrno.EOPNOTSUPP,
	posixerrno.EOVERFLOW:       macoserrno.EOVERFLOW,
	posixerrno.EOWNERDEAD:      macoserrno.EOWNERDEAD,
	posixerrno.EPERM:           macoserrno.EPERM,
	posixerrno.EPIPE:           macoserrno.EPIPE,
	posixerrno.EPROTO:          macoserrno.EPROTO,
	posixerrno.EPROTONOSUPPORT: macoserrno.EPROTONOSUPPORT,
	posixerrno.EPROTOTYPE:      macoserrno.EPROTOTYPE,
	posixerrno.ERANGE:          macoserrno.ERANGE,
	posixerrno.EROFS:           macoserrno.EROFS,
	posixerrno.ESPIPE:          macoserrno.ESPIPE,
	posixerrno.ESRCH:           macoserrno.ESRCH,
	posixerrno.ESTALE:          macoserrno.ESTALE,
	posixerrno.ETIME:           macoserrno.ETIME,
	posixerrno.ETIMEDOUT:       macoserrno.ETIMEDOUT,
	posixerrno.ETXTBSY:         macoserrno.ETXTBSY,
	posixerrno.EWOULDBLOCK:     macoserrno.EWOULDBLOCK,
	posixerrno.EXDEV:           macoserrno.EXDEV,
}

// FromPosix returns the macOS error number denoting the same condition as
// pe. ok is false when pe is outside the conditions this mapping knows,
// including the zero value.
func FromPosix(pe posixerrno.Errno) (e macoserrno.Errno, ok bool) {
	e, ok = toMacos[pe]
	return e, ok
}

// Equal reports whether the macOS error number e denotes the same
// condition as the generic code pe. A condition with no macOS counterpart
// equals nothing.
func Equal(e macoserrno.Errno, pe posixerrno.Errno) bool {
	m, ok := FromPosix(pe)
	return ok && m == e
}
