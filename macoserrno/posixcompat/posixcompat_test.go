package posixcompat

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/ngicks/go-errno-helper/macoserrno"
	"github.com/ngicks/go-errno-helper/posixerrno"
)

func TestFromPosix(t *testing.T) {
	e, ok := FromPosix(posixerrno.ENOENT)
	assert.Assert(t, ok)
	assert.Equal(t, e, macoserrno.ENOENT)
	assert.Equal(t, e.Number(), int32(2))

	// The generic EWOULDBLOCK condition lands on the macOS alias, which
	// shares EAGAIN's number.
	e, ok = FromPosix(posixerrno.EWOULDBLOCK)
	assert.Assert(t, ok)
	assert.Equal(t, e, macoserrno.EAGAIN)

	// Values outside the enumeration have no mapping.
	_, ok = FromPosix(posixerrno.Errno(0))
	assert.Assert(t, !ok)
	_, ok = FromPosix(posixerrno.Errno(999))
	assert.Assert(t, !ok)
}

func TestFromPosixCoversEnumeration(t *testing.T) {
	for pe := posixerrno.E2BIG; pe <= posixerrno.EXDEV; pe++ {
		e, ok := FromPosix(pe)
		assert.Assert(t, ok, "condition %v has no macOS mapping", pe)
		// Names agree except for the alias, whose macOS rendering is the
		// primary EAGAIN.
		if pe != posixerrno.EWOULDBLOCK {
			assert.Equal(t, e.String(), pe.String())
		}
	}
}

func TestEqual(t *testing.T) {
	assert.Assert(t, Equal(macoserrno.ENOENT, posixerrno.ENOENT))
	assert.Assert(t, Equal(macoserrno.EAGAIN, posixerrno.EWOULDBLOCK))
	assert.Assert(t, Equal(macoserrno.EWOULDBLOCK, posixerrno.EAGAIN))

	assert.Assert(t, !Equal(macoserrno.ENOENT, posixerrno.EPERM))
	// No mapping is never equal, whatever the macOS side holds.
	assert.Assert(t, !Equal(macoserrno.ENOENT, posixerrno.Errno(999)))
	assert.Assert(t, !Equal(macoserrno.Errno(999), posixerrno.Errno(999)))
}
