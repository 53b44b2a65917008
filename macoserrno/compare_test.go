package macoserrno

import (
	"math"
	"testing"
)

func TestEquals(t *testing.T) {
	type testCase struct {
		name     string
		expected bool
		got      bool
	}
	neg, _ := New(-1)
	tests := []testCase{
		{"int16 match", true, Equals(EAGAIN, int16(35))},
		{"int32 match", true, Equals(EAGAIN, int32(35))},
		{"int64 match", true, Equals(EAGAIN, int64(35))},
		{"int match", true, Equals(EAGAIN, int(35))},
		{"uint16 match", true, Equals(EAGAIN, uint16(35))},
		{"uint32 match", true, Equals(EAGAIN, uint32(35))},
		{"uint64 match", true, Equals(EAGAIN, uint64(35))},
		{"uint match", true, Equals(EAGAIN, uint(35))},
		{"uintptr match", true, Equals(EAGAIN, uintptr(35))},

		{"int16 mismatch", false, Equals(EAGAIN, int16(36))},
		{"int64 mismatch", false, Equals(EAGAIN, int64(36))},
		{"uint64 mismatch", false, Equals(EAGAIN, uint64(36))},

		{"beyond int32 range", false, Equals(EPERM, int64(1)<<40)},
		{"uint64 max", false, Equals(EPERM, uint64(math.MaxUint64))},
		{"uint32 max", false, Equals(EPERM, uint32(math.MaxUint32))},
		{"negative literal", false, Equals(EPERM, int32(-1))},
		{"negative int16", false, Equals(EPERM, int16(-1))},

		{"negative errno vs unsigned", false, Equals(neg, uint64(math.MaxUint64))},
		{"negative errno vs uint", false, Equals(neg, uint(1))},
		{"negative errno vs matching signed", true, Equals(neg, int64(-1))},
		{"negative errno vs matching int16", true, Equals(neg, int16(-1))},
		{"negative errno vs wider negative", false, Equals(neg, int64(math.MinInt64))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %t, got %t", tt.expected, tt.got)
			}
		})
	}
}

// The alias and its primary agree with the raw number across every
// supported comparison type.
func TestEqualsAlias(t *testing.T) {
	for name, got := range map[string]bool{
		"int16":   Equals(EWOULDBLOCK, int16(35)),
		"int32":   Equals(EWOULDBLOCK, int32(35)),
		"int64":   Equals(EWOULDBLOCK, int64(35)),
		"int":     Equals(EWOULDBLOCK, int(35)),
		"uint16":  Equals(EWOULDBLOCK, uint16(35)),
		"uint32":  Equals(EWOULDBLOCK, uint32(35)),
		"uint64":  Equals(EWOULDBLOCK, uint64(35)),
		"uint":    Equals(EWOULDBLOCK, uint(35)),
		"uintptr": Equals(EWOULDBLOCK, uintptr(35)),
	} {
		if !got {
			t.Errorf("EWOULDBLOCK != 35 as %s", name)
		}
	}
}

// Defined integer types satisfy the constraint too.
func TestEqualsDefinedTypes(t *testing.T) {
	type pid int32
	type size uint64
	if !Equals(EAGAIN, pid(35)) {
		t.Error("defined int32 type should compare equal")
	}
	if !Equals(EAGAIN, size(35)) {
		t.Error("defined uint64 type should compare equal")
	}
}
