package macoserrno

import "testing"

func TestTableRoundTrip(t *testing.T) {
	for _, rec := range errnoTable {
		e, ok := New(rec.num.Number())
		if !ok {
			t.Fatalf("%s: New rejected %d", rec.name, rec.num.Number())
		}
		if e != rec.num {
			t.Errorf("%s: round trip yielded %d, expected %d", rec.name, int32(e), int32(rec.num))
		}
		if got := e.String(); got != rec.name {
			t.Errorf("%s: String() = %q", rec.name, got)
		}
		if got := e.Error(); got != rec.desc {
			t.Errorf("%s: Error() = %q, expected %q", rec.name, got, rec.desc)
		}
		name, ok := Name(e)
		if !ok || name != rec.name {
			t.Errorf("%s: Name() = (%q, %t)", rec.name, name, ok)
		}
	}
}

func TestTableShape(t *testing.T) {
	if len(errnoTable) != 106 {
		t.Fatalf("expected 106 error numbers, got %d", len(errnoTable))
	}
	if errnoTable[0].num != EPERM || errnoTable[len(errnoTable)-1].num != EQFULL {
		t.Error("table should span EPERM through EQFULL")
	}
	prev := Errno(0)
	for _, rec := range errnoTable {
		if rec.num <= prev {
			t.Errorf("%s: value %d not strictly ascending", rec.name, int32(rec.num))
		}
		prev = rec.num
	}
}

func TestKnownValues(t *testing.T) {
	type testCase struct {
		errno Errno
		value int32
	}
	// spot checks against bsd/sys/errno.h
	tests := []testCase{
		{EPERM, 1},
		{ENOENT, 2},
		{EPIPE, 32},
		{EDOM, 33},
		{EAGAIN, 35},
		{EWOULDBLOCK, 35},
		{ENOTSUP, 45},
		{EOPNOTSUPP, 102},
		{EQFULL, 106},
	}
	for _, tt := range tests {
		if tt.errno.Number() != tt.value {
			t.Errorf("expected %d, got %d", tt.value, tt.errno.Number())
		}
	}
}
