package macoserrno

// Integer is the set of integer types an [Errno] compares against.
// 8-bit types are excluded; the macOS numbering does not fit in them.
type Integer interface {
	~int16 | ~int32 | ~int64 | ~int |
		~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Equals reports whether the raw error number of e equals n.
//
// Both sides are widened before comparing, so no combination of
// signedness and width truncates or panics: a negative error number never
// equals any unsigned n, and an n beyond the int32 range never equals any
// error number.
func Equals[I Integer](e Errno, n I) bool {
	if n < 0 {
		return int64(e) == int64(n)
	}
	if e < 0 {
		return false
	}
	return uint64(e) == uint64(n)
}
