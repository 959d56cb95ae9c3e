package jscalar

import "unsafe"

// b2s converts a byte slice to a string
// without copying its content.
//
//go:nosplit
func b2s(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
