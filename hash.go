package fsm

import (
	"fmt"
	"hash/maphash"
)

// seed is fixed per process; hashes are only comparable within one run.
var seed = maphash.MakeSeed()

// hashValue hashes an arbitrary value by its type and rendered form, so
// equal values hash equal no matter how they were built.
func hashValue(v any) uint64 {
	return maphash.String(seed, fmt.Sprintf("%T %#v", v, v))
}

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// mix folds hashes together order-dependently, FNV style.
func mix(hashes ...uint64) uint64 {
	h := uint64(offset64)
	for _, v := range hashes {
		for shift := 0; shift < 64; shift += 8 {
			h ^= (v >> shift) & 0xff
			h *= prime64
		}
	}

	return h
}
