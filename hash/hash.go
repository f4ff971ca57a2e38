// Package hash contains some common hash functions suitable for hashing
// values built out of spans.
package hash

import "golang.org/x/exp/constraints"

const DJBInit uint32 = 5381

func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// Num hashes an integer of any width. Values that compare equal hash equal;
// negative values hash by their two's-complement representation.
func Num[T constraints.Integer](v T) uint32 {
	u := uint64(v)
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
