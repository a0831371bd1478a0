// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"math/big"
	"strconv"
)

func NewUint64(val uint64) *uint64 { return &val }

// Uint64PtrEqual returns true if x and y pointers are equivalent ie. both nil or both
// contain the same value.
func Uint64PtrEqual(x, y *uint64) bool {
	if x == nil || y == nil {
		return x == y
	}
	return *x == *y
}

// BigLessOrEqualUint64 returns true if a is less than or equal to b. If a is
// nil or not a uint64, it returns false.
func BigLessOrEqualUint64(a *big.Int, b uint64) bool {
	return a != nil &&
		a.IsUint64() &&
		a.Uint64() <= b
}

// SafeDerefUint64String safely dereferences a uint64 pointer and returns a string.
func SafeDerefUint64String(ptr *uint64) string {
	if ptr == nil {
		return "nil"
	}
	return strconv.FormatUint(*ptr, 10)
}
