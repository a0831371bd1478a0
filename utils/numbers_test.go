// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64PtrEqual(t *testing.T) {
	tests := []struct {
		name string
		x    *uint64
		y    *uint64
		want bool
	}{
		{
			name: "nil_nil",
			want: true,
		},
		{
			name: "0_nil",
			x:    NewUint64(0),
			want: false,
		},
		{
			name: "0_1",
			x:    NewUint64(0),
			y:    NewUint64(1),
			want: false,
		},
		{
			name: "1_1",
			x:    NewUint64(1),
			y:    NewUint64(1),
			want: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(test.want, Uint64PtrEqual(test.x, test.y))
			assert.Equal(test.want, Uint64PtrEqual(test.y, test.x))
		})
	}
}

func TestBigLessOrEqualUint64(t *testing.T) {
	assert.True(t, BigLessOrEqualUint64(big.NewInt(1), 1))
	assert.True(t, BigLessOrEqualUint64(big.NewInt(0), 1))
	assert.False(t, BigLessOrEqualUint64(big.NewInt(2), 1))
	assert.False(t, BigLessOrEqualUint64(nil, 1))
	assert.False(t, BigLessOrEqualUint64(new(big.Int).Lsh(big.NewInt(1), 70), 1))
}

func TestSafeDerefUint64String(t *testing.T) {
	assert.Equal(t, "nil", SafeDerefUint64String(nil))
	assert.Equal(t, "42", SafeDerefUint64String(NewUint64(42)))
}

func TestLvlFromString(t *testing.T) {
	lvl, err := LvlFromString("INFO")
	assert.NoError(t, err)
	assert.Equal(t, "INFO", lvl.String())

	_, err = LvlFromString("loud")
	assert.ErrorContains(t, err, "unknown level")
}
