// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/libevm/common"

	"github.com/traverse-labs/traverse/core/overlay"
	"github.com/traverse-labs/traverse/vmerrs"
)

// opCLZ replaces the top of the stack with its number of leading zero bits.
// CLZ(0) is 256.
func opCLZ(f *overlay.Frame) error {
	x := f.Stack.Back(0)
	x.SetUint64(uint64(256 - x.BitLen()))
	return nil
}

// opPay moves value from the executing account to addr without running any
// code at addr.
func opPay(f *overlay.Frame) error {
	addrWord, value := f.Stack.Pop(), f.Stack.Pop()
	if value.IsZero() {
		return nil
	}
	if f.State.GetBalance(f.Self).Lt(&value) {
		return vmerrs.ErrInsufficientBalance
	}
	addr := common.Address(addrWord.Bytes20())
	f.State.SubBalance(f.Self, &value)
	f.State.AddBalance(addr, &value)
	return nil
}
