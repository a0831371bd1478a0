// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/core/overlay"
)

// gasPay charges for a cold recipient (and warms it), for a value transfer
// and for creating the recipient account.
func gasPay(f *overlay.Frame) (uint64, error) {
	var (
		addr  = common.Address(f.Stack.Back(0).Bytes20())
		value = f.Stack.Back(1)
		gas   uint64
	)
	if !f.State.AddressInAccessList(addr) {
		f.State.AddAddressToAccessList(addr)
		gas += params.ColdAccountAccessCostEIP2929 - params.WarmStorageReadCostEIP2929
	}
	if !value.IsZero() {
		gas += params.CallValueTransferGas
		if f.State.Empty(addr) {
			gas += params.CallNewAccountGas
		}
	}
	return gas, nil
}
