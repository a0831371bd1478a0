// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package callerstore

import (
	"fmt"

	"github.com/ava-labs/libevm/common"

	"github.com/traverse-labs/traverse/precompile/modules"
)

// FeatureName is the key used in chain config files to enable this precompile.
const FeatureName = "callerstore"

// ContractAddress is the address of the callerstore precompile contract
var ContractAddress = common.HexToAddress("0x0300000000000000000000000000000000000000")

// Module is the feature as registered in the catalogue.
var Module = modules.Module{
	Name: FeatureName,
	Precompiles: []modules.Precompile{
		{Address: ContractAddress, Contract: CallerStore{}},
	},
}

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(fmt.Errorf("registering %s: %w", FeatureName, err))
	}
}

// PackRead returns the input reading [slot].
func PackRead(slot common.Hash) []byte {
	return append([]byte{SelectorRead}, slot.Bytes()...)
}

// PackWrite returns the input writing [value] to [slot].
func PackWrite(slot common.Hash, value common.Hash) []byte {
	input := append([]byte{SelectorWrite}, slot.Bytes()...)
	return append(input, value.Bytes()...)
}
