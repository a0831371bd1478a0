// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Module to facilitate the registration of precompiles and their configuration.
package registry

// Force imports of each feature to ensure each feature's init function runs and registers itself
// with the catalogue.
import (
	_ "github.com/traverse-labs/traverse/core/vm"
	_ "github.com/traverse-labs/traverse/precompile/contracts/callerstore"
	_ "github.com/traverse-labs/traverse/precompile/contracts/p256verify"
)

// This list is kept just for reference. The actual addresses are defined in the respective packages.
// Note: a feature may claim an address used by a base precompile, in which case it overrides it
// from its activation onwards.
// Stateful precompiles native to this client start at 0x0300000000000000000000000000000000000000
// and increment by 1, to stay clear of ranges used by other EVM chains.
// P256VerifyAddress        = common.HexToAddress("0x0000000000000000000000000000000000000100")
// P256VerifyLegacyAddress  = common.HexToAddress("0x0000000000000000000000000000000000000014")
// CallerStoreAddress       = common.HexToAddress("0x0300000000000000000000000000000000000000")
