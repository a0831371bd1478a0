// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm holds the experimental instructions that can be enabled as
// features on top of the base instruction set.
package vm

import (
	"fmt"

	"github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/core/overlay"
	"github.com/traverse-labs/traverse/precompile/modules"
)

const (
	CLZ = 0x1e
	PAY = 0xf8
)

const (
	// FeatureCLZ enables CLZ (EIP-7939).
	FeatureCLZ = "clz"
	// FeaturePAY enables PAY (EIP-5920).
	FeaturePAY = "pay"
)

const gasFastStep uint64 = 5

var (
	clzOperation = &overlay.Handler{
		Name:        "CLZ",
		Opcode:      CLZ,
		Pops:        1,
		Pushes:      1,
		ConstantGas: gasFastStep,
		Execute:     opCLZ,
	}
	payOperation = &overlay.Handler{
		Name:        "PAY",
		Opcode:      PAY,
		Pops:        2,
		Writes:      true,
		ConstantGas: params.WarmStorageReadCostEIP2929,
		DynamicGas:  gasPay,
		Execute:     opPay,
	}

	CLZModule = modules.Module{Name: FeatureCLZ, Opcodes: []*overlay.Handler{clzOperation}}
	PAYModule = modules.Module{Name: FeaturePAY, Opcodes: []*overlay.Handler{payOperation}}
)

func init() {
	for _, m := range []modules.Module{CLZModule, PAYModule} {
		if err := modules.RegisterModule(m); err != nil {
			panic(fmt.Errorf("registering %s: %w", m.Name, err))
		}
	}
}
