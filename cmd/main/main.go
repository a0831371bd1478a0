// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// traverse loads a genesis file, verifies its feature schedule and prints
// the features, precompiles and opcodes active at a given block.
package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/traverse-labs/traverse/plugin/evm"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "failed %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := BuildFlagSet()
	v, err := BuildViper(fs, args)
	if err != nil {
		return err
	}

	genesisBytes, err := os.ReadFile(v.GetString(GenesisFilePathKey))
	if err != nil {
		return fmt.Errorf("failed to read genesis: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vm := &evm.VM{}
	if err := vm.Initialize(ctx, v.GetString(ChainAliasKey), genesisBytes, []byte(v.GetString(VMConfigKey)), os.Stderr); err != nil {
		return err
	}
	defer vm.Shutdown(ctx) //nolint:errcheck

	number := v.GetUint64(BlockKey)
	timestamp := v.GetUint64(TimestampKey)
	set := vm.Rules(new(big.Int).SetUint64(number), timestamp)

	fmt.Fprint(out, vm.ChainConfig().Description())
	fmt.Fprintf(out, "Active at block %d (timestamp %d):\n", number, timestamp)
	if set.Empty() {
		fmt.Fprintln(out, " - none")
		return nil
	}
	for _, name := range set.Features() {
		fmt.Fprintf(out, " - %s\n", name)
	}
	for _, addr := range set.Precompiles().Addresses() {
		entry, _ := set.Lookup(addr)
		fmt.Fprintf(out, "   precompile %s (%s)\n", addr.Hex(), entry.Feature)
	}
	for _, op := range set.Opcodes().Opcodes() {
		h, _ := set.Opcodes().Lookup(op)
		fmt.Fprintf(out, "   opcode 0x%02x %s\n", op, h.Name)
	}
	return nil
}
