// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"fmt"

	"github.com/traverse-labs/traverse/vmerrs"
)

// DeductGas checks if [suppliedGas] is sufficient against [requiredGas] and deducts [requiredGas] from [suppliedGas].
func DeductGas(suppliedGas uint64, requiredGas uint64) (uint64, error) {
	if suppliedGas < requiredGas {
		return 0, vmerrs.ErrOutOfGas
	}
	return suppliedGas - requiredGas, nil
}

// ParseSelector splits [input] into a one byte selector and its arguments,
// checking the arguments are exactly [argsLen] bytes long.
func ParseSelector(input []byte, argsLen int) (byte, []byte, error) {
	if len(input) == 0 {
		return 0, nil, fmt.Errorf("%w: empty input", vmerrs.ErrInvalidInput)
	}
	if len(input)-1 != argsLen {
		return 0, nil, fmt.Errorf("%w: selector 0x%02x expects %d bytes of arguments, got %d", vmerrs.ErrInvalidInput, input[0], argsLen, len(input)-1)
	}
	return input[0], input[1:], nil
}
