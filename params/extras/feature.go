// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extras

import (
	"fmt"
	"math/big"

	"github.com/traverse-labs/traverse/utils"
)

// Feature schedules one catalogue module. Exactly one of BlockNumber and
// Timestamp is set; the feature is active in every block at or past it.
type Feature struct {
	Name        string  `json:"name"`
	BlockNumber *uint64 `json:"blockNumber,omitempty"`
	Timestamp   *uint64 `json:"timestamp,omitempty"`
}

// IsActive returns whether f is active in the block with [number] and [timestamp].
func (f Feature) IsActive(number *big.Int, timestamp uint64) bool {
	if f.Timestamp != nil {
		return isTimestampForked(f.Timestamp, timestamp)
	}
	return isBlockForked(f.BlockNumber, number)
}

func (f Feature) verify() error {
	switch {
	case f.Name == "":
		return ErrInvalidFeatureName
	case f.BlockNumber == nil && f.Timestamp == nil:
		return fmt.Errorf("%w: feature %q sets neither blockNumber nor timestamp", ErrInvalidThreshold, f.Name)
	case f.BlockNumber != nil && f.Timestamp != nil:
		return fmt.Errorf("%w: feature %q sets both blockNumber and timestamp", ErrInvalidThreshold, f.Name)
	}
	return nil
}

func (f Feature) String() string {
	if f.BlockNumber != nil {
		return f.Name + "#" + utils.SafeDerefUint64String(f.BlockNumber)
	}
	return f.Name + "@" + utils.SafeDerefUint64String(f.Timestamp)
}

// isTimestampForked returns whether a fork scheduled at timestamp s is active
// at the given head timestamp.
func isTimestampForked(s *uint64, head uint64) bool {
	if s == nil {
		return false
	}
	return *s <= head
}

// isBlockForked returns whether a fork scheduled at block s is active at the
// given head block.
func isBlockForked(s *uint64, head *big.Int) bool {
	if s == nil || head == nil || head.Sign() < 0 {
		return false
	}
	return *s == 0 || !utils.BigLessOrEqualUint64(head, *s-1)
}
