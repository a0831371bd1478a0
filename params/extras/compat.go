// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extras

import (
	"fmt"
	"math/big"
	"sort"

	ethparams "github.com/ava-labs/libevm/params"

	"github.com/traverse-labs/traverse/utils"
)

// CheckCompatible returns an error if moving from s to [newSchedule] would
// change the activation of a feature that the chain head has already
// reached. Features are never disabled once active, so a scheduled
// threshold that has passed cannot be moved or removed.
func (s *Schedule) CheckCompatible(newSchedule *Schedule, headNumber *big.Int, headTimestamp uint64) *ethparams.ConfigCompatError {
	var (
		stored = s.thresholds()
		next   = newSchedule.thresholds()
		names  = make([]string, 0, len(stored)+len(next))
	)
	for name := range stored {
		names = append(names, name)
	}
	for name := range next {
		if _, ok := stored[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		a, b := stored[name], next[name]
		if isForkTimestampIncompatible(a.Timestamp, b.Timestamp, headTimestamp) {
			return newTimestampCompatError(fmt.Sprintf("%s activation timestamp", name), a.Timestamp, b.Timestamp)
		}
		if isForkBlockIncompatible(a.BlockNumber, b.BlockNumber, headNumber) {
			return newBlockCompatError(fmt.Sprintf("%s activation block", name), a.BlockNumber, b.BlockNumber)
		}
	}
	return nil
}

func (s *Schedule) thresholds() map[string]Feature {
	out := make(map[string]Feature)
	if s == nil {
		return out
	}
	for _, f := range s.features {
		out[f.Name] = f
	}
	return out
}

// isForkTimestampIncompatible returns true if a fork scheduled at timestamp s1
// cannot be rescheduled to timestamp s2 because head is already past the fork.
func isForkTimestampIncompatible(s1, s2 *uint64, head uint64) bool {
	return (isTimestampForked(s1, head) || isTimestampForked(s2, head)) && !utils.Uint64PtrEqual(s1, s2)
}

// isForkBlockIncompatible is the block number variant of
// isForkTimestampIncompatible.
func isForkBlockIncompatible(s1, s2 *uint64, head *big.Int) bool {
	return (isBlockForked(s1, head) || isBlockForked(s2, head)) && !utils.Uint64PtrEqual(s1, s2)
}

func newTimestampCompatError(what string, storedtime, newtime *uint64) *ethparams.ConfigCompatError {
	err := &ethparams.ConfigCompatError{
		What:       what,
		StoredTime: storedtime,
		NewTime:    newtime,
	}
	if rew := rewindTarget(storedtime, newtime); rew != nil && *rew > 0 {
		err.RewindToTime = *rew - 1
	}
	return err
}

func newBlockCompatError(what string, storedblock, newblock *uint64) *ethparams.ConfigCompatError {
	err := &ethparams.ConfigCompatError{
		What:        what,
		StoredBlock: toBig(storedblock),
		NewBlock:    toBig(newblock),
	}
	if rew := rewindTarget(storedblock, newblock); rew != nil && *rew > 0 {
		err.RewindToBlock = *rew - 1
	}
	return err
}

// rewindTarget returns the earlier of the two thresholds.
func rewindTarget(stored, next *uint64) *uint64 {
	switch {
	case stored == nil:
		return next
	case next == nil || *stored < *next:
		return stored
	default:
		return next
	}
}

func toBig(v *uint64) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).SetUint64(*v)
}
