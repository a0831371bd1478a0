// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extras

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ava-labs/libevm/common"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/traverse-labs/traverse/core/overlay"
	"github.com/traverse-labs/traverse/metrics"
	"github.com/traverse-labs/traverse/precompile/modules"
	"github.com/traverse-labs/traverse/precompile/registry"
	"github.com/traverse-labs/traverse/utils"
)

// activationCacheSize bounds the number of distinct activation sets kept.
// A chain only ever sees len(features)+1 of them, so the bound is generous.
const activationCacheSize = 64

var (
	activationCacheHits   = metrics.NewCounter("traverse/activation/cache/hits")
	activationCacheMisses = metrics.NewCounter("traverse/activation/cache/misses")
)

// Schedule is the verified list of features enabled by a chain config.
// A Schedule can only be obtained through [NewSchedule] or JSON decoding,
// both of which reject conflicting claims, so a Schedule in hand is always
// valid. It is immutable and safe for concurrent use.
type Schedule struct {
	// features in config order.
	features []Feature
	// byName holds indexes into features and modules, sorted by feature name.
	byName  []int
	modules []modules.Module
	claims  map[common.Address]string

	cache *lru.Cache[string, *ActivationSet]
}

// NewSchedule verifies [features] against the catalogue and returns the
// resulting Schedule.
func NewSchedule(features ...Feature) (*Schedule, error) {
	s := &Schedule{
		features: append([]Feature(nil), features...),
		modules:  make([]modules.Module, len(features)),
		claims:   make(map[common.Address]string),
	}

	var (
		seen    = make(map[string]struct{}, len(features))
		opcodes [256]string
	)
	for i, f := range s.features {
		if err := f.verify(); err != nil {
			return nil, err
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFeature, f.Name)
		}
		seen[f.Name] = struct{}{}

		module, ok := modules.GetModule(f.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, f.Name)
		}
		for _, addr := range module.Addresses() {
			if owner, ok := s.claims[addr]; ok {
				return nil, fmt.Errorf("%w: feature %q claims precompile %s already claimed by feature %q", ErrFeatureConflict, f.Name, addr, owner)
			}
			s.claims[addr] = f.Name
		}
		for _, op := range module.OpcodeValues() {
			if owner := opcodes[op]; owner != "" {
				return nil, fmt.Errorf("%w: feature %q claims opcode 0x%02x already claimed by feature %q", ErrFeatureConflict, f.Name, op, owner)
			}
			opcodes[op] = f.Name
		}
		s.modules[i] = module
		s.byName = append(s.byName, i)
	}
	sort.Slice(s.byName, func(i, j int) bool {
		return s.features[s.byName[i]].Name < s.features[s.byName[j]].Name
	})

	cache, err := lru.New[string, *ActivationSet](activationCacheSize)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

// ParseSchedule decodes and verifies a JSON array of features.
func ParseSchedule(data []byte) (*Schedule, error) {
	s := new(Schedule)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	var features []Feature
	if err := json.Unmarshal(data, &features); err != nil {
		return err
	}
	parsed, err := NewSchedule(features...)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

func (s *Schedule) MarshalJSON() ([]byte, error) {
	if s == nil || s.features == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.features)
}

// Verify checks every feature against the catalogue and the claims of the
// features before it. A Schedule built by [NewSchedule] or decoded from JSON
// has already passed it; Verify exists so that chain config validation can
// run it again after the catalogue is complete.
func (s *Schedule) Verify() error {
	if s == nil {
		return nil
	}
	_, err := NewSchedule(s.features...)
	return err
}

// Features returns the scheduled features in config order.
func (s *Schedule) Features() []Feature {
	if s == nil {
		return nil
	}
	return append([]Feature(nil), s.features...)
}

// IsActive returns whether the feature [name] is active in the given block.
func (s *Schedule) IsActive(name string, number *big.Int, timestamp uint64) bool {
	if s == nil {
		return false
	}
	for _, f := range s.features {
		if f.Name == name {
			return f.IsActive(number, timestamp)
		}
	}
	return false
}

// Claims returns the feature that claims [addr], whether or not it is
// active yet.
func (s *Schedule) Claims(addr common.Address) (string, bool) {
	if s == nil {
		return "", false
	}
	name, ok := s.claims[addr]
	return name, ok
}

// Resolve returns the features active in the block with [number] and
// [timestamp]. The result depends on nothing else, and blocks with the same
// active features share one read-only ActivationSet.
func (s *Schedule) Resolve(number *big.Int, timestamp uint64) *ActivationSet {
	if s == nil || len(s.features) == 0 {
		return emptyActivationSet
	}

	active := make([]int, 0, len(s.byName))
	names := make([]string, 0, len(s.byName))
	for _, i := range s.byName {
		if s.features[i].IsActive(number, timestamp) {
			active = append(active, i)
			names = append(names, s.features[i].Name)
		}
	}
	if len(active) == 0 {
		return emptyActivationSet
	}

	key := strings.Join(names, ",")
	if set, ok := s.cache.Get(key); ok {
		activationCacheHits.Inc(1)
		return set
	}
	activationCacheMisses.Inc(1)
	set := s.buildActivationSet(active, names)
	s.cache.Add(key, set)
	return set
}

func (s *Schedule) buildActivationSet(active []int, names []string) *ActivationSet {
	var (
		entries  []registry.Entry
		handlers []*overlay.Handler
	)
	for _, i := range active {
		module := s.modules[i]
		for _, p := range module.Precompiles {
			entries = append(entries, registry.Entry{
				Feature:  module.Name,
				Address:  p.Address,
				Contract: p.Contract,
			})
		}
		handlers = append(handlers, module.Opcodes...)
	}
	// Claims were checked to be disjoint when the schedule was built.
	precompiles, err := registry.New(entries...)
	if err != nil {
		panic(err)
	}
	opcodes, err := overlay.NewTable(handlers...)
	if err != nil {
		panic(err)
	}
	return &ActivationSet{
		features:    names,
		precompiles: precompiles,
		opcodes:     opcodes,
	}
}

// Description returns a human readable summary of the schedule.
func (s *Schedule) Description() string {
	if s == nil || len(s.features) == 0 {
		return " - none\n"
	}
	var banner string
	for i, f := range s.features {
		when := fmt.Sprintf("@%-10s", utils.SafeDerefUint64String(f.Timestamp))
		if f.BlockNumber != nil {
			when = fmt.Sprintf("#%-10s", utils.SafeDerefUint64String(f.BlockNumber))
		}
		banner += fmt.Sprintf(" - %-16s %s precompiles=%v opcodes=%s\n", f.Name+":", when, s.modules[i].Addresses(), formatOpcodes(s.modules[i].OpcodeValues()))
	}
	return banner
}

func formatOpcodes(ops []byte) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, fmt.Sprintf("0x%02x", op))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
