// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package extras

import "errors"

// Configuration errors. Any of them makes the chain config unusable and
// the node refuses to start.
var (
	ErrInvalidFeatureName = errors.New("feature name cannot be empty")
	ErrInvalidThreshold   = errors.New("invalid activation threshold")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrDuplicateFeature   = errors.New("duplicate feature")
	ErrFeatureConflict    = errors.New("conflicting feature claims")
)
