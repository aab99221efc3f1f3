// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package reward

import "github.com/pkg/errors"

var (
	// ErrEmptyHolderSet: the ledger returned zero holders. A query failure
	// is a different error and must never be collapsed into this one.
	ErrEmptyHolderSet = errors.New("empty holder set")

	// ErrZeroSupply: total supply is zero, shares cannot be computed.
	ErrZeroSupply = errors.New("zero total supply")

	// ErrInvalidRewardPool: configured reward pool is negative.
	ErrInvalidRewardPool = errors.New("invalid reward pool")

	// ErrAlreadyPaid: the period's distribution is already fully paid;
	// the run is rejected before any computation.
	ErrAlreadyPaid = errors.New("period already fully paid")

	// ErrInconsistentView: the ledger could not serve a stable view at the
	// requested reference point.
	ErrInconsistentView = errors.New("ledger view is not consistent")
)
