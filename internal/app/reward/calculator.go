// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package reward

import (
	"math/big"
	"sort"
)

// Calculate combines each holder's proportional share of the snapshot's
// reward pool with any amount carried over from prior periods and splits the
// result into the period's distribution and the next carry-forward state.
//
// Per holder, in snapshot order:
//
//	periodReward = floor(rewardPool * balance / totalSupply)
//	owed         = periodReward + carriedIn
//
// owed >= minThreshold pays out now, anything below carries forward. The
// fractional remainder of the floor division is not redistributed; the total
// loss is bounded by the holder count.
//
// Holders present in prev but absent from the snapshot (sold their entire
// balance) are resolved, never forfeited: their carried amount is paid out
// alone if it clears the threshold, otherwise re-carried unchanged. Their
// entries follow the snapshot-ordered ones, in ascending address order.
//
// Calculate is pure: persisting the returned state is the caller's job.
func Calculate(s *Snapshot, prev AccumulationState, minThreshold int64) (*Distribution, AccumulationState, error) {
	if s.RewardPool < 0 {
		return nil, AccumulationState{}, ErrInvalidRewardPool
	}
	if s.TotalSupply == 0 {
		return nil, AccumulationState{}, ErrZeroSupply
	}

	dist := &Distribution{Period: s.Period}
	next := NewAccumulationState(s.Period)

	pool := big.NewInt(s.RewardPool)
	supply := big.NewInt(s.TotalSupply)

	seen := make(map[string]struct{}, len(s.Holders))
	for _, h := range s.Holders {
		seen[h.Address] = struct{}{}

		share := new(big.Int).Mul(pool, big.NewInt(h.Balance))
		share.Quo(share, supply)
		periodReward := share.Int64()

		carriedIn := prev.Owed[h.Address]
		owed := periodReward + carriedIn
		// owed == 0 never produces an entry, even with a zero threshold.
		if owed >= minThreshold && owed > 0 {
			dist.Entries = append(dist.Entries, Entry{
				Address:      h.Address,
				Amount:       owed,
				PeriodReward: periodReward,
				CarriedIn:    carriedIn,
			})
		} else if owed > 0 {
			next.Owed[h.Address] = owed
		}
	}

	var departed []string
	for addr := range prev.Owed {
		if _, ok := seen[addr]; !ok {
			departed = append(departed, addr)
		}
	}
	sort.Strings(departed)
	for _, addr := range departed {
		carriedIn := prev.Owed[addr]
		if carriedIn >= minThreshold {
			dist.Entries = append(dist.Entries, Entry{
				Address:   addr,
				Amount:    carriedIn,
				CarriedIn: carriedIn,
			})
		} else {
			next.Owed[addr] = carriedIn
		}
	}

	return dist, next, nil
}
