// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package reward

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func snapshotOf(period, pool int64, holders ...Holder) *Snapshot {
	var supply int64
	for _, h := range holders {
		supply += h.Balance
	}
	return &Snapshot{
		Period:      period,
		Holders:     holders,
		TotalSupply: supply,
		RewardPool:  pool,
	}
}

func TestCalculate_ExactDivision(t *testing.T) {
	t.Parallel()
	// A: 100 of 1000 supply, C: 900 of 1000 supply, pool 1000: shares divide
	// exactly, so the paid total equals the pool.
	s := snapshotOf(1, 1000,
		Holder{Address: "C", Balance: 900},
		Holder{Address: "A", Balance: 100},
	)

	dist, next, err := Calculate(s, NewAccumulationState(0), 5)
	require.NoError(t, err)
	require.Len(t, dist.Entries, 2)
	require.Equal(t, Entry{Address: "C", Amount: 900, PeriodReward: 900}, dist.Entries[0])
	require.Equal(t, Entry{Address: "A", Amount: 100, PeriodReward: 100}, dist.Entries[1])
	require.Empty(t, next.Owed)

	var paid int64
	for _, e := range dist.Entries {
		paid += e.Amount
	}
	require.Equal(t, int64(1000), paid)
}

func TestCalculate_ShareConservation(t *testing.T) {
	t.Parallel()
	// Floor rounding may lose strictly less than one unit per holder, and
	// the loss is never redistributed.
	holders := make([]Holder, 7)
	for i := range holders {
		holders[i] = Holder{Address: fmt.Sprintf("h%d", i), Balance: int64(i*13 + 1)}
	}
	s := snapshotOf(1, 999, holders...)

	dist, next, err := Calculate(s, NewAccumulationState(0), 0)
	require.NoError(t, err)

	var total int64
	for _, e := range dist.Entries {
		total += e.PeriodReward
	}
	for _, owed := range next.Owed {
		total += owed
	}
	require.True(t, total <= s.RewardPool)
	require.True(t, s.RewardPool-total < int64(len(holders)),
		"rounding loss must stay below the holder count")
}

func TestCalculate_AccumulationAcrossPeriods(t *testing.T) {
	t.Parallel()
	// periodReward 2 with threshold 5 accumulates 2 -> 4 -> 6, pays 6 on the
	// third period and carries nothing into the fourth.
	holders := []Holder{
		{Address: "small", Balance: 2},
		{Address: "whale", Balance: 998},
	}
	state := NewAccumulationState(0)

	for period := int64(1); period <= 2; period++ {
		s := snapshotOf(period, 1000, holders...)
		dist, next, err := Calculate(s, state, 5)
		require.NoError(t, err)
		require.Len(t, dist.Entries, 1, "only the whale clears the threshold")
		require.Equal(t, "whale", dist.Entries[0].Address)
		require.Equal(t, period*2, next.Owed["small"])
		state = next
	}

	s := snapshotOf(3, 1000, holders...)
	dist, next, err := Calculate(s, state, 5)
	require.NoError(t, err)
	require.Len(t, dist.Entries, 2)
	require.Equal(t, Entry{Address: "small", Amount: 6, PeriodReward: 2, CarriedIn: 4}, dist.Entries[0])
	require.NotContains(t, next.Owed, "small")
}

func TestCalculate_DepartedHolderPaidOut(t *testing.T) {
	t.Parallel()
	prev := NewAccumulationState(1)
	prev.Owed["gone-rich"] = 9
	prev.Owed["gone-poor"] = 3

	s := snapshotOf(2, 100, Holder{Address: "stay", Balance: 50})

	dist, next, err := Calculate(s, prev, 5)
	require.NoError(t, err)

	// gone-rich clears the threshold on carry alone; gone-poor is re-carried
	// unchanged. Neither is forfeited.
	require.Len(t, dist.Entries, 2)
	require.Equal(t, "stay", dist.Entries[0].Address)
	require.Equal(t, Entry{Address: "gone-rich", Amount: 9, CarriedIn: 9}, dist.Entries[1])
	require.Equal(t, int64(3), next.Owed["gone-poor"])
}

func TestCalculate_ThresholdRemovesStaleEntry(t *testing.T) {
	t.Parallel()
	prev := NewAccumulationState(1)
	prev.Owed["h"] = 4

	s := snapshotOf(2, 1000, Holder{Address: "h", Balance: 10}, Holder{Address: "w", Balance: 90})

	dist, next, err := Calculate(s, prev, 5)
	require.NoError(t, err)
	require.Equal(t, Entry{Address: "h", Amount: 104, PeriodReward: 100, CarriedIn: 4}, dist.Entries[0])
	require.NotContains(t, next.Owed, "h")
}

func TestCalculate_ZeroSupply(t *testing.T) {
	t.Parallel()
	s := &Snapshot{Period: 1, RewardPool: 100}
	_, _, err := Calculate(s, NewAccumulationState(0), 5)
	require.Equal(t, ErrZeroSupply, err)
}

func TestCalculate_NegativePool(t *testing.T) {
	t.Parallel()
	s := snapshotOf(1, -1, Holder{Address: "a", Balance: 1})
	_, _, err := Calculate(s, NewAccumulationState(0), 5)
	require.Equal(t, ErrInvalidRewardPool, err)
}

func TestCalculate_NoZeroEntriesInState(t *testing.T) {
	t.Parallel()
	// A holder whose share floors to zero with nothing carried must not
	// appear in the next state at all.
	s := snapshotOf(1, 10,
		Holder{Address: "dust", Balance: 1},
		Holder{Address: "whale", Balance: 99999},
	)
	_, next, err := Calculate(s, NewAccumulationState(0), 5)
	require.NoError(t, err)
	require.NotContains(t, next.Owed, "dust")
}
