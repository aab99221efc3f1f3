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

func TestSortHolders(t *testing.T) {
	t.Parallel()
	holders := []Holder{
		{Address: "b", Balance: 10},
		{Address: "c", Balance: 30},
		{Address: "a", Balance: 10},
		{Address: "d", Balance: 20},
	}
	SortHolders(holders)

	require.Equal(t, []Holder{
		{Address: "c", Balance: 30},
		{Address: "d", Balance: 20},
		{Address: "a", Balance: 10},
		{Address: "b", Balance: 10},
	}, holders)
}

func TestPartitionDistribution(t *testing.T) {
	t.Parallel()

	makeDistribution := func(n int) *Distribution {
		d := &Distribution{Period: 7}
		for i := 0; i < n; i++ {
			d.Entries = append(d.Entries, Entry{
				Address: fmt.Sprintf("addr%03d", i),
				Amount:  int64(i + 1),
			})
		}
		return d
	}

	t.Run("120 entries in batches of 50", func(t *testing.T) {
		t.Parallel()
		batches := PartitionDistribution(makeDistribution(120), 50)
		require.Len(t, batches, 3)
		require.Len(t, batches[0].Entries, 50)
		require.Len(t, batches[1].Entries, 50)
		require.Len(t, batches[2].Entries, 20)

		for i, b := range batches {
			require.Equal(t, i, b.Index)
			require.Equal(t, int64(7), b.Period)
			require.Equal(t, BatchPending, b.Status)
		}
		// Order is preserved across batch boundaries.
		require.Equal(t, "addr050", batches[1].Entries[0].Address)
		require.Equal(t, "addr119", batches[2].Entries[19].Address)
	})

	t.Run("empty distribution yields no batches", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, PartitionDistribution(makeDistribution(0), 50))
	})

	t.Run("exact multiple", func(t *testing.T) {
		t.Parallel()
		batches := PartitionDistribution(makeDistribution(100), 50)
		require.Len(t, batches, 2)
		require.Len(t, batches[1].Entries, 50)
	})
}
