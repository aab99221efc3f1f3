// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package postgres

import "time"

type PeriodModel struct {
	tableName struct{} `sql:"periods"` //nolint: unused,structcheck

	Period    int64     `sql:"period,pk"`
	FullyPaid bool      `sql:"fully_paid"`
	PaidAt    time.Time `sql:"paid_at"`
	CreatedAt time.Time `sql:"created_at"`
}

type SnapshotModel struct {
	tableName struct{} `sql:"snapshots"` //nolint: unused,structcheck

	Period      int64     `sql:"period,pk"`
	BlockRef    string    `sql:"block_ref"`
	Timestamp   time.Time `sql:"ts"`
	TotalSupply int64     `sql:"total_supply"`
	RewardPool  int64     `sql:"reward_pool"`
	MerkleRoot  []byte    `sql:"merkle_root"`
	HolderCount int       `sql:"holder_count"`
}

// HolderModel preserves the snapshot order through idx: the index is part of
// the public commitment (it fixes the holder's Merkle leaf position).
type HolderModel struct {
	tableName struct{} `sql:"snapshot_holders"` //nolint: unused,structcheck

	Period  int64  `sql:"period,pk"`
	Idx     int    `sql:"idx,pk"`
	Address string `sql:"address"`
	Balance int64  `sql:"balance"`
}

type AccumulationModel struct {
	tableName struct{} `sql:"accumulations"` //nolint: unused,structcheck

	Period  int64  `sql:"period,pk"`
	Address string `sql:"address,pk"`
	Amount  int64  `sql:"amount"`
}

type DistributionEntryModel struct {
	tableName struct{} `sql:"distribution_entries"` //nolint: unused,structcheck

	Period       int64  `sql:"period,pk"`
	Idx          int    `sql:"idx,pk"`
	Address      string `sql:"address"`
	Amount       int64  `sql:"amount"`
	PeriodReward int64  `sql:"period_reward"`
	CarriedIn    int64  `sql:"carried_in"`
}

type BatchModel struct {
	tableName struct{} `sql:"batches"` //nolint: unused,structcheck

	Period        int64  `sql:"period,pk"`
	BatchIndex    int    `sql:"batch_index,pk"`
	Status        string `sql:"status"`
	TransactionID string `sql:"tx_id"`
	EntryCount    int    `sql:"entry_count"`
}
