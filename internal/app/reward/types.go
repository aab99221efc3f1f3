// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package reward

import (
	"sort"
	"time"
)

// Holder is an address owning a non-zero balance of the tracked asset at
// snapshot time.
type Holder struct {
	Address string
	Balance int64
}

// Snapshot is the point-in-time record of all holders, their balances and
// the derived commitment root. Period is the idempotency key for the whole
// pipeline: once a snapshot is persisted it is never recomputed with a
// different holder set.
type Snapshot struct {
	Period      int64
	BlockRef    string
	Timestamp   time.Time
	Holders     []Holder
	TotalSupply int64
	MerkleRoot  []byte
	RewardPool  int64
}

// AccumulationState holds amounts owed but not yet paid, carried from the
// prior period. It never contains zero entries.
type AccumulationState struct {
	Period int64
	Owed   map[string]int64
}

func NewAccumulationState(period int64) AccumulationState {
	return AccumulationState{Period: period, Owed: make(map[string]int64)}
}

// Entry is a single payout: Amount = PeriodReward + CarriedIn.
type Entry struct {
	Address      string
	Amount       int64
	PeriodReward int64
	CarriedIn    int64
}

// Distribution is the payout list of one period, immutable after creation.
type Distribution struct {
	Period  int64
	Entries []Entry
}

type BatchStatus string

const (
	BatchPending   BatchStatus = "pending"
	BatchSubmitted BatchStatus = "submitted"
	BatchConfirmed BatchStatus = "confirmed"
	BatchFailed    BatchStatus = "failed"
)

// Batch is a bounded-size slice of a period's distribution. Lifecycle:
// pending -> submitted -> confirmed | failed. Confirmed is terminal; failed
// batches are retried with identical contents and never merged.
type Batch struct {
	Period        int64
	Index         int
	Entries       []Entry
	Status        BatchStatus
	TransactionID string
}

// SortHolders orders holders by descending balance, ties broken by
// ascending address. The order is part of the public commitment: it fixes
// every holder's leaf index, so it must never change between releases.
func SortHolders(holders []Holder) {
	sort.Slice(holders, func(i, j int) bool {
		if holders[i].Balance != holders[j].Balance {
			return holders[i].Balance > holders[j].Balance
		}
		return holders[i].Address < holders[j].Address
	})
}

// PartitionDistribution chunks the distribution into batches of at most
// maxBatchSize entries, preserving the distribution order.
func PartitionDistribution(d *Distribution, maxBatchSize int) []*Batch {
	if maxBatchSize < 1 {
		maxBatchSize = 1
	}
	var batches []*Batch
	for start := 0; start < len(d.Entries); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(d.Entries) {
			end = len(d.Entries)
		}
		batches = append(batches, &Batch{
			Period:  d.Period,
			Index:   len(batches),
			Entries: d.Entries[start:end],
			Status:  BatchPending,
		})
	}
	return batches
}
