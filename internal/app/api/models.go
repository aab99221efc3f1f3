// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package api

type ErrorMessage struct {
	Error []string `json:"error"`
}

func NewSingleMessageError(message string) ErrorMessage {
	return ErrorMessage{Error: []string{message}}
}

type SnapshotResponse struct {
	Period      int64  `json:"period"`
	BlockRef    string `json:"blockRef"`
	Timestamp   int64  `json:"timestamp"`
	TotalSupply int64  `json:"totalSupply"`
	RewardPool  int64  `json:"rewardPool"`
	HolderCount int    `json:"holderCount"`
	MerkleRoot  string `json:"merkleRoot"`
}

type DistributionEntryResponse struct {
	Address      string `json:"address"`
	Amount       int64  `json:"amount"`
	PeriodReward int64  `json:"periodReward"`
	CarriedIn    int64  `json:"carriedIn"`
}

type DistributionResponse struct {
	Period    int64                       `json:"period"`
	TotalPaid int64                       `json:"totalPaid"`
	Entries   []DistributionEntryResponse `json:"entries"`
}

type ProofResponse struct {
	Period     int64    `json:"period"`
	Address    string   `json:"address"`
	Balance    int64    `json:"balance"`
	Index      int      `json:"index"`
	Leaf       string   `json:"leaf"`
	MerkleRoot string   `json:"merkleRoot"`
	Siblings   []string `json:"siblings"`
}
