// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

// Package api serves the read-only presentation surface: latest snapshot,
// distribution summaries and inclusion proofs. It never writes.
package api

import (
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
	"github.com/cognosis-network/reward-engine/internal/app/reward/merkle"
)

// Storage is the read side of the persistence layer.
type Storage interface {
	LastSnapshot() (*reward.Snapshot, error)
	SnapshotByPeriod(period int64) (*reward.Snapshot, error)
	DistributionByPeriod(period int64) (*reward.Distribution, error)
}

type RewardServer struct {
	storage Storage
	log     *logrus.Logger
}

func NewRewardServer(storage Storage, log *logrus.Logger) *RewardServer {
	return &RewardServer{storage: storage, log: log}
}

func RegisterHandlers(e *echo.Echo, s *RewardServer) {
	e.GET("/healthcheck", s.Healthcheck)
	e.GET("/api/snapshot/latest", s.SnapshotLatest)
	e.GET("/api/distribution/:period", s.Distribution)
	e.GET("/api/proof/:period/:address", s.Proof)
}

func (s *RewardServer) Healthcheck(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func (s *RewardServer) SnapshotLatest(ctx echo.Context) error {
	snap, err := s.storage.LastSnapshot()
	if err != nil {
		s.log.Error(err)
		return ctx.JSON(http.StatusInternalServerError, struct{}{})
	}
	if snap == nil {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("no snapshot yet"))
	}
	return ctx.JSON(http.StatusOK, snapshotToAPI(snap))
}

func (s *RewardServer) Distribution(ctx echo.Context) error {
	period, err := strconv.ParseInt(ctx.Param("period"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("`period` should be an integer"))
	}
	dist, err := s.storage.DistributionByPeriod(period)
	if err != nil {
		s.log.Error(err)
		return ctx.JSON(http.StatusInternalServerError, struct{}{})
	}
	if dist == nil {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("no distribution for period"))
	}

	res := DistributionResponse{Period: dist.Period}
	for _, e := range dist.Entries {
		res.TotalPaid += e.Amount
		res.Entries = append(res.Entries, DistributionEntryResponse{
			Address:      e.Address,
			Amount:       e.Amount,
			PeriodReward: e.PeriodReward,
			CarriedIn:    e.CarriedIn,
		})
	}
	return ctx.JSON(http.StatusOK, res)
}

// Proof rebuilds the commitment tree from the persisted snapshot (the tree
// is a pure function of the ordered holder list) and returns the inclusion
// proof for one address.
func (s *RewardServer) Proof(ctx echo.Context) error {
	period, err := strconv.ParseInt(ctx.Param("period"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("`period` should be an integer"))
	}
	address := ctx.Param("address")

	snap, err := s.storage.SnapshotByPeriod(period)
	if err != nil {
		s.log.Error(err)
		return ctx.JSON(http.StatusInternalServerError, struct{}{})
	}
	if snap == nil {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("no snapshot for period"))
	}

	index := -1
	for i, h := range snap.Holders {
		if h.Address == address {
			index = i
			break
		}
	}
	if index < 0 {
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError("address not in snapshot"))
	}

	tree, err := merkle.Build(snap.Holders)
	if err != nil {
		s.log.Error(err)
		return ctx.JSON(http.StatusInternalServerError, struct{}{})
	}
	proof, err := tree.Prove(index)
	if err != nil {
		s.log.Error(err)
		return ctx.JSON(http.StatusInternalServerError, struct{}{})
	}

	res := ProofResponse{
		Period:     period,
		Address:    address,
		Balance:    snap.Holders[index].Balance,
		Index:      index,
		Leaf:       hex.EncodeToString(merkle.LeafHash(snap.Holders[index])),
		MerkleRoot: hex.EncodeToString(tree.Root()),
	}
	for _, sibling := range proof.Siblings {
		res.Siblings = append(res.Siblings, hex.EncodeToString(sibling))
	}
	return ctx.JSON(http.StatusOK, res)
}

func snapshotToAPI(snap *reward.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Period:      snap.Period,
		BlockRef:    snap.BlockRef,
		Timestamp:   snap.Timestamp.Unix(),
		TotalSupply: snap.TotalSupply,
		RewardPool:  snap.RewardPool,
		HolderCount: len(snap.Holders),
		MerkleRoot:  hex.EncodeToString(snap.MerkleRoot),
	}
}
