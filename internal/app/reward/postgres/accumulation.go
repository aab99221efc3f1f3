// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package postgres

import (
	"github.com/go-pg/pg/orm"
	"github.com/pkg/errors"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

type AccumulationStorage struct {
	db orm.DB
}

func NewAccumulationStorage(db orm.DB) *AccumulationStorage {
	return &AccumulationStorage{db: db}
}

// Insert persists the carry-forward state of one period. States hold no
// zero entries, so an all-paid period simply writes no rows.
func (a *AccumulationStorage) Insert(state reward.AccumulationState) error {
	for addr, amount := range state.Owed {
		row := &AccumulationModel{
			Period:  state.Period,
			Address: addr,
			Amount:  amount,
		}
		if err := a.db.Insert(row); err != nil {
			return errors.Wrapf(err, "failed to insert accumulation for %s in period %d", addr, state.Period)
		}
	}
	return nil
}

// ByPeriod loads the carry-forward state written by the given period. Zero
// rows is a valid state (everything cleared the threshold).
func (a *AccumulationStorage) ByPeriod(period int64) (reward.AccumulationState, error) {
	var rows []AccumulationModel
	err := a.db.Model(&rows).Where("period = ?", period).Select()
	if err != nil {
		return reward.AccumulationState{}, errors.Wrapf(err, "failed to select accumulations for period %d", period)
	}
	state := reward.NewAccumulationState(period)
	for _, r := range rows {
		state.Owed[r.Address] = r.Amount
	}
	return state, nil
}
