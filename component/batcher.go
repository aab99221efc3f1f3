// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package component

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognosis-network/reward-engine/configuration"
	"github.com/cognosis-network/reward-engine/internal/app/reward"
	"github.com/cognosis-network/reward-engine/internal/pkg/cycle"
	"github.com/cognosis-network/reward-engine/internal/txsubmit"
	"github.com/cognosis-network/reward-engine/observability"
)

// makeBatcher returns the sequential batch submitter. Batches may draw from
// a shared funding source whose available balance only settles after prior
// batches land, so within one run submission order is a hard guarantee, and
// a failed batch halts everything behind it.
func makeBatcher(
	cfg *configuration.Configuration,
	obs *observability.Observability,
	tx TxSubmitter,
	storage Storage,
) func(context.Context, []*reward.Batch) error {
	log := obs.Log()
	confirmedMetric := obs.Counter(prometheus.CounterOpts{
		Name: "reward_batches_confirmed_total",
		Help: "Number of batches confirmed by the submission service.",
	})
	failedMetric := obs.Counter(prometheus.CounterOpts{
		Name: "reward_batches_failed_total",
		Help: "Number of batches the submission service failed.",
	})

	return func(ctx context.Context, batches []*reward.Batch) error {
		if err := resolveSubmitted(ctx, tx, storage, batches, cfg, obs); err != nil {
			return err
		}

		for _, b := range batches {
			blog := log.WithField("period", b.Period).WithField("batch_index", b.Index)
			if b.Status == reward.BatchConfirmed {
				blog.Debug("batch already confirmed, skipping")
				continue
			}

			b.Status = reward.BatchSubmitted
			b.TransactionID = ""
			if err := storage.UpdateBatch(b); err != nil {
				return err
			}

			outputs := make([]txsubmit.Output, len(b.Entries))
			for i, e := range b.Entries {
				outputs[i] = txsubmit.Output{Address: e.Address, Amount: e.Amount}
			}

			var txID string
			err := cycle.UntilError(func() error {
				var err error
				txID, err = tx.Submit(ctx, outputs)
				return err
			}, cfg.Submitter.AttemptInterval, cfg.Submitter.Attempts, log)
			if err != nil {
				b.Status = reward.BatchFailed
				if uerr := storage.UpdateBatch(b); uerr != nil {
					blog.Errorf("failed to record batch failure: %+v", uerr)
				}
				failedMetric.Inc()
				logPartialSubmission(obs, batches)
				return errors.Wrapf(err, "batch %d of period %d failed, halting later batches", b.Index, b.Period)
			}

			b.Status = reward.BatchConfirmed
			b.TransactionID = txID
			if err := storage.UpdateBatch(b); err != nil {
				return err
			}
			confirmedMetric.Inc()
			blog.WithField("tx_id", txID).Info("batch confirmed")
		}
		return nil
	}
}

// resolveSubmitted settles batches an interrupted run left in submitted
// state before anything is retried or newly submitted: without the outcome
// of those transactions a retry could pay twice.
func resolveSubmitted(
	ctx context.Context,
	tx TxSubmitter,
	storage Storage,
	batches []*reward.Batch,
	cfg *configuration.Configuration,
	obs *observability.Observability,
) error {
	log := obs.Log()
	for _, b := range batches {
		if b.Status != reward.BatchSubmitted {
			continue
		}
		blog := log.WithField("period", b.Period).WithField("batch_index", b.Index)

		if b.TransactionID == "" {
			// The run died between persisting the submitted state and the
			// service assigning an identifier: nothing to query, retry.
			b.Status = reward.BatchFailed
			if err := storage.UpdateBatch(b); err != nil {
				return err
			}
			blog.Warn("submitted batch without transaction id, marked for retry")
			continue
		}

		var status txsubmit.TxStatus
		err := cycle.UntilError(func() error {
			var err error
			status, err = tx.Status(ctx, b.TransactionID)
			return err
		}, cfg.Submitter.AttemptInterval, cfg.Submitter.Attempts, log)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve batch %d of period %d", b.Index, b.Period)
		}

		switch status {
		case txsubmit.TxConfirmed:
			b.Status = reward.BatchConfirmed
		case txsubmit.TxFailed, txsubmit.TxUnknown:
			b.Status = reward.BatchFailed
		case txsubmit.TxPending:
			return errors.Errorf("batch %d of period %d is still pending at the submission service, try again later",
				b.Index, b.Period)
		}
		if err := storage.UpdateBatch(b); err != nil {
			return err
		}
		blog.WithField("tx_id", b.TransactionID).
			WithField("status", b.Status).
			Info("resolved interrupted batch")
	}
	return nil
}

// logPartialSubmission spells out which batches are settled and which are
// not, so an operator can retry safely and informed.
func logPartialSubmission(obs *observability.Observability, batches []*reward.Batch) {
	var confirmed, pending []int
	for _, b := range batches {
		if b.Status == reward.BatchConfirmed {
			confirmed = append(confirmed, b.Index)
		} else {
			pending = append(pending, b.Index)
		}
	}
	if len(batches) > 0 {
		obs.Log().WithField("period", batches[0].Period).
			WithField("confirmed_batches", confirmed).
			WithField("unsettled_batches", pending).
			Error("partial submission, run halted")
	}
}
