// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

// Package txsubmit is the client for the transaction submission service. The
// service is assumed at-least-once and not idempotent; the engine's batch
// state machine provides idempotency on top of it.
package txsubmit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Output is one (address, amount) payout inside a transaction.
type Output struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type TxStatus string

const (
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
	TxPending   TxStatus = "pending"
	TxUnknown   TxStatus = "unknown"
)

type Client struct {
	base   string
	client *http.Client
}

func NewClient(base string, httpClient *http.Client) *Client {
	return &Client{base: strings.TrimRight(base, "/"), client: httpClient}
}

// Submit hands one batch of outputs to the service and returns the assigned
// transaction identifier.
func (c *Client) Submit(ctx context.Context, outputs []Output) (string, error) {
	body, err := json.Marshal(struct {
		Outputs []Output `json:"outputs"`
	}{Outputs: outputs})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode outputs")
	}
	req, err := http.NewRequest(http.MethodPost, c.base+"/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build submit request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return "", errors.Wrap(err, "failed to submit transaction")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.Errorf("transaction submit: %s", readBody(resp.Body))
	}

	var out struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "failed to decode submit response")
	}
	if out.TransactionID == "" {
		return "", errors.New("submission service returned no transaction id")
	}
	return out.TransactionID, nil
}

// Status reports the outcome of a previously submitted transaction. A run
// interrupted between submit and acknowledgment calls this before deciding
// whether a batch may be retried.
func (c *Client) Status(ctx context.Context, txID string) (TxStatus, error) {
	req, err := http.NewRequest(http.MethodGet, c.base+"/v1/transactions/"+url.PathEscape(txID), nil)
	if err != nil {
		return TxUnknown, errors.Wrap(err, "failed to build status request")
	}
	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return TxUnknown, errors.Wrap(err, "failed to query transaction status")
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return TxUnknown, nil
	}
	if resp.StatusCode != http.StatusOK {
		return TxUnknown, errors.Errorf("transaction status: %s", readBody(resp.Body))
	}

	var out struct {
		Status TxStatus `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return TxUnknown, errors.Wrap(err, "failed to decode status response")
	}
	switch out.Status {
	case TxConfirmed, TxFailed, TxPending:
		return out.Status, nil
	default:
		return TxUnknown, nil
	}
}

func readBody(r io.Reader) string {
	b, _ := ioutil.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
