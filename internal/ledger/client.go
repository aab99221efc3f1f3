// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

// Package ledger is the client for the ledger query service: the external
// API that answers "who holds the asset, and how much, as of this point".
package ledger

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

// Ref is a stable reference point on the ledger (block height plus hash).
type Ref struct {
	Height int64  `json:"height"`
	Hash   string `json:"hash"`
}

type Client struct {
	base   string
	client *http.Client
}

func NewClient(base string, httpClient *http.Client) *Client {
	return &Client{base: strings.TrimRight(base, "/"), client: httpClient}
}

// Tip returns the latest reference point known to the service.
func (c *Client) Tip(ctx context.Context) (Ref, error) {
	u := c.base + "/v1/tip"
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return Ref{}, errors.Wrap(err, "failed to build tip request")
	}
	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return Ref{}, errors.Wrap(err, "failed to query ledger tip")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Ref{}, errors.Errorf("ledger tip: %s", readBody(resp.Body))
	}
	var out Ref
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Ref{}, errors.Wrap(err, "failed to decode ledger tip")
	}
	return out, nil
}

// Holders returns every address holding a non-zero balance of the asset as
// of ref. The service echoes the height it actually answered for and whether
// the view was point-in-time consistent; any mismatch fails fast with
// reward.ErrInconsistentView instead of returning a spurious set.
func (c *Client) Holders(ctx context.Context, asset string, ref Ref) ([]reward.Holder, error) {
	u := c.base + "/v1/assets/" + url.PathEscape(asset) + "/holders?height=" + strconv.FormatInt(ref.Height, 10)
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build holders request")
	}
	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query holders")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("ledger holders: %s", readBody(resp.Body))
	}

	var out struct {
		Height     int64 `json:"height"`
		Consistent bool  `json:"consistent"`
		Holders    []struct {
			Address string `json:"address"`
			Balance int64  `json:"balance"`
		} `json:"holders"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode holders response")
	}
	if !out.Consistent || out.Height != ref.Height {
		return nil, errors.Wrapf(reward.ErrInconsistentView,
			"requested height %d, served height %d, consistent=%v", ref.Height, out.Height, out.Consistent)
	}

	holders := make([]reward.Holder, 0, len(out.Holders))
	for _, h := range out.Holders {
		holders = append(holders, reward.Holder{Address: h.Address, Balance: h.Balance})
	}
	return holders, nil
}

func readBody(r io.Reader) string {
	b, _ := ioutil.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
