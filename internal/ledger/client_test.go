// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/cognosis-network/reward-engine/internal/app/reward"
)

func TestClient_Tip(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/tip", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Ref{Height: 123456, Hash: "deadbeef"})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	ref, err := c.Tip(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(123456), ref.Height)
	require.Equal(t, "deadbeef", ref.Hash)
}

func TestClient_Holders(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/assets/cognosis/holders", r.URL.Path)
		require.Equal(t, "77", r.URL.Query().Get("height"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"height":     77,
			"consistent": true,
			"holders": []map[string]interface{}{
				{"address": "addr1", "balance": 900},
				{"address": "addr2", "balance": 100},
			},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	holders, err := c.Holders(context.Background(), "cognosis", Ref{Height: 77})
	require.NoError(t, err)
	require.Equal(t, []reward.Holder{
		{Address: "addr1", Balance: 900},
		{Address: "addr2", Balance: 100},
	}, holders)
}

func TestClient_Holders_InconsistentView(t *testing.T) {
	t.Parallel()

	t.Run("height moved", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"height": 78, "consistent": true,
				"holders": []map[string]interface{}{{"address": "a", "balance": 1}},
			})
		}))
		defer ts.Close()

		c := NewClient(ts.URL, ts.Client())
		_, err := c.Holders(context.Background(), "cognosis", Ref{Height: 77})
		require.Equal(t, reward.ErrInconsistentView, errors.Cause(err))
	})

	t.Run("service flags unstable view", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"height": 77, "consistent": false,
				"holders": []map[string]interface{}{{"address": "a", "balance": 1}},
			})
		}))
		defer ts.Close()

		c := NewClient(ts.URL, ts.Client())
		_, err := c.Holders(context.Background(), "cognosis", Ref{Height: 77})
		require.Equal(t, reward.ErrInconsistentView, errors.Cause(err))
	})
}

func TestClient_Holders_ServerError(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.Holders(context.Background(), "cognosis", Ref{Height: 1})
	require.Error(t, err)
	require.NotEqual(t, reward.ErrInconsistentView, errors.Cause(err))
}
