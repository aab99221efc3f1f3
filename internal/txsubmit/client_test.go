// Copyright 2026 Cognosis Network Ltd.
// All rights reserved.
// This material is licensed under the Cognosis License version 1.0,
// available at https://github.com/cognosis-network/reward-engine/blob/master/LICENSE.md.

package txsubmit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Submit(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/transactions", r.URL.Path)

		var in struct {
			Outputs []Output `json:"outputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Len(t, in.Outputs, 2)
		require.Equal(t, Output{Address: "addr1", Amount: 900}, in.Outputs[0])

		_ = json.NewEncoder(w).Encode(map[string]string{"transaction_id": "tx-abc"})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	txID, err := c.Submit(context.Background(), []Output{
		{Address: "addr1", Amount: 900},
		{Address: "addr2", Amount: 100},
	})
	require.NoError(t, err)
	require.Equal(t, "tx-abc", txID)
}

func TestClient_Submit_MissingTransactionID(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.Submit(context.Background(), []Output{{Address: "a", Amount: 1}})
	require.Error(t, err)
}

func TestClient_Status(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		code     int
		body     string
		expected TxStatus
	}{
		{"confirmed", http.StatusOK, `{"status":"confirmed"}`, TxConfirmed},
		{"failed", http.StatusOK, `{"status":"failed"}`, TxFailed},
		{"pending", http.StatusOK, `{"status":"pending"}`, TxPending},
		{"unknown value", http.StatusOK, `{"status":"weird"}`, TxUnknown},
		{"not found", http.StatusNotFound, ``, TxUnknown},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/v1/transactions/tx-abc", r.URL.Path)
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			c := NewClient(ts.URL, ts.Client())
			status, err := c.Status(context.Background(), "tx-abc")
			require.NoError(t, err)
			require.Equal(t, tc.expected, status)
		})
	}
}
