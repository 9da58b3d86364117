// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

func newTestNotion(t *testing.T, serverURL string) *notionAdapter {
	t.Helper()
	cfg := config.Notion{Token: "ntn_token", BaseURL: serverURL}

	a := NewNotionAdapter(cfg, config.HTTP{}, logger.Nop())
	return a.(*notionAdapter)
}

func TestCreatePage_Success(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, "Bearer ntn_token", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"object":"page","id":"page-id"}`))
	}))
	defer srv.Close()

	a := newTestNotion(t, srv.URL)
	props := models.PageProperties{
		"Date":               models.NewDateProperty("2026-08-23"),
		"Resting Heart Rate": models.NewNumberProperty(48),
	}

	err := a.CreatePage(context.Background(), "hr-db-id", props)

	require.NoError(t, err)
	parent, ok := gotBody["parent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hr-db-id", parent["database_id"])

	properties, ok := gotBody["properties"].(map[string]any)
	require.True(t, ok)
	date := properties["Date"].(map[string]any)["date"].(map[string]any)
	assert.Equal(t, "2026-08-23", date["start"])
	number := properties["Resting Heart Rate"].(map[string]any)["number"]
	assert.Equal(t, 48.0, number)
}

func TestCreatePage_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	a := newTestNotion(t, srv.URL)
	err := a.CreatePage(context.Background(), "hr-db-id", models.PageProperties{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreatePage_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"validation_error","message":"Date is not a property that exists"}`))
	}))
	defer srv.Close()

	a := newTestNotion(t, srv.URL)
	err := a.CreatePage(context.Background(), "hr-db-id", models.PageProperties{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "validation_error")
}

func TestCreatePage_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"code":"rate_limited"}`))
	}))
	defer srv.Close()

	a := newTestNotion(t, srv.URL)
	err := a.CreatePage(context.Background(), "hr-db-id", models.PageProperties{})

	// No retry happens; the mapped error surfaces to the caller as-is.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyRequests)
}
