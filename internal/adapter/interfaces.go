// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the two external
// services the application talks to: Garmin Connect (read-only source of
// daily health metrics) and Notion (write-only destination tables).
//
// The abstractions are [FitnessAdapter] and [NotesAdapter], which decouple
// the service layer from the wire protocols. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrUnauthorized] for a rejected login or token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-health-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapters_mock.go -package=mock

// FitnessAdapter defines the read side of the sync: an authenticated
// session against the fitness-tracking service.
type FitnessAdapter interface {
	// Login establishes the session by exchanging the configured
	// credentials for an access token. It must be called before the data
	// fetches. A rejected login maps to [ErrUnauthorized].
	Login(ctx context.Context) error

	// GetHeartRates fetches the heart-rate summary for one calendar day
	// (YYYY-MM-DD).
	GetHeartRates(ctx context.Context, day string) (models.HeartRateSummary, error)

	// GetRespiration fetches the ordered respiration samples for one
	// calendar day (YYYY-MM-DD).
	GetRespiration(ctx context.Context, day string) ([]models.RespirationSample, error)
}

// NotesAdapter defines the write side of the sync: row creation in the
// notes service. No read operations exist; the application is write-only
// toward this service.
type NotesAdapter interface {
	// CreatePage creates one row in the database identified by databaseID
	// with the given typed property values.
	CreatePage(ctx context.Context, databaseID string, properties models.PageProperties) error
}
