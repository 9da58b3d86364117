// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the application logic of the health sync: the
// respiration aggregation and the orchestrator that sequences one run.
package service

import (
	"context"

	"github.com/MKhiriev/go-health-sync/models"
)

// SyncService runs one single-shot synchronization of today's health
// metrics from the fitness service into the notes service.
type SyncService interface {
	// Run executes the full sequence: login, fetch heart rate, upload,
	// fetch respiration, aggregate, upload. Fetch failures are logged and
	// reflected in the report; login and upload failures abort the run.
	Run(ctx context.Context) (models.SyncReport, error)
}
