// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MetricStatus describes how a single metric fared during one sync run.
type MetricStatus string

const (
	// StatusUploaded means one row was created in the destination table.
	StatusUploaded MetricStatus = "uploaded"
	// StatusSkippedNoConfig means the destination table ID was not
	// configured, so the upload was never attempted.
	StatusSkippedNoConfig MetricStatus = "skipped-no-config"
	// StatusSkippedNoData means the fetch succeeded but returned no usable
	// value for the day.
	StatusSkippedNoData MetricStatus = "skipped-no-data"
	// StatusFetchFailed means the fetch call errored; the failure was
	// logged and the run continued with the remaining metrics.
	StatusFetchFailed MetricStatus = "fetch-failed"
)

// MetricResult is the per-metric outcome of a run.
type MetricResult struct {
	Status MetricStatus `json:"status"`

	// Value is the number that was uploaded. Meaningful only when Status
	// is StatusUploaded.
	Value float64 `json:"value,omitempty"`
}

// SyncReport is the structured outcome of one sync run. It exists so the
// run's result can be asserted on directly instead of parsing log lines.
type SyncReport struct {
	// Date is the calendar day the run synchronized, in YYYY-MM-DD format.
	Date string `json:"date"`

	HeartRate   MetricResult `json:"heart_rate"`
	Respiration MetricResult `json:"respiration"`
}
