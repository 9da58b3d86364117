// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RespirationSample is one sub-daily averaged breathing-rate reading from
// the Garmin respiration endpoint. A day's data is an ordered slice of
// these samples.
type RespirationSample struct {
	// StartTimeGMT is the start of the interval the sample averages over.
	StartTimeGMT string `json:"startTimeGMT"`

	// Value is the averaged respiration rate in breaths per minute for the
	// interval, or nil when the device recorded nothing. Nil samples are
	// excluded from aggregation, never counted as zero.
	Value *float64 `json:"averageRespirationValue"`
}
