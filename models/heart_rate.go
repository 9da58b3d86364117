// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HeartRateSummary is the daily heart-rate record returned by the Garmin
// wellness endpoint for a single calendar date.
//
// RestingHeartRate is a pointer because Garmin omits the field for days
// without enough data; a nil value means "no reading", which is not the
// same thing as a reading of zero.
type HeartRateSummary struct {
	// CalendarDate is the day the summary covers, in YYYY-MM-DD format.
	CalendarDate string `json:"calendarDate"`

	// RestingHeartRate is the lowest sustained heart rate for the day in
	// beats per minute, or nil when Garmin reported no value.
	RestingHeartRate *int `json:"restingHeartRate"`

	// MinHeartRate and MaxHeartRate are the daily extremes in beats per
	// minute, logged alongside a successful upload.
	MinHeartRate *int `json:"minHeartRate"`
	MaxHeartRate *int `json:"maxHeartRate"`
}

// IsEmpty reports whether the summary carries no data at all. An untracked
// day comes back from the endpoint as null or an empty object, which
// decodes to the zero value; such a day has no heart-rate record, as
// opposed to a present record whose resting field happens to be nil.
func (s HeartRateSummary) IsEmpty() bool {
	return s.CalendarDate == "" &&
		s.RestingHeartRate == nil &&
		s.MinHeartRate == nil &&
		s.MaxHeartRate == nil
}
