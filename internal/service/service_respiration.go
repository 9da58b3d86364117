// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-health-sync/models"
)

// AverageRespiration returns the arithmetic mean of the present sample
// values: the sum of non-nil values divided by their count. Samples with a
// nil value are excluded from both sum and count, never treated as zero.
//
// The second return value is false when samples is empty or every value is
// nil; in that case there is no meaningful average and the caller should
// skip the metric. No rounding happens here; callers round at the point of
// output if they need to.
func AverageRespiration(samples []models.RespirationSample) (float64, bool) {
	var total float64
	var count int

	for _, sample := range samples {
		if sample.Value == nil {
			continue
		}
		total += *sample.Value
		count++
	}

	if count == 0 {
		return 0, false
	}

	return total / float64(count), true
}
