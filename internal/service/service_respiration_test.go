// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-health-sync/models"
)

// sample is a shorthand constructor for a present-valued sample used only
// in tests.
func sample(v float64) models.RespirationSample {
	return models.RespirationSample{Value: &v}
}

// gap is a sample without a recorded value.
func gap() models.RespirationSample {
	return models.RespirationSample{}
}

func TestAverageRespiration_Matrix(t *testing.T) {
	tests := []struct {
		name    string
		samples []models.RespirationSample
		want    float64
		wantOK  bool
	}{
		{
			name:    "NilSlice → NoValue",
			samples: nil,
			wantOK:  false,
		},
		{
			name:    "EmptySlice → NoValue",
			samples: []models.RespirationSample{},
			wantOK:  false,
		},
		{
			name:    "AllValuesAbsent → NoValue",
			samples: []models.RespirationSample{gap(), gap(), gap()},
			wantOK:  false,
		},
		{
			name:    "SingleValue",
			samples: []models.RespirationSample{sample(14)},
			want:    14,
			wantOK:  true,
		},
		{
			name:    "AbsentValuesExcludedNotZero",
			samples: []models.RespirationSample{sample(14), gap(), sample(16)},
			want:    15,
			wantOK:  true,
		},
		{
			name:    "LeadingAndTrailingGaps",
			samples: []models.RespirationSample{gap(), sample(12), sample(18), gap()},
			want:    15,
			wantOK:  true,
		},
		{
			name:    "FractionalMean",
			samples: []models.RespirationSample{sample(14), sample(15)},
			want:    14.5,
			wantOK:  true,
		},
		{
			name:    "ZeroIsAPresentValue",
			samples: []models.RespirationSample{sample(0), sample(16)},
			want:    8,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AverageRespiration(tt.samples)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

// TestAverageRespiration_OrderInsensitive checks that the mean does not
// depend on the ordering of present and absent entries.
func TestAverageRespiration_OrderInsensitive(t *testing.T) {
	forward := []models.RespirationSample{sample(10), gap(), sample(20), sample(30)}
	backward := []models.RespirationSample{sample(30), sample(20), gap(), sample(10)}

	gotForward, okForward := AverageRespiration(forward)
	gotBackward, okBackward := AverageRespiration(backward)

	assert.True(t, okForward)
	assert.True(t, okBackward)
	assert.Equal(t, gotForward, gotBackward)
	assert.InDelta(t, 20.0, gotForward, 1e-9)
}
