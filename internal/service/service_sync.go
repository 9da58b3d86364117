package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-health-sync/internal/adapter"
	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

// Notion property names of the destination tables. These must match the
// column names in the user's databases exactly.
const (
	datePropertyName               = "Date"
	restingHeartRatePropertyName   = "Resting Heart Rate"
	averageRespirationPropertyName = "Average Respiration"
)

type healthSyncService struct {
	fitness adapter.FitnessAdapter
	notes   adapter.NotesAdapter
	tables  config.Notion
	log     *logger.Logger

	now func() time.Time
}

// NewHealthSyncService wires the orchestrator. tables supplies the two
// destination database IDs; an empty ID disables that metric's upload
// without affecting the rest of the run.
func NewHealthSyncService(fitness adapter.FitnessAdapter, notes adapter.NotesAdapter, tables config.Notion, log *logger.Logger) SyncService {
	return &healthSyncService{
		fitness: fitness,
		notes:   notes,
		tables:  tables,
		log:     log,
		now:     time.Now,
	}
}

// Run executes the five sequential steps for the current local calendar
// date. The two metrics are independent: no transaction spans the uploads,
// and a heart-rate outcome of any kind still lets respiration proceed.
func (s *healthSyncService) Run(ctx context.Context) (models.SyncReport, error) {
	if err := s.fitness.Login(ctx); err != nil {
		return models.SyncReport{}, fmt.Errorf("fitness service login: %w", err)
	}

	day := s.now().Format("2006-01-02")
	report := models.SyncReport{Date: day}

	var err error
	report.HeartRate, err = s.syncHeartRate(ctx, day)
	if err != nil {
		return report, err
	}

	report.Respiration, err = s.syncRespiration(ctx, day)
	if err != nil {
		return report, err
	}

	return report, nil
}

// syncHeartRate fetches the day's heart-rate summary and creates one row
// in the heart-rate table, only when the day has a record at all and the
// table is configured. A fetch failure is logged and absorbed; an upload
// failure is returned and aborts the run.
func (s *healthSyncService) syncHeartRate(ctx context.Context, day string) (models.MetricResult, error) {
	summary, err := s.fitness.GetHeartRates(ctx, day)
	if err != nil {
		s.log.Error().Err(err).Str("date", day).Msg("could not fetch heart-rate data")
		return models.MetricResult{Status: models.StatusFetchFailed}, nil
	}

	if summary.IsEmpty() {
		return models.MetricResult{Status: models.StatusSkippedNoData}, nil
	}

	if s.tables.HeartRateDBID == "" {
		return models.MetricResult{Status: models.StatusSkippedNoConfig}, nil
	}

	// An absent resting rate uploads as 0, conflating "no reading" with a
	// true zero. Kept for parity with the rows already in the table.
	resting := 0
	if summary.RestingHeartRate != nil {
		resting = *summary.RestingHeartRate
	}

	props := models.PageProperties{
		datePropertyName:             models.NewDateProperty(day),
		restingHeartRatePropertyName: models.NewNumberProperty(float64(resting)),
	}
	if err = s.notes.CreatePage(ctx, s.tables.HeartRateDBID, props); err != nil {
		return models.MetricResult{}, fmt.Errorf("upload heart-rate row for %s: %w", day, err)
	}

	success := s.log.Info().Str("date", day).Int("resting_heart_rate", resting)
	if summary.MinHeartRate != nil {
		success = success.Int("min_heart_rate", *summary.MinHeartRate)
	}
	if summary.MaxHeartRate != nil {
		success = success.Int("max_heart_rate", *summary.MaxHeartRate)
	}
	success.Msg("uploaded heart-rate data")
	return models.MetricResult{Status: models.StatusUploaded, Value: float64(resting)}, nil
}

// syncRespiration fetches the day's respiration samples, averages them,
// and creates one row in the respiration table with the mean rounded to
// two decimal places. Days where every sample is empty create no row.
func (s *healthSyncService) syncRespiration(ctx context.Context, day string) (models.MetricResult, error) {
	samples, err := s.fitness.GetRespiration(ctx, day)
	if err != nil {
		s.log.Error().Err(err).Str("date", day).Msg("could not fetch respiration data")
		return models.MetricResult{Status: models.StatusFetchFailed}, nil
	}

	if s.tables.RespirationDBID == "" {
		return models.MetricResult{Status: models.StatusSkippedNoConfig}, nil
	}

	avg, ok := AverageRespiration(samples)
	if !ok {
		return models.MetricResult{Status: models.StatusSkippedNoData}, nil
	}
	avg = math.Round(avg*100) / 100

	props := models.PageProperties{
		datePropertyName:               models.NewDateProperty(day),
		averageRespirationPropertyName: models.NewNumberProperty(avg),
	}
	if err = s.notes.CreatePage(ctx, s.tables.RespirationDBID, props); err != nil {
		return models.MetricResult{}, fmt.Errorf("upload respiration row for %s: %w", day, err)
	}

	s.log.Info().Str("date", day).Float64("average_respiration", avg).Msg("uploaded respiration data")
	return models.MetricResult{Status: models.StatusUploaded, Value: avg}, nil
}
