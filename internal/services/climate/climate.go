package climate

import (
	"context"

	"github.com/pkg/errors"

	"climate-api/config"
	"climate-api/internal/models"
	"climate-api/internal/repositories"
	"climate-api/pkg/logger"
)

// ClimateService shapes dataset reads into response values.
type ClimateService struct {
	repo        repositories.ClimateRepository
	windowStart string
	tobsStation string
	l           *logger.Logger
}

func NewClimateService(repo repositories.ClimateRepository, cfg config.ClimateConfig, l *logger.Logger) (*ClimateService, error) {
	windowStart, err := cfg.WindowStart()
	if err != nil {
		return nil, errors.Wrapf(err, "window end %q", cfg.WindowEnd)
	}

	return &ClimateService{
		repo:        repo,
		windowStart: windowStart,
		tobsStation: cfg.TobsStation,
		l:           l,
	}, nil
}

// WindowStart is the first date covered by the precipitation and tobs routes.
func (s *ClimateService) WindowStart() string {
	return s.windowStart
}

// Precipitation folds the last year of readings into a date-keyed map. Rows
// arrive newest first and a later row overwrites an earlier one for the same
// date, so only one station's reading survives per day.
func (s *ClimateService) Precipitation(ctx context.Context) (models.Precipitation, error) {
	rows, err := s.repo.PrecipitationSince(ctx, s.windowStart)
	if err != nil {
		return nil, errors.Wrap(err, "precipitation")
	}

	out := make(models.Precipitation, len(rows))
	for _, row := range rows {
		out[row.Date] = row.Precipitation
	}

	s.l.Debug("precipitation folded", map[string]any{
		"from": s.windowStart,
		"rows": len(rows),
		"days": len(out),
	})

	return out, nil
}

func (s *ClimateService) Stations(ctx context.Context) ([]models.Station, error) {
	stations, err := s.repo.Stations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "stations")
	}
	return stations, nil
}

func (s *ClimateService) TemperatureObservations(ctx context.Context) ([]models.TemperatureObservation, error) {
	obs, err := s.repo.TemperatureObservations(ctx, s.tobsStation, s.windowStart)
	if err != nil {
		return nil, errors.Wrap(err, "temperature observations")
	}
	return obs, nil
}

// TemperatureStatsFrom aggregates every reading on or after start. start is
// not validated: anything that is not a YYYY-MM-DD date simply matches
// nothing (or everything) under string comparison.
func (s *ClimateService) TemperatureStatsFrom(ctx context.Context, start string) ([]models.TemperatureStats, error) {
	stats, err := s.repo.TemperatureStatsFrom(ctx, start)
	if err != nil {
		return nil, errors.Wrapf(err, "temperature stats from %q", start)
	}
	return []models.TemperatureStats{stats}, nil
}

func (s *ClimateService) TemperatureStatsBetween(ctx context.Context, start, end string) ([]models.TemperatureStats, error) {
	stats, err := s.repo.TemperatureStatsBetween(ctx, start, end)
	if err != nil {
		return nil, errors.Wrapf(err, "temperature stats %q..%q", start, end)
	}
	return []models.TemperatureStats{stats}, nil
}

// Ready reports whether the dataset is reachable.
func (s *ClimateService) Ready(ctx context.Context) bool {
	if err := s.repo.Ping(ctx); err != nil {
		s.l.Warning("dataset not reachable", map[string]any{"err": err})
		return false
	}
	return true
}
