package repositories

import (
	"context"
	"database/sql"

	"climate-api/internal/models"
	"climate-api/pkg/logger"
)

// ClimateRepository reads the station/measurement dataset. Dates are
// compared as YYYY-MM-DD strings and are passed through unvalidated.
type ClimateRepository interface {
	Stations(ctx context.Context) ([]models.Station, error)
	PrecipitationSince(ctx context.Context, from string) ([]models.Measurement, error)
	TemperatureObservations(ctx context.Context, station, from string) ([]models.TemperatureObservation, error)
	TemperatureStatsFrom(ctx context.Context, start string) (models.TemperatureStats, error)
	TemperatureStatsBetween(ctx context.Context, start, end string) (models.TemperatureStats, error)
	CheckSchema(ctx context.Context) error
	Ping(ctx context.Context) error
}

func InitClimateRepository(db *sql.DB, l *logger.Logger) ClimateRepository {
	return NewSQLiteRepository(db, l)
}
