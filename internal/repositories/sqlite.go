package repositories

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"climate-api/internal/models"
	"climate-api/pkg/logger"
	"climate-api/pkg/metrics"
)

//go:embed sql/get-stations.sql
var getStationsSQL string

//go:embed sql/get-precipitation.sql
var getPrecipitationSQL string

//go:embed sql/get-temperature-observations.sql
var getTemperatureObservationsSQL string

//go:embed sql/get-temperature-stats-from.sql
var getTemperatureStatsFromSQL string

//go:embed sql/get-temperature-stats-range.sql
var getTemperatureStatsRangeSQL string

var ErrSchemaMismatch = errors.New("dataset schema mismatch")

// expectedSchema lists the columns every query relies on. Extra columns
// (such as the integer id) are allowed.
var expectedSchema = map[string][]string{
	"station":     {"station", "name", "latitude", "longitude", "elevation"},
	"measurement": {"station", "date", "prcp", "tobs"},
}

type SQLiteRepository struct {
	db *sql.DB
	l  *logger.Logger
}

func NewSQLiteRepository(db *sql.DB, l *logger.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		db: db,
		l:  l,
	}
}

// session checks a dedicated connection out of the pool. Callers must
// release it with a deferred r.release.
func (r *SQLiteRepository) session(ctx context.Context) (*sql.Conn, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire session: %w", err)
	}
	return conn, nil
}

func (r *SQLiteRepository) release(conn *sql.Conn, query string) {
	if err := conn.Close(); err != nil {
		r.l.Warning("failed to release session", map[string]any{"query": query, "err": err})
	}
}

func (r *SQLiteRepository) closeRows(rows *sql.Rows, query string) {
	if err := rows.Close(); err != nil {
		r.l.Warning("failed to close rows", map[string]any{"query": query, "err": err})
	}
}

func (r *SQLiteRepository) Stations(ctx context.Context) (out []models.Station, err error) {
	const query = "stations"
	defer func(start time.Time) { metrics.ObserveQuery(query, start, err) }(time.Now())

	conn, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer r.release(conn, query)

	rows, err := conn.QueryContext(ctx, getStationsSQL)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer r.closeRows(rows, query)

	out = []models.Station{}
	for rows.Next() {
		var s models.Station
		if err = rows.Scan(&s.Code, &s.Name, &s.Latitude, &s.Longitude, &s.Elevation); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stations: %w", err)
	}

	r.l.Debug("stations loaded", map[string]any{"count": len(out)})

	return out, nil
}

// PrecipitationSince returns (date, prcp) pairs on or after from, newest first.
func (r *SQLiteRepository) PrecipitationSince(ctx context.Context, from string) (out []models.Measurement, err error) {
	const query = "precipitation"
	defer func(start time.Time) { metrics.ObserveQuery(query, start, err) }(time.Now())

	conn, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer r.release(conn, query)

	rows, err := conn.QueryContext(ctx, getPrecipitationSQL, from)
	if err != nil {
		return nil, fmt.Errorf("query precipitation: %w", err)
	}
	defer r.closeRows(rows, query)

	out = []models.Measurement{}
	for rows.Next() {
		var (
			m    models.Measurement
			prcp sql.NullFloat64
		)
		if err = rows.Scan(&m.Date, &prcp); err != nil {
			return nil, fmt.Errorf("scan precipitation: %w", err)
		}
		m.Precipitation = nullableFloat(prcp)
		out = append(out, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate precipitation: %w", err)
	}

	r.l.Debug("precipitation loaded", map[string]any{"from": from, "rows": len(out)})

	return out, nil
}

// TemperatureObservations returns the station's readings on or after from in
// storage order.
func (r *SQLiteRepository) TemperatureObservations(ctx context.Context, station, from string) (out []models.TemperatureObservation, err error) {
	const query = "tobs"
	defer func(start time.Time) { metrics.ObserveQuery(query, start, err) }(time.Now())

	conn, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	defer r.release(conn, query)

	rows, err := conn.QueryContext(ctx, getTemperatureObservationsSQL, station, from)
	if err != nil {
		return nil, fmt.Errorf("query temperature observations: %w", err)
	}
	defer r.closeRows(rows, query)

	out = []models.TemperatureObservation{}
	for rows.Next() {
		var o models.TemperatureObservation
		if err = rows.Scan(&o.Date, &o.Temperature); err != nil {
			return nil, fmt.Errorf("scan temperature observation: %w", err)
		}
		out = append(out, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate temperature observations: %w", err)
	}

	r.l.Debug("temperature observations loaded", map[string]any{"station": station, "from": from, "rows": len(out)})

	return out, nil
}

func (r *SQLiteRepository) TemperatureStatsFrom(ctx context.Context, start string) (models.TemperatureStats, error) {
	return r.temperatureStats(ctx, "stats_from", getTemperatureStatsFromSQL, start)
}

func (r *SQLiteRepository) TemperatureStatsBetween(ctx context.Context, start, end string) (models.TemperatureStats, error) {
	return r.temperatureStats(ctx, "stats_range", getTemperatureStatsRangeSQL, start, end)
}

// temperatureStats runs one MIN/AVG/MAX aggregate. SQL aggregates over an
// empty set yield NULL, which maps to nil fields.
func (r *SQLiteRepository) temperatureStats(ctx context.Context, query, stmt string, args ...any) (stats models.TemperatureStats, err error) {
	defer func(start time.Time) { metrics.ObserveQuery(query, start, err) }(time.Now())

	conn, err := r.session(ctx)
	if err != nil {
		return stats, err
	}
	defer r.release(conn, query)

	var minimum, average, maximum sql.NullFloat64
	if err = conn.QueryRowContext(ctx, stmt, args...).Scan(&minimum, &average, &maximum); err != nil {
		return stats, fmt.Errorf("query temperature stats: %w", err)
	}

	stats = models.TemperatureStats{
		Minimum: nullableFloat(minimum),
		Average: nullableFloat(average),
		Maximum: nullableFloat(maximum),
	}

	return stats, nil
}

// CheckSchema verifies that the dataset has every table and column the
// queries use. It is meant to run once at startup.
func (r *SQLiteRepository) CheckSchema(ctx context.Context) error {
	conn, err := r.session(ctx)
	if err != nil {
		return err
	}
	defer r.release(conn, "schema")

	for _, table := range []string{"station", "measurement"} {
		columns, err := tableColumns(ctx, conn, table)
		if err != nil {
			return err
		}
		if len(columns) == 0 {
			return fmt.Errorf("%w: table %q not found", ErrSchemaMismatch, table)
		}

		var missing []string
		for _, col := range expectedSchema[table] {
			if _, ok := columns[col]; !ok {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: table %q is missing columns %s", ErrSchemaMismatch, table, strings.Join(missing, ", "))
		}
	}

	r.l.Info("dataset schema verified", map[string]any{"tables": len(expectedSchema)})

	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// tableColumns returns the column names of table; an empty set means the
// table does not exist. table is never user input.
func tableColumns(ctx context.Context, conn *sql.Conn, table string) (map[string]struct{}, error) {
	rows, err := conn.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var (
			cid      int
			name     string
			colType  string
			notNull  int
			defValue sql.NullString
			pk       int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defValue, &pk); err != nil {
			return nil, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		columns[strings.ToLower(name)] = struct{}{}
	}

	return columns, rows.Err()
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
