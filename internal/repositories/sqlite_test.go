package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-api/internal/models"
	"climate-api/pkg/database"
	"climate-api/pkg/logger"
)

// Same shape as the Hawaii dataset: both tables carry an integer id.
const testSchema = `
CREATE TABLE station (
  id        INTEGER NOT NULL PRIMARY KEY,
  station   TEXT,
  name      TEXT,
  latitude  FLOAT,
  longitude FLOAT,
  elevation FLOAT
);
CREATE TABLE measurement (
  id      INTEGER NOT NULL PRIMARY KEY,
  station TEXT,
  date    TEXT,
  prcp    FLOAT,
  tobs    FLOAT
);
`

const testData = `
INSERT INTO station (station, name, latitude, longitude, elevation) VALUES
  ('USC00519397', 'WAIKIKI 717.2, HI US', 21.2716, -157.8168, 3.0),
  ('USC00513117', 'KANEOHE 838.1, HI US', 21.4234, -157.8015, 14.6),
  ('USC00519281', 'WAIHEE 837.5, HI US', 21.45167, -157.84889, 32.9);

INSERT INTO measurement (station, date, prcp, tobs) VALUES
  ('USC00519281', '2016-08-22', 0.40, 70),
  ('USC00519281', '2016-08-23', 1.79, 77),
  ('USC00519397', '2016-08-23', 0.00, 81),
  ('USC00519281', '2016-12-31', NULL, 66),
  ('USC00513117', '2017-01-01', 0.03, 62),
  ('USC00519281', '2017-01-09', 0.00, 68),
  ('USC00519281', '2017-01-10', 0.12, 72),
  ('USC00513117', '2017-08-23', 0.00, 82),
  ('USC00519397', '2017-08-23', 0.08, 81);
`

func setupTestDB(t *testing.T, ddl ...string) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hawaii.sqlite")
	rw, err := sql.Open(database.DriverName, path)
	require.NoError(t, err)
	for _, stmt := range ddl {
		_, err = rw.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, rw.Close())

	db, err := database.Open(context.Background(), database.Options{Path: path, MaxOpenConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
	})

	return db
}

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	return NewSQLiteRepository(setupTestDB(t, testSchema, testData), logger.NewNop())
}

func ptr(f float64) *float64 { return &f }

func TestInitClimateRepository(t *testing.T) {
	repo := InitClimateRepository(setupTestDB(t, testSchema), logger.NewNop())
	assert.NotNil(t, repo)
}

func TestStations(t *testing.T) {
	repo := newTestRepository(t)

	stations, err := repo.Stations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 3)

	// storage order, no sorting
	assert.Equal(t, models.Station{
		Code:      "USC00519397",
		Name:      "WAIKIKI 717.2, HI US",
		Latitude:  21.2716,
		Longitude: -157.8168,
		Elevation: 3.0,
	}, stations[0])
	assert.Equal(t, "USC00513117", stations[1].Code)
	assert.Equal(t, "USC00519281", stations[2].Code)

	seen := map[string]bool{}
	for _, s := range stations {
		assert.False(t, seen[s.Code], "duplicate station %s", s.Code)
		seen[s.Code] = true
	}
}

func TestStations_Empty(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t, testSchema), logger.NewNop())

	stations, err := repo.Stations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stations)
	assert.Empty(t, stations)
}

func TestPrecipitationSince(t *testing.T) {
	repo := newTestRepository(t)

	rows, err := repo.PrecipitationSince(context.Background(), "2016-08-23")
	require.NoError(t, err)
	require.Len(t, rows, 8)

	// newest first
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Date, rows[i].Date)
	}
	assert.Equal(t, "2017-08-23", rows[0].Date)
	assert.Equal(t, "2016-08-23", rows[len(rows)-1].Date)

	var sawNull bool
	for _, r := range rows {
		if r.Date == "2016-12-31" {
			assert.Nil(t, r.Precipitation)
			sawNull = true
		}
	}
	assert.True(t, sawNull)
}

func TestTemperatureObservations(t *testing.T) {
	repo := newTestRepository(t)

	obs, err := repo.TemperatureObservations(context.Background(), "USC00519281", "2016-08-23")
	require.NoError(t, err)

	assert.Equal(t, []models.TemperatureObservation{
		{Date: "2016-08-23", Temperature: 77},
		{Date: "2016-12-31", Temperature: 66},
		{Date: "2017-01-09", Temperature: 68},
		{Date: "2017-01-10", Temperature: 72},
	}, obs)
}

func TestTemperatureObservations_UnknownStation(t *testing.T) {
	repo := newTestRepository(t)

	obs, err := repo.TemperatureObservations(context.Background(), "NOPE", "2016-08-23")
	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestTemperatureStatsFrom(t *testing.T) {
	repo := newTestRepository(t)

	stats, err := repo.TemperatureStatsFrom(context.Background(), "2017-08-23")
	require.NoError(t, err)
	assert.Equal(t, models.TemperatureStats{Minimum: ptr(81), Average: ptr(81.5), Maximum: ptr(82)}, stats)
}

func TestTemperatureStatsBetween_SingleDay(t *testing.T) {
	repo := newTestRepository(t)

	stats, err := repo.TemperatureStatsBetween(context.Background(), "2016-08-23", "2016-08-23")
	require.NoError(t, err)
	assert.Equal(t, models.TemperatureStats{Minimum: ptr(77), Average: ptr(79), Maximum: ptr(81)}, stats)
}

func TestTemperatureStats_NoRowsYieldsNulls(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query func() (models.TemperatureStats, error)
	}{
		{"start after dataset", func() (models.TemperatureStats, error) { return repo.TemperatureStatsFrom(ctx, "2018-01-01") }},
		{"malformed start", func() (models.TemperatureStats, error) { return repo.TemperatureStatsFrom(ctx, "tomorrow") }},
		{"inverted range", func() (models.TemperatureStats, error) {
			return repo.TemperatureStatsBetween(ctx, "2017-08-23", "2016-08-23")
		}},
		{"range with no readings", func() (models.TemperatureStats, error) {
			return repo.TemperatureStatsBetween(ctx, "2017-02-01", "2017-02-28")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := tt.query()
			require.NoError(t, err)
			assert.Nil(t, stats.Minimum)
			assert.Nil(t, stats.Average)
			assert.Nil(t, stats.Maximum)
		})
	}
}

func TestTemperatureStats_LexicographicBoundaries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// 2017-01-09 < 2017-01-10 must hold as strings
	stats, err := repo.TemperatureStatsBetween(ctx, "2017-01-09", "2017-01-09")
	require.NoError(t, err)
	assert.Equal(t, ptr(68), stats.Maximum)

	stats, err = repo.TemperatureStatsFrom(ctx, "2017-01-10")
	require.NoError(t, err)
	assert.Equal(t, ptr(72), stats.Minimum)

	// year rollover
	stats, err = repo.TemperatureStatsBetween(ctx, "2016-12-31", "2017-01-01")
	require.NoError(t, err)
	assert.Equal(t, ptr(62), stats.Minimum)
	assert.Equal(t, ptr(66), stats.Maximum)
}

func TestCheckSchema(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.CheckSchema(context.Background()))
}

func TestCheckSchema_Mismatch(t *testing.T) {
	tests := []struct {
		name    string
		ddl     string
		wantErr string
	}{
		{
			name:    "missing table",
			ddl:     `CREATE TABLE station (station TEXT, name TEXT, latitude FLOAT, longitude FLOAT, elevation FLOAT);`,
			wantErr: `table "measurement" not found`,
		},
		{
			name: "missing column",
			ddl: `CREATE TABLE station (station TEXT, name TEXT, latitude FLOAT, longitude FLOAT, elevation FLOAT);
CREATE TABLE measurement (station TEXT, date TEXT, tobs FLOAT);`,
			wantErr: "missing columns prcp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewSQLiteRepository(setupTestDB(t, tt.ddl), logger.NewNop())

			err := repo.CheckSchema(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaMismatch)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSessionsAreReleased(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := repo.Stations(ctx)
		require.NoError(t, err)
		_, err = repo.TemperatureStatsFrom(ctx, "not-a-date")
		require.NoError(t, err)
	}

	assert.Equal(t, 0, repo.db.Stats().InUse)
}

func TestQueriesFailOnClosedPool(t *testing.T) {
	db := setupTestDB(t, testSchema)
	repo := NewSQLiteRepository(db, logger.NewNop())
	require.NoError(t, db.Close())

	_, err := repo.Stations(context.Background())
	assert.Error(t, err)
	_, err = repo.TemperatureStatsFrom(context.Background(), "2017-01-01")
	assert.Error(t, err)
	assert.Error(t, repo.Ping(context.Background()))
}
