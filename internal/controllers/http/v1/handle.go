package http

import (
	"github.com/gofiber/fiber/v2"
)

const indexPage = "Welcome to the Hawaii Climate Analysis API!<br/>" +
	"Available Routes:<br/>" +
	apiPrefix + "/precipitation<br/>" +
	apiPrefix + "/stations<br/>" +
	apiPrefix + "/tobs<br/>" +
	apiPrefix + "/start (enter as YYYY-MM-DD)<br/>" +
	apiPrefix + "/start/end (enter as YYYY-MM-DD/YYYY-MM-DD)"

// PrecipitationResponse maps a date to its precipitation, null when missing
type PrecipitationResponse map[string]*float64

// handleIndex godoc
// @Summary List routes
// @Description Human readable index of the available routes
// @Tags Climate
// @Produce html
// @Success 200 {string} string "Route index"
// @Router / [get]
func (r *routes) handleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(indexPage)
}

// handlePrecipitation godoc
// @Summary Precipitation for the last year
// @Description Date to precipitation for the year ending 2017-08-23. One value per date: when several stations report the same day only one reading is kept.
// @Tags Climate
// @Produce json
// @Success 200 {object} PrecipitationResponse
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/v1.0/precipitation [get]
func (r *routes) handlePrecipitation(c *fiber.Ctx) error {
	precipitation, err := r.service.Precipitation(c.UserContext())
	if err != nil {
		return r.fail(c, err, nil)
	}

	return c.JSON(precipitation)
}

// handleStations godoc
// @Summary List stations
// @Tags Climate
// @Produce json
// @Success 200 {array} models.Station
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/v1.0/stations [get]
func (r *routes) handleStations(c *fiber.Ctx) error {
	stations, err := r.service.Stations(c.UserContext())
	if err != nil {
		return r.fail(c, err, nil)
	}

	return c.JSON(stations)
}

// handleTobs godoc
// @Summary Temperature observations of the most active station
// @Description Readings of station USC00519281 for the year ending 2017-08-23
// @Tags Climate
// @Produce json
// @Success 200 {array} models.TemperatureObservation
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/v1.0/tobs [get]
func (r *routes) handleTobs(c *fiber.Ctx) error {
	obs, err := r.service.TemperatureObservations(c.UserContext())
	if err != nil {
		return r.fail(c, err, nil)
	}

	return c.JSON(obs)
}

// handleStatsFrom godoc
// @Summary Temperature stats from a date
// @Description Min, average and max temperature over every reading on or after start. The date is not validated; a malformed value yields nulls.
// @Tags Climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)" example(2017-08-01)
// @Success 200 {array} models.TemperatureStats
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/v1.0/{start} [get]
func (r *routes) handleStatsFrom(c *fiber.Ctx) error {
	start := c.Params("start")

	stats, err := r.service.TemperatureStatsFrom(c.UserContext(), start)
	if err != nil {
		return r.fail(c, err, map[string]any{"start": start})
	}

	return c.JSON(stats)
}

// handleStatsBetween godoc
// @Summary Temperature stats over a date range
// @Description Min, average and max temperature over readings with start <= date <= end. Dates are not validated.
// @Tags Climate
// @Produce json
// @Param start path string true "Start date (YYYY-MM-DD)" example(2017-08-01)
// @Param end path string true "End date (YYYY-MM-DD)" example(2017-08-23)
// @Success 200 {array} models.TemperatureStats
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/v1.0/{start}/{end} [get]
func (r *routes) handleStatsBetween(c *fiber.Ctx) error {
	start, end := c.Params("start"), c.Params("end")

	stats, err := r.service.TemperatureStatsBetween(c.UserContext(), start, end)
	if err != nil {
		return r.fail(c, err, map[string]any{"start": start, "end": end})
	}

	return c.JSON(stats)
}

// fail logs err and hands a bare 500 to the app error handler.
func (r *routes) fail(c *fiber.Ctx, err error, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["path"] = c.Path()
	r.l.Error(err, fields)

	return fiber.ErrInternalServerError
}
