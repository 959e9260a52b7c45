package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "climate-api/docs"
	"climate-api/internal/services/climate"
	"climate-api/pkg/logger"
)

const apiPrefix = "/api/v1.0"

type routes struct {
	service *climate.ClimateService
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	climateService *climate.ClimateService,
	l *logger.Logger,
) {
	r := &routes{
		service: climateService,
		l:       l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Get("/", r.handleIndex)

	// Static paths first: /:start would otherwise swallow them.
	api := app.Group(apiPrefix)
	api.Get("/precipitation", r.handlePrecipitation)
	api.Get("/stations", r.handleStations)
	api.Get("/tobs", r.handleTobs)
	api.Get("/:start", r.handleStatsFrom)
	api.Get("/:start/:end", r.handleStatsBetween)
}
