package app

import (
	"context"
	"database/sql"

	"github.com/bibdata/weekresolver/internal/config"
	"github.com/bibdata/weekresolver/internal/event_bus"
	"github.com/bibdata/weekresolver/internal/utils"
	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/bibdata/weekresolver/pkg/google"
	"github.com/bibdata/weekresolver/pkg/weekcode"
	"github.com/bibdata/weekresolver/pkg/yearplan"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	CatalogueRepo    catalogue.Repository
	CatalogueService catalogue.Service
	CatalogueHandler *catalogue.Handler

	WeekCodeService *weekcode.ServiceImpl
	WeekCodeHandler *weekcode.Handler

	YearPlanService  *yearplan.ServiceImpl
	CsvRenderer      *yearplan.CsvRendererImpl
	HtmlRenderer     *yearplan.HtmlRendererImpl
	YearPlanHandler  *yearplan.Handler
	GoogleAuth       *google.GoogleAuth
	YearPlanExporter *google.Exporter

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
// db may be nil; database-backed parts are skipped in that case.
func BuildDependencies(db *sql.DB, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	if db != nil {
		deps.CatalogueRepo = catalogue.NewRepository(db)
	}
	catalogueService := catalogue.NewService(deps.CatalogueRepo)
	if err := catalogueService.Reload(context.Background()); err != nil {
		return nil, err
	}
	deps.CatalogueService = catalogueService
	deps.CatalogueHandler = catalogue.NewHandler(deps.CatalogueService)

	deps.WeekCodeService = weekcode.NewService(deps.CatalogueService)
	deps.WeekCodeHandler = weekcode.NewHandler(deps.WeekCodeService, deps.Clock, cfg.Timezone, cfg.Locale)

	deps.YearPlanService = yearplan.NewService(deps.WeekCodeService)
	deps.CsvRenderer = yearplan.NewCsvRenderer()
	deps.HtmlRenderer = yearplan.NewHtmlRenderer()
	deps.YearPlanHandler = yearplan.NewHandler(deps.YearPlanService, deps.CsvRenderer, deps.HtmlRenderer, deps.EventBus, cfg.Locale)

	if db != nil {
		deps.GoogleAuth = google.NewGoogleAuth(db, cfg)
		deps.YearPlanExporter = google.NewExporter(deps.GoogleAuth, deps.YearPlanService, cfg.Locale, deps.EventBus)
	}

	return deps, nil
}
