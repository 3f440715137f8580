package google

import (
	"context"
	"fmt"

	"github.com/bibdata/weekresolver/internal/event_bus"
	"github.com/bibdata/weekresolver/pkg/yearplan"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Exporter pushes the publish dates of a year plan into a Google Calendar as
// all-day events. It reacts to export events published on the bus.
type Exporter struct {
	auth     *GoogleAuth
	yearPlan yearplan.Service
	locale   string
}

func NewExporter(auth *GoogleAuth, yearPlanService yearplan.Service, locale string, eventBus *event_bus.EventBus) *Exporter {
	exporter := &Exporter{
		auth:     auth,
		yearPlan: yearPlanService,
		locale:   locale,
	}
	event_bus.SubscribeTyped(eventBus, event_bus.YearPlanExportRequestedEvent,
		func(e event_bus.EventT[event_bus.YearPlanExportRequested]) error {
			return exporter.Export(e.Context(), e.Data.CatalogueCode, e.Data.Year, e.Data.CalendarId)
		})
	return exporter
}

// Export inserts one all-day event per production week of the year plan, on
// the week's publish date.
func (e *Exporter) Export(ctx context.Context, catalogueCode string, year int, calendarId string) error {
	client, err := e.auth.getClient(ctx)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrUnauthenticated
	}

	service, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create Google Calendar service: %w", err)
	}

	plan, err := e.yearPlan.GetYearPlan(ctx, catalogueCode, year, e.locale)
	if err != nil {
		return err
	}

	inserted := 0
	for _, row := range plan.Rows {
		if row.NoProduction || row.Publish == nil {
			continue
		}
		date := row.Publish.Format("2006-01-02")
		_, err := service.Events.Insert(calendarId, &gcal.Event{
			Summary: fmt.Sprintf("%s publish", row.WeekCode),
			Start:   &gcal.EventDateTime{Date: date},
			End:     &gcal.EventDateTime{Date: date},
		}).Do()
		if err != nil {
			return fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		}
		inserted++
	}

	log.Infof("exported %d publish dates for %s/%d to calendar %s", inserted, catalogueCode, year, calendarId)
	return nil
}
