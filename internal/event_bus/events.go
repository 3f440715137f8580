package event_bus

const YearPlanExportRequestedEvent EventType = "yearplan.export.requested"

// YearPlanExportRequested asks the Google Calendar exporter to push the
// publish dates of a year plan into an external calendar.
type YearPlanExportRequested struct {
	CatalogueCode string
	Year          int
	CalendarId    string
}
