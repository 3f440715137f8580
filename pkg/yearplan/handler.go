package yearplan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bibdata/weekresolver/internal/event_bus"
	"github.com/bibdata/weekresolver/internal/rest"
	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/bibdata/weekresolver/pkg/easter"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RowDTO struct {
	WeekCode      string  `json:"weekCode"`
	WeekCodeFirst *string `json:"weekCodeFirst"`
	WeekCodeLast  *string `json:"weekCodeLast"`
	ShiftDay      *string `json:"shiftDay"`
	BookCart      *string `json:"bookCart"`
	Proof         *string `json:"proof"`
	Bkm           *string `json:"bkm"`
	ProofFrom     *string `json:"proofFrom"`
	ProofTo       *string `json:"proofTo"`
	Publish       *string `json:"publish"`
	NoProduction  bool    `json:"noProduction"`
}

type YearPlanDTO struct {
	CatalogueCode string   `json:"catalogueCode"`
	Year          int      `json:"year"`
	Rows          []RowDTO `json:"rows"`
}

type Handler struct {
	service       Service
	csvRenderer   Renderer
	htmlRenderer  Renderer
	eventBus      *event_bus.EventBus
	defaultLocale string
}

func NewHandler(service Service, csvRenderer Renderer, htmlRenderer Renderer, eventBus *event_bus.EventBus, defaultLocale string) *Handler {
	return &Handler{
		service:       service,
		csvRenderer:   csvRenderer,
		htmlRenderer:  htmlRenderer,
		eventBus:      eventBus,
		defaultLocale: defaultLocale,
	}
}

// GetYearPlan godoc
// @Summary Production calendar of a catalogue for one year
// @Description Returns one row per week, negotiated as JSON, CSV, or HTML via the Accept header
// @Tags YearPlan
// @Produce json
// @Produce text/csv
// @Produce text/html
// @Param catalogueCode path string true "Catalogue code (case-insensitive)"
// @Param year query int true "Calendar year"
// @Success 200 {object} YearPlanDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/v1/yearplan/{catalogueCode} [get]
func (h *Handler) GetYearPlan(w http.ResponseWriter, r *http.Request) {
	catalogueCode := mux.Vars(r)["catalogueCode"]
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.defaultLocale
	}

	plan, err := h.service.GetYearPlan(r.Context(), catalogueCode, year, locale)
	if err != nil {
		if errors.Is(err, catalogue.ErrUnknownCatalogueCode) || errors.Is(err, easter.ErrYearNotSupported) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()}); encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		log.Errorf("failed to build year plan: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	accept := r.Header.Get("Accept")
	switch {
	case strings.Contains(accept, "text/csv"):
		h.renderWith(w, h.csvRenderer, plan, "text/csv; charset=utf-8")
	case strings.Contains(accept, "text/html"):
		h.renderWith(w, h.htmlRenderer, plan, "text/html; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(planToDTO(plan)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ExportYearPlan godoc
// @Summary Push the publish dates of a year plan to an external calendar
// @Tags YearPlan
// @Param catalogueCode path string true "Catalogue code (case-insensitive)"
// @Param year query int true "Calendar year"
// @Param calendarId query string false "Target calendar id, defaults to the primary calendar"
// @Success 202
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/v1/yearplan/{catalogueCode}/export [post]
func (h *Handler) ExportYearPlan(w http.ResponseWriter, r *http.Request) {
	catalogueCode := mux.Vars(r)["catalogueCode"]
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	calendarId := r.URL.Query().Get("calendarId")
	if calendarId == "" {
		calendarId = "primary"
	}

	event := event_bus.NewEvent(r.Context(), event_bus.YearPlanExportRequestedEvent, event_bus.YearPlanExportRequested{
		CatalogueCode: catalogueCode,
		Year:          year,
		CalendarId:    calendarId,
	})
	if err := h.eventBus.Publish(event); err != nil {
		log.Errorf("year plan export failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid year parameter",
			Details: "Year must be a four digit number",
		}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return 0, false
	}
	return year, true
}

func (h *Handler) renderWith(w http.ResponseWriter, renderer Renderer, plan YearPlan, contentType string) {
	rendered, err := renderer.RenderYearPlan(plan)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(rendered)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func planToDTO(plan YearPlan) YearPlanDTO {
	dto := YearPlanDTO{
		CatalogueCode: plan.CatalogueCode,
		Year:          plan.Year,
		Rows:          make([]RowDTO, 0, len(plan.Rows)),
	}
	for _, row := range plan.Rows {
		dto.Rows = append(dto.Rows, RowDTO{
			WeekCode:      row.WeekCode,
			WeekCodeFirst: dateString(row.WeekCodeFirst),
			WeekCodeLast:  dateString(row.WeekCodeLast),
			ShiftDay:      dateString(row.ShiftDay),
			BookCart:      dateString(row.BookCart),
			Proof:         dateString(row.Proof),
			Bkm:           dateString(row.Bkm),
			ProofFrom:     dateString(row.ProofFrom),
			ProofTo:       dateString(row.ProofTo),
			Publish:       dateString(row.Publish),
			NoProduction:  row.NoProduction,
		})
	}
	return dto
}
