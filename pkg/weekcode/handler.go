package weekcode

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bibdata/weekresolver/internal/rest"
	"github.com/bibdata/weekresolver/internal/utils"
	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/bibdata/weekresolver/pkg/easter"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type WeekDescriptionDTO struct {
	WeekCodeShort string  `json:"weekCodeShort"`
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

type WeekCodeResultDTO struct {
	WeekNumber    int                `json:"weekNumber"`
	Year          int                `json:"year"`
	CatalogueCode string             `json:"catalogueCode"`
	WeekCode      string             `json:"weekCode"`
	Date          string             `json:"date"`
	Description   WeekDescriptionDTO `json:"description"`
}

type Handler struct {
	service         Service
	clock           utils.Clock
	defaultTimezone string
	defaultLocale   string
}

func NewHandler(service Service, clock utils.Clock, defaultTimezone, defaultLocale string) *Handler {
	return &Handler{
		service:         service,
		clock:           clock,
		defaultTimezone: defaultTimezone,
		defaultLocale:   defaultLocale,
	}
}

// GetWeekCode godoc
// @Summary Resolve the week code assigned to a record created on a date
// @Description Applies the catalogue's rule configuration, shift day, and closing days to the given date
// @Tags WeekCode
// @Produce json
// @Param catalogueCode path string true "Catalogue code (case-insensitive)"
// @Param date query string true "Date in yyyy-MM-dd format"
// @Param timezone query string false "IANA zone id, defaults to the configured zone"
// @Param locale query string false "Locale tag driving week numbering"
// @Success 200 {object} WeekCodeResultDTO
// @Failure 400 {object} rest.ErrorResponse "Unknown catalogue code, invalid date, or unsupported year"
// @Router /api/v1/weekcode/{catalogueCode} [get]
func (h *Handler) GetWeekCode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, locale, ok := h.requestParams(w, r, true)
	if !ok {
		return
	}

	catalogueCode := mux.Vars(r)["catalogueCode"]
	result, err := h.service.ResolveWeekCode(r.Context(), catalogueCode, date, locale)
	h.writeResult(w, result, err)
}

// GetCurrentWeekCode godoc
// @Summary Resolve the week code covering a date right now
// @Description Answers which release week the given date (default: today) is a working day for
// @Tags WeekCode
// @Produce json
// @Param catalogueCode path string true "Catalogue code (case-insensitive)"
// @Param date query string false "Date in yyyy-MM-dd format, defaults to today"
// @Param timezone query string false "IANA zone id, defaults to the configured zone"
// @Param locale query string false "Locale tag driving week numbering"
// @Success 200 {object} WeekCodeResultDTO
// @Failure 400 {object} rest.ErrorResponse "Unknown catalogue code, invalid date, or unsupported year"
// @Router /api/v1/weekcode/{catalogueCode}/current [get]
func (h *Handler) GetCurrentWeekCode(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	date, locale, ok := h.requestParams(w, r, false)
	if !ok {
		return
	}

	catalogueCode := mux.Vars(r)["catalogueCode"]
	result, err := h.service.ResolveCurrentWeekCode(r.Context(), catalogueCode, date, locale)
	h.writeResult(w, result, err)
}

// requestParams parses the date, timezone, and locale query parameters,
// writing a 400 response on invalid input. When the date is optional and
// absent, "today" in the requested zone is used.
func (h *Handler) requestParams(w http.ResponseWriter, r *http.Request, dateRequired bool) (time.Time, string, bool) {
	timezone := r.URL.Query().Get("timezone")
	if timezone == "" {
		timezone = h.defaultTimezone
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		writeError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Unknown timezone",
			Details: "Parameter timezone must be an IANA zone id",
		})
		return time.Time{}, "", false
	}

	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.defaultLocale
	}

	dateString := r.URL.Query().Get("date")
	if dateString == "" {
		if dateRequired {
			writeError(w, http.StatusBadRequest, rest.ErrorResponse{
				Error:   "Missing date parameter",
				Details: "Date must be in yyyy-MM-dd format",
			})
			return time.Time{}, "", false
		}
		return h.clock.Now().In(location), locale, true
	}

	date, err := time.ParseInLocation(dateLayout, dateString, location)
	if err != nil {
		writeError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Incorrect date format",
			Details: "Date must be in yyyy-MM-dd format",
		})
		return time.Time{}, "", false
	}
	return date, locale, true
}

func (h *Handler) writeResult(w http.ResponseWriter, result WeekCodeResult, err error) {
	if err != nil {
		if errors.Is(err, catalogue.ErrUnknownCatalogueCode) || errors.Is(err, easter.ErrYearNotSupported) {
			writeError(w, http.StatusBadRequest, rest.ErrorResponse{Error: err.Error()})
			return
		}
		log.Errorf("failed to resolve week code: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(ResultToDTO(result)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, response rest.ErrorResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ResultToDTO(result WeekCodeResult) WeekCodeResultDTO {
	return WeekCodeResultDTO{
		WeekNumber:    result.WeekNumber,
		Year:          result.Year,
		CatalogueCode: result.CatalogueCode,
		WeekCode:      result.WeekCode,
		Date:          result.ResolvedDate.Format(dateLayout),
		Description:   descriptionToDTO(result.Description),
	}
}

func descriptionToDTO(d WeekDescription) WeekDescriptionDTO {
	return WeekDescriptionDTO{
		WeekCodeShort: d.WeekCodeShort,
		WeekCodeFirst: formatDate(d.WeekCodeFirst),
		WeekCodeLast:  formatDate(d.WeekCodeLast),
		ShiftDay:      formatDate(d.ShiftDay),
		BookCart:      formatDate(d.BookCart),
		Proof:         formatDate(d.Proof),
		Bkm:           formatDate(d.Bkm),
		ProofFrom:     formatDate(d.ProofFrom),
		ProofTo:       formatDate(d.ProofTo),
		Publish:       formatDate(d.Publish),
		NoProduction:  d.NoProduction,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}
