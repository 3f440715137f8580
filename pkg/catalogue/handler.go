package catalogue

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListCodes godoc
// @Summary All known catalogue codes
// @Tags Catalogue
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/catalogue [get]
func (h *Handler) ListCodes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Codes()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Reload godoc
// @Summary Rebuild the catalogue rule registry from defaults plus database overrides
// @Tags Catalogue
// @Success 204
// @Router /api/v1/catalogue/reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reload(r.Context()); err != nil {
		log.Errorf("failed to reload catalogue registry: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
