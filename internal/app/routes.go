package app

import (
	"github.com/bibdata/weekresolver/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Week codes
	r.HandleFunc("/api/v1/weekcode/{catalogueCode}/current", deps.WeekCodeHandler.GetCurrentWeekCode).Methods("GET")
	r.HandleFunc("/api/v1/weekcode/{catalogueCode}", deps.WeekCodeHandler.GetWeekCode).Methods("GET")

	// Year plans
	r.HandleFunc("/api/v1/yearplan/{catalogueCode}/export", deps.YearPlanHandler.ExportYearPlan).Methods("POST")
	r.HandleFunc("/api/v1/yearplan/{catalogueCode}", deps.YearPlanHandler.GetYearPlan).Methods("GET")

	// Catalogue rules
	r.HandleFunc("/api/v1/catalogue", deps.CatalogueHandler.ListCodes).Methods("GET")
	r.HandleFunc("/api/v1/catalogue/reload", deps.CatalogueHandler.Reload).Methods("POST")

	// Google integration, only with a database to hold the credential
	if deps.GoogleAuth != nil {
		r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
		r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
		r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	}
}
