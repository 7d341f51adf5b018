package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/app"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/store"
)

// SOSHandler handles the emergency alert form and the alert dashboard.
type SOSHandler struct {
	sos    *app.SOSService
	alerts store.AlertRepository
}

// NewSOSHandler creates a new handler for the SOS endpoints.
func NewSOSHandler(sos *app.SOSService, alerts store.AlertRepository) *SOSHandler {
	return &SOSHandler{sos: sos, alerts: alerts}
}

// ShowForm renders the SOS trigger page.
func (h *SOSHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "twilio.html", nil)
}

// Raise triggers an emergency alert for the logged-in user. The underlying
// gateway error is logged but never echoed back to the browser.
func (h *SOSHandler) Raise(w http.ResponseWriter, r *http.Request) {
	username, ok := CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	phone := strings.TrimSpace(r.PostFormValue("user_number"))
	lat := strings.TrimSpace(r.PostFormValue("latitude"))
	lon := strings.TrimSpace(r.PostFormValue("longitude"))
	if phone == "" || lat == "" || lon == "" {
		http.Error(w, "user_number, latitude and longitude are required", http.StatusBadRequest)
		return
	}

	alert, err := h.sos.Raise(r.Context(), username, phone, lat, lon)
	if err != nil {
		log.Printf("SOS for user %q failed: %v", username, err)
		http.Error(w, "Could not send the alert. Please try again.", http.StatusBadGateway)
		return
	}

	log.Printf("Alert %s sent and logged for user %q", alert.ID, username)
	w.Write([]byte("🚨 Alert Sent & Logged Successfully!"))
}

type alertsPageData struct {
	Alerts []domain.Alert
}

// Dashboard lists every logged alert.
func (h *SOSHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.alerts.List(r.Context())
	if err != nil {
		log.Printf("Error listing alerts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	renderPage(w, http.StatusOK, "alerts.html", alertsPageData{Alerts: alerts})
}
