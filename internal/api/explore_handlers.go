package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/app"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
)

// ExploreHandler serves the welfare scheme explorer over the immutable
// catalog loaded at startup.
type ExploreHandler struct {
	catalog []domain.Scheme
}

// NewExploreHandler creates a new handler for the scheme explorer.
func NewExploreHandler(catalog []domain.Scheme) *ExploreHandler {
	return &ExploreHandler{catalog: catalog}
}

type explorePageData struct {
	Submitted bool
	Error     string
	Eligible  []domain.Scheme
}

// ShowForm renders the empty explorer form.
func (h *ExploreHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "explore.html", explorePageData{})
}

// Filter evaluates the submitted profile against the catalog and renders
// the matching schemes.
func (h *ExploreHandler) Filter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	profile, err := parseProfile(r)
	if err != nil {
		renderPage(w, http.StatusBadRequest, "explore.html", explorePageData{Error: err.Error()})
		return
	}

	eligible := app.FilterSchemes(profile, h.catalog)
	renderPage(w, http.StatusOK, "explore.html", explorePageData{Submitted: true, Eligible: eligible})
}

// parseProfile validates the explorer form. Missing required fields and
// non-numeric age or income fail fast instead of silently defaulting.
func parseProfile(r *http.Request) (domain.ApplicantProfile, error) {
	var profile domain.ApplicantProfile

	required := map[string]*string{
		"gender":          &profile.Gender,
		"state":           &profile.State,
		"marital_status":  &profile.MaritalStatus,
		"education_level": &profile.EducationLevel,
	}
	for field, dst := range required {
		value := strings.TrimSpace(r.PostFormValue(field))
		if value == "" {
			return profile, fmt.Errorf("%s is required", field)
		}
		*dst = value
	}

	age, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("age")))
	if err != nil {
		return profile, fmt.Errorf("age must be a number")
	}
	income, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("income")))
	if err != nil {
		return profile, fmt.Errorf("income must be a number")
	}

	profile.Age = age
	profile.Income = income
	profile.Religion = strings.TrimSpace(r.PostFormValue("religion"))
	profile.Pregnant = r.PostFormValue("pregnant") == "yes"
	return profile, nil
}
