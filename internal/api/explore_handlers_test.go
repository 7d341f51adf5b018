package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
)

func testCatalog() []domain.Scheme {
	female := "female"
	maxAge := 30
	incomeLimit := 60000
	return []domain.Scheme{
		{Name: "Women Support Fund", States: []string{"All"}, Gender: &female, MaxAge: &maxAge, IncomeLimit: &incomeLimit},
		{Name: "Kerala Fisheries Grant", States: []string{"Kerala"}},
	}
}

func exploreForm() url.Values {
	return url.Values{
		"age":             {"25"},
		"income":          {"50000"},
		"gender":          {"female"},
		"state":           {"Delhi"},
		"marital_status":  {"single"},
		"education_level": {"graduate"},
	}
}

func postExplore(h *ExploreHandler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/explore", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Filter(rec, req)
	return rec
}

func TestExploreFiltersCatalog(t *testing.T) {
	h := NewExploreHandler(testCatalog())

	rec := postExplore(h, exploreForm())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Women Support Fund") {
		t.Fatalf("eligible scheme missing from the response: %s", body)
	}
	if strings.Contains(body, "Kerala Fisheries Grant") {
		t.Fatalf("ineligible scheme rendered: %s", body)
	}
}

func TestExploreRejectsMalformedInput(t *testing.T) {
	h := NewExploreHandler(testCatalog())

	tests := []struct {
		name   string
		mutate func(form url.Values)
	}{
		{name: "non-numeric age", mutate: func(form url.Values) { form.Set("age", "twenty") }},
		{name: "non-numeric income", mutate: func(form url.Values) { form.Set("income", "lots") }},
		{name: "missing state", mutate: func(form url.Values) { form.Del("state") }},
		{name: "missing gender", mutate: func(form url.Values) { form.Del("gender") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := exploreForm()
			tt.mutate(form)
			rec := postExplore(h, form)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestExploreOptionalFields(t *testing.T) {
	pregnant := true
	h := NewExploreHandler([]domain.Scheme{
		{Name: "Maternity Benefit", States: []string{"All"}, PregnantRequired: &pregnant},
	})

	form := exploreForm()
	rec := postExplore(h, form)
	if strings.Contains(rec.Body.String(), "Maternity Benefit") {
		t.Fatalf("pregnancy-gated scheme should not match by default")
	}

	form.Set("pregnant", "yes")
	rec = postExplore(h, form)
	if !strings.Contains(rec.Body.String(), "Maternity Benefit") {
		t.Fatalf("pregnant=yes should match the pregnancy-gated scheme")
	}
}
