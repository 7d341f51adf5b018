package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/app"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/pkg/rabbitmq"
)

type stubNotifier struct {
	err error
}

func (s *stubNotifier) SendSMS(ctx context.Context, to, body string) error  { return s.err }
func (s *stubNotifier) PlaceCall(ctx context.Context, to, msg string) error { return s.err }

type memAlertRepo struct {
	alerts []domain.Alert
}

func (m *memAlertRepo) Append(ctx context.Context, alert *domain.Alert) error {
	m.alerts = append(m.alerts, *alert)
	return nil
}

func (m *memAlertRepo) List(ctx context.Context) ([]domain.Alert, error) {
	return m.alerts, nil
}

func sosRequest(form url.Values, username string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/twilio", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if username != "" {
		req = req.WithContext(context.WithValue(req.Context(), usernameContextKey, username))
	}
	return req
}

func TestRaiseLogsAlertAndConfirms(t *testing.T) {
	repo := &memAlertRepo{}
	svc := app.NewSOSService(&stubNotifier{}, repo, &rabbitmq.NoopPublisher{})
	h := NewSOSHandler(svc, repo)

	form := url.Values{"user_number": {"+911234567890"}, "latitude": {"28.61"}, "longitude": {"77.20"}}
	rec := httptest.NewRecorder()
	h.Raise(rec, sosRequest(form, "asha"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Alert Sent & Logged Successfully") {
		t.Fatalf("expected the literal confirmation, got: %s", rec.Body.String())
	}
	if len(repo.alerts) != 1 {
		t.Fatalf("expected exactly one logged alert, got %d", len(repo.alerts))
	}
	if repo.alerts[0].Location != "https://maps.google.com/?q=28.61,77.20" {
		t.Fatalf("unexpected location URL: %s", repo.alerts[0].Location)
	}
	if repo.alerts[0].Username != "asha" {
		t.Fatalf("alert should carry the session username, got %q", repo.alerts[0].Username)
	}
}

func TestRaiseDoesNotLeakGatewayError(t *testing.T) {
	repo := &memAlertRepo{}
	svc := app.NewSOSService(&stubNotifier{err: errors.New("twilio: account sid AC123 suspended")}, repo, &rabbitmq.NoopPublisher{})
	h := NewSOSHandler(svc, repo)

	form := url.Values{"user_number": {"+911234567890"}, "latitude": {"28.61"}, "longitude": {"77.20"}}
	rec := httptest.NewRecorder()
	h.Raise(rec, sosRequest(form, "asha"))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "AC123") {
		t.Fatalf("gateway error detail leaked to the response: %s", rec.Body.String())
	}
	if len(repo.alerts) != 0 {
		t.Fatalf("no alert may be logged when the gateway fails")
	}
}

func TestRaiseRequiresAllFields(t *testing.T) {
	repo := &memAlertRepo{}
	svc := app.NewSOSService(&stubNotifier{}, repo, &rabbitmq.NoopPublisher{})
	h := NewSOSHandler(svc, repo)

	tests := []url.Values{
		{"latitude": {"28.61"}, "longitude": {"77.20"}},
		{"user_number": {"+911234567890"}, "longitude": {"77.20"}},
		{"user_number": {"+911234567890"}, "latitude": {"28.61"}},
	}
	for _, form := range tests {
		rec := httptest.NewRecorder()
		h.Raise(rec, sosRequest(form, "asha"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for form %v, got %d", form, rec.Code)
		}
	}
	if len(repo.alerts) != 0 {
		t.Fatalf("incomplete submissions must not log alerts")
	}
}

func TestDashboardListsAlerts(t *testing.T) {
	repo := &memAlertRepo{alerts: []domain.Alert{
		{ID: "1", Username: "asha", Phone: "+911234567890", Latitude: "28.61", Longitude: "77.20", Location: "https://maps.google.com/?q=28.61,77.20"},
	}}
	h := NewSOSHandler(app.NewSOSService(&stubNotifier{}, repo, &rabbitmq.NoopPublisher{}), repo)

	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	rec := httptest.NewRecorder()
	h.Dashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "https://maps.google.com/?q=28.61,77.20") {
		t.Fatalf("dashboard should render the alert location, got: %s", rec.Body.String())
	}
}
