package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/domain"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/internal/store"
	"github.com/Priyanshukr985/SHE-SAFE-EMERGENCY/pkg/rabbitmq"
)

// Notifier is the outbound notification gateway: it delivers an SMS and
// places a voice call to a destination number.
type Notifier interface {
	SendSMS(ctx context.Context, to, body string) error
	PlaceCall(ctx context.Context, to, message string) error
}

// EventsExchange is the topic exchange alert events are published to.
const EventsExchange = "shesafe.events"

// SOSService orchestrates an emergency alert: notify first, then log,
// then announce the event to downstream consumers.
type SOSService struct {
	notifier Notifier
	alerts   store.AlertRepository
	producer rabbitmq.Publisher
}

// NewSOSService creates a new SOSService with its dependencies.
func NewSOSService(notifier Notifier, alerts store.AlertRepository, producer rabbitmq.Publisher) *SOSService {
	return &SOSService{notifier: notifier, alerts: alerts, producer: producer}
}

// Raise sends the SMS and places the voice call for an emergency, and on
// success appends one Alert record to the log. If either delivery fails the
// alert is not logged; there is no retry and no partial success.
func (s *SOSService) Raise(ctx context.Context, username, phone, lat, lon string) (*domain.Alert, error) {
	location := domain.MapsLink(lat, lon)
	smsBody := fmt.Sprintf("🚨 EMERGENCY ALERT!\nUser: %s\nLive Location:\n%s", username, location)
	callMessage := fmt.Sprintf("Emergency alert from SheSafe. User %s is in danger. Please check SMS.", username)

	if err := s.notifier.SendSMS(ctx, phone, smsBody); err != nil {
		return nil, fmt.Errorf("notification gateway: %w", err)
	}
	if err := s.notifier.PlaceCall(ctx, phone, callMessage); err != nil {
		return nil, fmt.Errorf("notification gateway: %w", err)
	}

	alert := &domain.Alert{
		ID:        uuid.NewString(),
		Username:  username,
		Phone:     phone,
		Latitude:  lat,
		Longitude: lon,
		Location:  location,
		CreatedAt: time.Now(),
	}
	if err := s.alerts.Append(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to log alert: %w", err)
	}

	// Best effort: a broker outage must not fail an alert that has already
	// been delivered and logged.
	event := domain.AlertRaisedEvent{
		AlertID:  alert.ID,
		Username: alert.Username,
		Phone:    alert.Phone,
		Location: alert.Location,
		RaisedAt: alert.CreatedAt,
	}
	if err := s.producer.Publish(ctx, EventsExchange, "alert.raised", event); err != nil {
		log.Printf("Failed to publish alert.raised event for alert %s: %v", alert.ID, err)
	}

	return alert, nil
}
