package domain

import "time"

// AlertRaisedEvent is the payload published to RabbitMQ after an alert has
// been delivered and logged, for out-of-process consumers such as dashboards.
type AlertRaisedEvent struct {
	AlertID  string    `json:"alert_id"`
	Username string    `json:"username"`
	Phone    string    `json:"phone"`
	Location string    `json:"location"`
	RaisedAt time.Time `json:"raised_at"`
}
