package mq

import "time"

const NotificationCreatedKey = "notification.created"

type NotificationCreatedPayload struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"` // info / success / warning / motivational
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Route          string    `json:"route,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
