package model

import "time"

// Banner is a promotional banner shown for a date window.
type Banner struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Image       string    `json:"image,omitempty"`
	Link        string    `json:"link,omitempty"`
}

// NotificationType classifies an in-app notification.
type NotificationType string

const (
	NotificationWelcome   NotificationType = "welcome"
	NotificationPromotion NotificationType = "promotion"
	NotificationInfo      NotificationType = "info"
	NotificationSuccess   NotificationType = "success"
	NotificationError     NotificationType = "error"
	NotificationWarning   NotificationType = "warning"
)

// Notification is an in-app message shown in the notification tray.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
}
