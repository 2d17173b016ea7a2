package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeRequestSubmitted NotificationType = "request_submitted"
	TypeRequestApproved  NotificationType = "request_approved"
	TypeRequestRejected  NotificationType = "request_rejected"
	TypeRequestCancelled NotificationType = "request_cancelled"
	TypePendingReminder  NotificationType = "pending_reminder"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeRequestSubmitted,
		TypeRequestApproved,
		TypeRequestRejected,
		TypeRequestCancelled,
		TypePendingReminder,
	}
}

// IsValid reports whether t is a known notification type.
func (t NotificationType) IsValid() bool {
	for _, v := range AllNotificationTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// NotificationPreference represents user preference for a notification type
type NotificationPreference struct {
	ID               string
	UserID           string
	NotificationType NotificationType
	EmailEnabled     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
