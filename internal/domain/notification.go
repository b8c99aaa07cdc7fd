package domain

import "time"

// NotificationType classifies in-app notifications by the event that produced them
type NotificationType string

const (
	NotificationAppointmentCreated   NotificationType = "appointment_created"
	NotificationAppointmentCancelled NotificationType = "appointment_cancelled"
	NotificationAppointmentStatus    NotificationType = "appointment_status"
	NotificationPayment              NotificationType = "payment"
)

// Notification represents an in-app notification for a user
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
