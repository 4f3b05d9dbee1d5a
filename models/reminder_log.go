package models

import "time"

// ReminderLog records every due-date reminder attempt so a failed send can be
// spotted and the same order is not messaged twice in one day.
type ReminderLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      uint      `gorm:"index;not null" json:"order_id"`
	MobileNumber string    `json:"mobile_number"`
	Message      string    `json:"message"`
	Status       string    `gorm:"size:20" json:"status"`
	ErrorMessage string    `json:"error_message"`
	Channel      string    `gorm:"size:20" json:"channel"`
	SentAt       time.Time `json:"sent_at"`
}
