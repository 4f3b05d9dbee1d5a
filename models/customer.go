package models

import "time"

// Customer is the single authoritative customer record. Lookups elsewhere in
// the app key customers by phone number, so phone is unique.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null;uniqueIndex" json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Measurement holds a customer's garment measurements, keyed by phone number
// rather than customer id so walk-in customers without a record still fit.
type Measurement struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	PhoneNumber string   `gorm:"not null;uniqueIndex" json:"phone_number"`
	Chest       *float64 `gorm:"type:decimal(6,2)" json:"chest"`
	Waist       *float64 `gorm:"type:decimal(6,2)" json:"waist"`
	Length      *float64 `gorm:"type:decimal(6,2)" json:"length"`
	Shoulder    *float64 `gorm:"type:decimal(6,2)" json:"shoulder"`
	Sleeve      *float64 `gorm:"type:decimal(6,2)" json:"sleeve"`
	Notes       string   `json:"notes"`
}
