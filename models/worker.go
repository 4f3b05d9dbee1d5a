package models

// Worker is a tailor on the shop's payroll. The per-garment rates are all
// optional; a worker may only have the flat rate, or none at all.
type Worker struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	Name   string   `gorm:"not null" json:"name"`
	Phone  string   `gorm:"size:20" json:"phone"`
	Rate   *float64 `gorm:"type:decimal(10,2)" json:"rate"`
	Suit   *float64 `gorm:"type:decimal(10,2)" json:"suit"`
	Jacket *float64 `gorm:"type:decimal(10,2)" json:"jacket"`
	Sadri  *float64 `gorm:"type:decimal(10,2)" json:"sadri"`
	Others *float64 `gorm:"type:decimal(10,2)" json:"others"`
}
