package models

import "time"

// ShopExpense is a day's shop-level spend: material, miscellaneous and
// chai-pani (hospitality). Costs are nullable so partially filled rows sum
// cleanly as zero.
type ShopExpense struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Date              time.Time `gorm:"type:date;index" json:"date"`
	MaterialType      string    `json:"material_type"`
	MaterialCost      *float64  `gorm:"type:decimal(10,2)" json:"material_cost"`
	MiscellaneousItem string    `json:"miscellaneous_item"`
	MiscellaneousCost *float64  `gorm:"type:decimal(10,2)" json:"miscellaneous_cost"`
	ChaiPaniCost      *float64  `gorm:"type:decimal(10,2)" json:"chai_pani_cost"`
}

// WorkerExpense is a payment made to a worker against their accrued work pay.
type WorkerExpense struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkerID   uint      `gorm:"index;not null" json:"worker_id"`
	Date       time.Time `gorm:"type:date;index" json:"date"`
	Name       string    `json:"name"`
	AmountPaid *float64  `gorm:"type:decimal(10,2)" json:"amount_paid"`
}
