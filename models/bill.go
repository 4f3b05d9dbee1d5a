package models

import "time"

// Bill is the customer-facing record created at the counter. One bill may
// cover several orders (one per garment), linked by Order.BillID.
type Bill struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	MobileNumber  string    `gorm:"index;not null" json:"mobile_number"`
	BillNumber    string    `gorm:"size:50;uniqueIndex;not null" json:"bill_number"`
	TotalAmt      float64   `gorm:"type:decimal(10,2);not null" json:"total_amt"`
	PaymentAmount float64   `gorm:"type:decimal(10,2);default:0.00" json:"payment_amount"`
	PaymentStatus string    `gorm:"size:20;default:'pending'" json:"payment_status"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	OrderDate     time.Time `gorm:"type:date" json:"order_date"`
	DueDate       time.Time `gorm:"type:date" json:"due_date"`
}
