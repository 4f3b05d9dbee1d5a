package models

import "time"

// Order is one garment job on a bill. WorkPay is the share of the order value
// owed to the assigned workers, fixed at creation time; it is nullable because
// rows imported from the old sheet never had it.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BillID        uint      `gorm:"index;not null" json:"bill_id"`
	BillNumber    string    `gorm:"size:50;index" json:"bill_number"`
	GarmentType   string    `gorm:"size:50" json:"garment_type"`
	TotalAmt      float64   `gorm:"type:decimal(10,2);not null" json:"total_amt"`
	PaymentAmount float64   `gorm:"type:decimal(10,2);default:0.00" json:"payment_amount"`
	PaymentStatus string    `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentMode   string    `gorm:"size:20" json:"payment_mode"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	OrderDate     time.Time `gorm:"type:date" json:"order_date"`
	DueDate       time.Time `gorm:"type:date" json:"due_date"`
	WorkPay       *float64  `gorm:"type:decimal(10,2)" json:"work_pay"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrderWorkerAssociation links an order to one assigned worker. Assignment is
// full-replace: re-assigning an order deletes all of its rows and inserts the
// new set.
type OrderWorkerAssociation struct {
	OrderID  uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	WorkerID uint `gorm:"primaryKey;autoIncrement:false" json:"worker_id"`
}

func (OrderWorkerAssociation) TableName() string {
	return "order_worker_associations"
}
