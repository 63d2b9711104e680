package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeeStatusUnpaid  = "unpaid"
	FeeStatusPartial = "partial"
	FeeStatusPaid    = "paid"
)

type FeeModel struct {
	FeeID        uuid.UUID `gorm:"column:fee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_id"`
	FeeStudentID uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;index" json:"fee_student_id"`

	FeeTitle      string    `gorm:"column:fee_title;type:varchar(150);not null" json:"fee_title"`
	FeeAmount     int64     `gorm:"column:fee_amount;not null" json:"fee_amount"`
	FeePaidAmount int64     `gorm:"column:fee_paid_amount;not null;default:0" json:"fee_paid_amount"`
	FeeDueDate    time.Time `gorm:"column:fee_due_date;type:date;not null" json:"fee_due_date"`
	FeeStatus     string    `gorm:"column:fee_status;type:varchar(10);not null;default:'unpaid';index" json:"fee_status"`

	// Order ID handed to the payment gateway; set when a payment starts.
	FeeOrderID *string `gorm:"column:fee_order_id;type:varchar(64);uniqueIndex" json:"fee_order_id,omitempty"`

	FeeCreatedAt time.Time      `gorm:"column:fee_created_at;autoCreateTime" json:"fee_created_at"`
	FeeUpdatedAt time.Time      `gorm:"column:fee_updated_at;autoUpdateTime" json:"fee_updated_at"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;index" json:"-"`
}

func (FeeModel) TableName() string {
	return "fees"
}

// Outstanding is the amount still owed.
func (f *FeeModel) Outstanding() int64 {
	remaining := f.FeeAmount - f.FeePaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}
