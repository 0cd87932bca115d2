package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment ghi nhận một lần thanh toán khoá học.
// Chỉ đọc dạng tổng hợp ở dashboard, không bao giờ sửa sau khi tạo.
type Payment struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	CourseID      uint          `gorm:"not null;index" json:"course_id"`
	AmountCents   int64         `gorm:"not null" json:"amount_cents"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	TransactionID uuid.UUID     `gorm:"type:uuid" json:"transaction_id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
