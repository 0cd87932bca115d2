package models

import (
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
)

// Enrollment: học viên đã đăng ký khoá học
type Enrollment struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	UserID     uint             `gorm:"not null;index:idx_enroll_user_course,unique" json:"user_id"`
	User       User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CourseID   uint             `gorm:"not null;index:idx_enroll_user_course,unique" json:"course_id"`
	Course     Course           `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course"`
	Status     EnrollmentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	EnrolledAt time.Time        `gorm:"autoCreateTime" json:"enrolled_at"`
}
