package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"      // Quản trị hệ thống
	RoleInstructor UserRole = "INSTRUCTOR" // Giảng viên (quản lý khoá học của mình)
	RoleStudent    UserRole = "STUDENT"    // Học viên
)

// IsValidRole kiểm tra role có nằm trong danh sách cho phép không
func IsValidRole(r string) bool {
	switch UserRole(r) {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Email     string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:'STUDENT'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Enrollments []Enrollment `json:"enrollments"`
	Courses     []Course     `gorm:"foreignKey:InstructorID" json:"-"`
}
