package utils

import (
	"log"

	"gorm.io/gorm"

	"github.com/vnkhanh/e-course-backend/models"
)

// WriteAuditLog ghi một dòng nhật ký quản trị.
// Ghi log là best-effort: lỗi chỉ in ra console, không chặn request.
func WriteAuditLog(db *gorm.DB, actor, action, detail string) *models.AuditLog {
	entry := models.AuditLog{
		Actor:  actor,
		Action: action,
		Detail: detail,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("Không thể ghi audit log:", err)
		return nil
	}
	return &entry
}
