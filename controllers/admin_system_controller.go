package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-course-backend/models"
)

// GET /api/admin/stats: số liệu tổng quan cho dashboard.
// Bốn phép đọc độc lập, không bọc transaction: dashboard chấp nhận
// số liệu lệch nhau một nhịp khi đang có ghi song song.
func GetSystemStats(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var userCount, courseCount, enrollmentCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy thống kê"})
		return
	}
	if err := db.Model(&models.Course{}).Count(&courseCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy thống kê"})
		return
	}
	if err := db.Model(&models.Enrollment{}).Count(&enrollmentCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy thống kê"})
		return
	}

	var totalRevenueCents int64
	if err := db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentSucceeded).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&totalRevenueCents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy thống kê"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userCount":         userCount,
		"courseCount":       courseCount,
		"enrollmentCount":   enrollmentCount,
		"totalRevenueCents": totalRevenueCents,
	})
}

type UpdateSettingsInput struct {
	Settings map[string]interface{} `json:"settings"`
}

// PUT /api/admin/settings: chưa có bảng settings,
// tạm thời chỉ echo lại object client gửi lên
func UpdateSystemSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Cập nhật cấu hình thành công",
		"settings": input.Settings,
	})
}

// GET /api/admin/audit-logs: mới nhất trước
func GetAuditLogs(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var logs []models.AuditLog
	if err := db.Order("created_at DESC").Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy audit log"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
