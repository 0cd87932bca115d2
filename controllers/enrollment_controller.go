package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-course-backend/config"
	"github.com/vnkhanh/e-course-backend/models"
	"github.com/vnkhanh/e-course-backend/utils"
	"github.com/vnkhanh/e-course-backend/ws"
)

type EnrollInput struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// POST /api/enrollments: học viên đăng ký khoá học.
// Checkout giả lập: ghi Enrollment + Payment SUCCEEDED trong một transaction.
func Enroll(c *gin.Context) {
	var input EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id là bắt buộc"})
		return
	}

	userID, err := strconv.Atoi(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Không xác định được người dùng"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ? AND is_published = ?", input.CourseID, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	// Check đã đăng ký chưa
	var count int64
	if err := config.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, course.ID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không kiểm tra được đăng ký"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bạn đã đăng ký khoá học này"})
		return
	}

	enrollment := models.Enrollment{
		UserID:   uint(userID),
		CourseID: course.ID,
		Status:   models.EnrollmentActive,
	}
	payment := models.Payment{
		UserID:        uint(userID),
		CourseID:      course.ID,
		AmountCents:   course.PriceCents,
		Status:        models.PaymentSucceeded,
		TransactionID: uuid.New(),
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Đăng ký khoá học thất bại"})
		return
	}

	utils.WriteAuditLog(config.DB, c.GetString("user_id"), "enrollment.created",
		fmt.Sprintf("user=%d course=%d amount_cents=%d", userID, course.ID, course.PriceCents))
	ws.BroadcastAdminEvent("enrollment", c.GetString("user_id"), "enrollment.created", course.Title)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Đăng ký khoá học thành công",
		"enrollment": enrollment,
		"payment": gin.H{
			"amount_cents":   payment.AmountCents,
			"status":         payment.Status,
			"transaction_id": payment.TransactionID,
		},
	})
}

// GET /api/enrollments: khoá học của tôi
func GetMyEnrollments(c *gin.Context) {
	userID := c.GetString("user_id")

	var enrollments []models.Enrollment
	if err := config.DB.
		Preload("Course").
		Preload("Course.Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách đăng ký"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}
