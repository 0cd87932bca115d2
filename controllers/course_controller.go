package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-course-backend/config"
	"github.com/vnkhanh/e-course-backend/models"
)

// GET /api/courses: catalog công khai, chỉ khoá học đã xuất bản
func GetPublishedCourses(c *gin.Context) {
	var courses []models.Course
	if err := config.DB.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách khoá học"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GET /api/courses/:id: chi tiết công khai, khoá chưa xuất bản coi như không tồn tại
func GetPublishedCourseDetail(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID khoá học không hợp lệ"})
		return
	}

	var course models.Course
	if err := config.DB.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&course, "id = ? AND is_published = ?", courseID, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	c.JSON(http.StatusOK, course)
}
