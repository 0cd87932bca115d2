package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-course-backend/config"
	"github.com/vnkhanh/e-course-backend/models"
	"github.com/vnkhanh/e-course-backend/utils"
	"github.com/vnkhanh/e-course-backend/ws"
)

type UpdateCourseInput struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	PriceCents  int64                   `json:"price_cents"`
	Difficulty  models.CourseDifficulty `json:"difficulty"`
}

// GET /api/admin/courses: toàn bộ khoá học kèm giảng viên
func GetAllCourses(c *gin.Context) {
	var courses []models.Course
	if err := config.DB.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, role")
		}).
		Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách khoá học"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GET /api/admin/courses/:id: chi tiết kèm giảng viên và danh sách chương
func GetCourseByID(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID khoá học không hợp lệ"})
		return
	}

	var course models.Course
	if err := config.DB.
		Preload("Instructor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, role")
		}).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// PUT /api/admin/courses/:id: ghi đè title/description/price_cents/difficulty
func UpdateCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID khoá học không hợp lệ"})
		return
	}

	var input UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	course.Title = input.Title
	course.Slug = slug.Make(input.Title)
	course.Description = input.Description
	course.PriceCents = input.PriceCents
	course.Difficulty = input.Difficulty

	if err := config.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật khoá học thất bại"})
		return
	}

	utils.WriteAuditLog(config.DB, c.GetString("user_id"), "course.updated",
		fmt.Sprintf("course=%d title=%s", course.ID, course.Title))
	ws.BroadcastAdminEvent("audit", c.GetString("user_id"), "course.updated", course.Title)

	c.JSON(http.StatusOK, course)
}

// PUT /api/admin/courses/:id/publish: đảo trạng thái xuất bản.
// Đọc rồi ghi, không khoá: hai request cùng lúc thì cái sau thắng.
func ToggleCoursePublish(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID khoá học không hợp lệ"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	// đảo trạng thái
	course.IsPublished = !course.IsPublished

	if err := config.DB.Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đổi trạng thái xuất bản"})
		return
	}

	utils.WriteAuditLog(config.DB, c.GetString("user_id"), "course.publish_toggled",
		fmt.Sprintf("course=%d is_published=%t", course.ID, course.IsPublished))
	ws.BroadcastAdminEvent("audit", c.GetString("user_id"), "course.publish_toggled", course.Title)

	c.JSON(http.StatusOK, course)
}

// POST /api/admin/courses/:id/thumbnail: upload ảnh bìa lên Supabase Storage
func UploadCourseThumbnail(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID khoá học không hợp lệ"})
		return
	}

	var course models.Course
	if err := config.DB.First(&course, "id = ?", courseID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy khoá học"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file ảnh"})
		return
	}

	publicURL, err := utils.UploadImageToSupabase(fileHeader, uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload ảnh thất bại"})
		return
	}

	// Xoá ảnh cũ nếu có, lỗi bỏ qua
	oldURL := course.ThumbnailURL
	if err := config.DB.Model(&course).Update("thumbnail_url", publicURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật thumbnail thất bại"})
		return
	}
	if oldURL != "" {
		_ = utils.DeleteFileFromSupabase(oldURL)
	}
	course.ThumbnailURL = publicURL

	c.JSON(http.StatusOK, course)
}
