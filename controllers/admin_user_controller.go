package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/vnkhanh/e-course-backend/config"
	"github.com/vnkhanh/e-course-backend/models"
	"github.com/vnkhanh/e-course-backend/utils"
	"github.com/vnkhanh/e-course-backend/ws"
)

// Mật khẩu tạm cho tài khoản admin tạo sẵn, học viên phải đổi ở lần đăng nhập đầu
const defaultStudentPassword = "defaultPassword123"

type AddStudentInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRoleInput struct {
	Role string `json:"role"`
}

// userProjection: không bao giờ trả password hash ra ngoài
func userProjection(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
}

// GET /api/admin/users: toàn bộ học viên kèm danh sách đăng ký
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.
		Preload("Enrollments").
		Where("role = ?", models.RoleStudent).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách người dùng"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GET /api/admin/users/:id
func GetUserByID(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID người dùng không hợp lệ"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	c.JSON(http.StatusOK, userProjection(&user))
}

// PUT /api/admin/users/:id: đổi vai trò
func UpdateUserRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID người dùng không hợp lệ"})
		return
	}

	var input UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vai trò là bắt buộc"})
		return
	}

	// Chỉ nhận các vai trò trong danh sách, tránh ghi dữ liệu rác
	if !models.IsValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vai trò không hợp lệ"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	if err := config.DB.Model(&user).Update("role", input.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cập nhật vai trò thất bại"})
		return
	}
	user.Role = models.UserRole(input.Role)

	utils.WriteAuditLog(config.DB, c.GetString("user_id"), "user.role_updated",
		fmt.Sprintf("user=%d role=%s", user.ID, input.Role))
	ws.BroadcastAdminEvent("audit", c.GetString("user_id"), "user.role_updated", user.Email)

	c.JSON(http.StatusOK, userProjection(&user))
}

// DELETE /api/admin/users/:id
func DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID người dùng không hợp lệ"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	// Enrollment có OnDelete:CASCADE nên xoá user sẽ kéo theo đăng ký
	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Xoá người dùng thất bại"})
		return
	}

	utils.WriteAuditLog(config.DB, c.GetString("user_id"), "user.deleted",
		fmt.Sprintf("user=%d email=%s", user.ID, user.Email))
	ws.BroadcastAdminEvent("audit", c.GetString("user_id"), "user.deleted", user.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Xoá người dùng thành công"})
}

// POST /api/admin/users: admin thêm học viên với mật khẩu mặc định
func AddStudent(c *gin.Context) {
	var input AddStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên và email là bắt buộc"})
		return
	}

	// Check email tồn tại
	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không kiểm tra được email"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email đã được sử dụng"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultStudentPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể mã hoá mật khẩu"})
		return
	}

	student := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleStudent,
	}

	if err := config.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo học viên"})
		return
	}

	utils.WriteAuditLog(config.DB, c.GetString("user_id"), "user.student_added",
		fmt.Sprintf("user=%d email=%s", student.ID, student.Email))
	ws.BroadcastAdminEvent("audit", c.GetString("user_id"), "user.student_added", student.Email)

	// Gửi mail chào mừng kèm mật khẩu tạm, best-effort
	go func(to, name string) {
		body := fmt.Sprintf(
			"<p>Chào %s,</p><p>Tài khoản học viên của bạn đã được tạo. Mật khẩu tạm: <b>%s</b></p><p>Vui lòng đổi mật khẩu ngay sau khi đăng nhập.</p>",
			name, defaultStudentPassword,
		)
		if err := utils.SendEmail(to, "Tài khoản học viên của bạn", body); err != nil {
			log.Println("Không gửi được mail chào mừng:", err)
		}
	}(student.Email, student.Name)

	c.JSON(http.StatusCreated, userProjection(&student))
}
