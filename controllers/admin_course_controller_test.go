package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/vnkhanh/e-course-backend/models"
)

func TestCourseRoutesAllowInstructor(t *testing.T) {
	r, db := setupTestApp(t)
	instructor := createUser(t, db, "Instructor", "i@example.com", models.RoleInstructor)
	student := createUser(t, db, "Student", "s@example.com", models.RoleStudent)

	w := doRequest(t, r, http.MethodGet, "/api/admin/courses", tokenFor(t, instructor), nil)
	if w.Code != http.StatusOK {
		t.Errorf("instructor xem danh sách khoá học: muốn 200, nhận %d", w.Code)
	}

	w = doRequest(t, r, http.MethodGet, "/api/admin/courses", tokenFor(t, student), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("student xem danh sách khoá học: muốn 403, nhận %d", w.Code)
	}

	// Nhóm chỉ dành cho admin thì instructor cũng không được vào
	w = doRequest(t, r, http.MethodGet, "/api/admin/stats", tokenFor(t, instructor), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("instructor xem stats: muốn 403, nhận %d", w.Code)
	}
}

func TestGetAllCoursesResolvesInstructor(t *testing.T) {
	r, db := setupTestApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	instructor := createUser(t, db, "Giảng viên", "gv@example.com", models.RoleInstructor)
	createCourse(t, db, "Go cơ bản", instructor.ID, 150000, true)
	createCourse(t, db, "Go nâng cao", instructor.ID, 250000, false)

	w := doRequest(t, r, http.MethodGet, "/api/admin/courses", tokenFor(t, admin), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("muốn 200, nhận %d", w.Code)
	}

	var courses []struct {
		ID         uint `json:"id"`
		Instructor struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"instructor"`
	}
	decodeJSON(t, w, &courses)

	if len(courses) != 2 {
		t.Fatalf("muốn 2 khoá học, nhận %d", len(courses))
	}
	for _, course := range courses {
		if course.Instructor.ID != instructor.ID || course.Instructor.Email != "gv@example.com" {
			t.Errorf("instructor không được resolve: %+v", course.Instructor)
		}
	}
}

func TestGetCourseByIDWithModules(t *testing.T) {
	r, db := setupTestApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	instructor := createUser(t, db, "GV", "gv@example.com", models.RoleInstructor)
	course := createCourse(t, db, "Go cơ bản", instructor.ID, 150000, true)

	for i, title := range []string{"Mở đầu", "Cú pháp", "Goroutine"} {
		if err := db.Create(&models.CourseModule{CourseID: course.ID, Title: title, SortOrder: i}).Error; err != nil {
			t.Fatalf("không tạo được module: %v", err)
		}
	}

	token := tokenFor(t, admin)
	w := doRequest(t, r, http.MethodGet, "/api/admin/courses/"+strconv.Itoa(int(course.ID)), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("muốn 200, nhận %d", w.Code)
	}

	var detail struct {
		Modules []struct {
			Title     string `json:"title"`
			SortOrder int    `json:"sort_order"`
		} `json:"modules"`
	}
	decodeJSON(t, w, &detail)
	if len(detail.Modules) != 3 {
		t.Fatalf("muốn 3 module, nhận %d", len(detail.Modules))
	}
	if detail.Modules[0].Title != "Mở đầu" || detail.Modules[2].Title != "Goroutine" {
		t.Errorf("module không theo sort_order: %+v", detail.Modules)
	}

	w = doRequest(t, r, http.MethodGet, "/api/admin/courses/9999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("khoá học không tồn tại: muốn 404, nhận %d", w.Code)
	}
}

func TestUpdateCourseOverwritesFields(t *testing.T) {
	r, db := setupTestApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	instructor := createUser(t, db, "GV", "gv@example.com", models.RoleInstructor)
	course := createCourse(t, db, "Tên cũ", instructor.ID, 100000, true)

	w := doRequest(t, r, http.MethodPut, "/api/admin/courses/"+strconv.Itoa(int(course.ID)),
		tokenFor(t, admin), map[string]interface{}{
			"title":       "Tên mới",
			"description": "Mô tả mới",
			"price_cents": 200000,
			"difficulty":  "ADVANCED",
		})
	if w.Code != http.StatusOK {
		t.Fatalf("muốn 200, nhận %d (%s)", w.Code, w.Body.String())
	}

	var stored models.Course
	if err := db.First(&stored, "id = ?", course.ID).Error; err != nil {
		t.Fatalf("không đọc lại được khoá học: %v", err)
	}
	if stored.Title != "Tên mới" || stored.Description != "Mô tả mới" {
		t.Errorf("title/description không bị ghi đè: %+v", stored)
	}
	if stored.PriceCents != 200000 || stored.Difficulty != models.DifficultyAdvanced {
		t.Errorf("price/difficulty không bị ghi đè: %+v", stored)
	}
	if stored.IsPublished != true {
		t.Errorf("update không được động vào cờ xuất bản")
	}
	if stored.Slug != "ten-moi" {
		t.Errorf("slug không được làm mới theo title: %s", stored.Slug)
	}
}

func TestTogglePublishPairRestoresOriginal(t *testing.T) {
	r, db := setupTestApp(t)
	admin := createUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	instructor := createUser(t, db, "GV", "gv@example.com", models.RoleInstructor)
	course := createCourse(t, db, "Go cơ bản", instructor.ID, 100000, false)
	token := tokenFor(t, admin)
	path := "/api/admin/courses/" + strconv.Itoa(int(course.ID)) + "/publish"

	w := doRequest(t, r, http.MethodPut, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle lần 1: muốn 200, nhận %d", w.Code)
	}
	var toggled struct {
		IsPublished bool `json:"is_published"`
	}
	decodeJSON(t, w, &toggled)
	if !toggled.IsPublished {
		t.Errorf("toggle lần 1: muốn is_published=true")
	}

	w = doRequest(t, r, http.MethodPut, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle lần 2: muốn 200, nhận %d", w.Code)
	}
	decodeJSON(t, w, &toggled)
	if toggled.IsPublished {
		t.Errorf("toggle hai lần phải về giá trị ban đầu")
	}

	var stored models.Course
	db.First(&stored, "id = ?", course.ID)
	if stored.IsPublished {
		t.Errorf("DB không về trạng thái ban đầu sau cặp toggle")
	}

	w = doRequest(t, r, http.MethodPut, "/api/admin/courses/9999/publish", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("toggle khoá không tồn tại: muốn 404, nhận %d", w.Code)
	}
}
