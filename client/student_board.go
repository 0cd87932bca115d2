package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Phía "dashboard" của trang quản lý học viên:
// gọi API admin, lọc học viên, giữ state loading/loaded/error.

type userPayload struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Enrollments []struct {
		ID       uint `json:"id"`
		CourseID uint `json:"course_id"`
	} `json:"enrollments"`
}

// StudentRow: một dòng trong bảng học viên.
// EnrolledCourses và Status là giá trị hiển thị, không có cột tương ứng trong DB;
// Status chỉ sống trong phiên làm việc, reload là mất.
type StudentRow struct {
	ID              uint
	Name            string
	Email           string
	Role            string
	EnrolledCourses int
	Status          string
}

type AdminClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewAdminClient(baseURL, token string) *AdminClient {
	return &AdminClient{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *AdminClient) do(method, path string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.BaseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("server trả về %d: %s", resp.StatusCode, string(data))
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// StudentBoard giữ state của trang quản lý học viên
type StudentBoard struct {
	api *AdminClient

	Loading  bool
	Err      error
	Students []StudentRow
}

func NewStudentBoard(api *AdminClient) *StudentBoard {
	return &StudentBoard{api: api}
}

// Load fetch toàn bộ user rồi lọc phía client lấy học viên,
// suy ra số khoá đã đăng ký và gán Status mặc định "Active"
func (b *StudentBoard) Load() {
	b.Loading = true

	var users []userPayload
	if _, err := b.api.do(http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		b.Err = fmt.Errorf("không tải được danh sách học viên: %w", err)
		b.Loading = false
		return
	}

	rows := make([]StudentRow, 0, len(users))
	for _, u := range users {
		if u.Role != "STUDENT" {
			continue
		}
		rows = append(rows, StudentRow{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			Role:            u.Role,
			EnrolledCourses: len(u.Enrollments),
			Status:          "Active", // DB chưa có cột status
		})
	}

	b.Students = rows
	b.Err = nil
	b.Loading = false
}

// Add gọi POST rồi append lạc quan vào danh sách tại chỗ
func (b *StudentBoard) Add(name, email string) error {
	payload := map[string]string{"name": name, "email": email}

	var created userPayload
	if _, err := b.api.do(http.MethodPost, "/api/admin/users", payload, &created); err != nil {
		b.Err = fmt.Errorf("không thêm được học viên: %w", err)
		return b.Err
	}

	b.Students = append(b.Students, StudentRow{
		ID:     created.ID,
		Name:   created.Name,
		Email:  created.Email,
		Role:   created.Role,
		Status: "Active",
	})
	b.Err = nil
	return nil
}

// EditRole gọi PUT rồi thay dòng tương ứng tại chỗ
func (b *StudentBoard) EditRole(id uint, role string) error {
	payload := map[string]string{"role": role}

	var updated userPayload
	if _, err := b.api.do(http.MethodPut, fmt.Sprintf("/api/admin/users/%d", id), payload, &updated); err != nil {
		b.Err = fmt.Errorf("không cập nhật được học viên: %w", err)
		return b.Err
	}

	for i := range b.Students {
		if b.Students[i].ID == id {
			b.Students[i].Role = updated.Role
			break
		}
	}
	b.Err = nil
	return nil
}

// Delete gọi DELETE rồi bỏ dòng tương ứng khỏi danh sách
func (b *StudentBoard) Delete(id uint) error {
	if _, err := b.api.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil); err != nil {
		b.Err = fmt.Errorf("không xoá được học viên: %w", err)
		return b.Err
	}

	rows := b.Students[:0]
	for _, row := range b.Students {
		if row.ID != id {
			rows = append(rows, row)
		}
	}
	b.Students = rows
	b.Err = nil
	return nil
}

// ToggleStatus chỉ đảo trạng thái trong bộ nhớ: backend chưa lưu status
func (b *StudentBoard) ToggleStatus(id uint) {
	for i := range b.Students {
		if b.Students[i].ID == id {
			if b.Students[i].Status == "Active" {
				b.Students[i].Status = "Blocked"
			} else {
				b.Students[i].Status = "Active"
			}
			return
		}
	}
}
