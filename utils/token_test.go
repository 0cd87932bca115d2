package utils_test

import (
	"testing"

	"github.com/vnkhanh/e-course-backend/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("42", "ADMIN")
	if err != nil {
		t.Fatalf("không sinh được token: %v", err)
	}

	claims, err := utils.VerifyToken(token)
	if err != nil {
		t.Fatalf("không verify được token: %v", err)
	}
	if claims.UserID != "42" || claims.Role != "ADMIN" {
		t.Errorf("claims sai: %+v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := utils.GenerateToken("1", "STUDENT")
	if err != nil {
		t.Fatalf("không sinh được token: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := utils.VerifyToken(token); err == nil {
		t.Errorf("token ký bằng secret khác phải bị từ chối")
	}
}

func TestTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := utils.VerifyToken("khong-phai-jwt"); err == nil {
		t.Errorf("chuỗi rác phải bị từ chối")
	}
}
