package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kvrvenkatca-ai/firm-timesheet/config"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *testRepos) {
	repo, mocks := newTestRepository()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	mocks.user.users["bob@firm.com"] = &model.User{
		Email:        "bob@firm.com",
		Name:         "Bob",
		Role:         model.RoleEmployee,
		PasswordHash: string(hash),
	}

	return svc, mocks
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService()

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "bob@firm.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("Token 对不应为空")
	}
	if result.User.Email != "bob@firm.com" || result.User.Role != model.RoleEmployee {
		t.Errorf("用户信息错误: %+v", result.User)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "bob@firm.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService()

	// 未知邮箱与密码错误返回同一错误，不泄露账号是否存在
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@firm.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "bob@firm.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("新 AccessToken 不应为空")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	login, _ := svc.Login(ctx, &dto.LoginRequest{
		Email:    "bob@firm.com",
		Password: "correct-password",
	})

	// Access Token 不能充当刷新凭证
	_, err := svc.RefreshToken(ctx, login.AccessToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_DeletedUser(t *testing.T) {
	svc, mocks := setupTestAuthService()
	ctx := context.Background()

	login, _ := svc.Login(ctx, &dto.LoginRequest{
		Email:    "bob@firm.com",
		Password: "correct-password",
	})

	delete(mocks.user.users, "bob@firm.com")

	_, err := svc.RefreshToken(ctx, login.RefreshToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── Logout / GetCurrentUser 测试 ──

func TestAuthService_Logout_NoRedisDegrades(t *testing.T) {
	svc, _ := setupTestAuthService()

	// Redis 缺失时登出退化为无操作，但必须无条件成功
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(10*time.Minute)); err != nil {
		t.Errorf("Logout 应始终成功: %v", err)
	}
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc, _ := setupTestAuthService()

	result, err := svc.GetCurrentUser(context.Background(), "bob@firm.com")
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if result.Name != "Bob" {
		t.Errorf("期望Name=Bob，实际=%s", result.Name)
	}
}

func TestAuthService_GetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.GetCurrentUser(context.Background(), "ghost@firm.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
