package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
)

// ── 测试辅助 ──

func setupTestClientService() (ClientService, *testRepos) {
	repo, mocks := newTestRepository()
	svc := NewClientService(repo, zap.NewNop())
	return svc, mocks
}

// ── Create 测试 ──

func TestClientService_Create_Success(t *testing.T) {
	svc, _ := setupTestClientService()

	result, err := svc.Create(context.Background(), &dto.CreateClientRequest{ClientName: "蓝山科技"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ClientName != "蓝山科技" {
		t.Errorf("期望ClientName=蓝山科技，实际=%s", result.ClientName)
	}
	if result.ID == "" {
		t.Error("ID 不应为空")
	}
}

func TestClientService_Create_Duplicate(t *testing.T) {
	svc, _ := setupTestClientService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateClientRequest{ClientName: "蓝山科技"}); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}

	_, err := svc.Create(ctx, &dto.CreateClientRequest{ClientName: "蓝山科技"})
	if !errors.Is(err, ErrClientExists) {
		t.Errorf("期望 ErrClientExists，实际: %v", err)
	}
}

// ── List 测试 ──

func TestClientService_List_InsertionOrder(t *testing.T) {
	svc, _ := setupTestClientService()
	ctx := context.Background()

	names := []string{"蓝山科技", "宏远咨询", "启明制造"}
	for _, n := range names {
		if _, err := svc.Create(ctx, &dto.CreateClientRequest{ClientName: n}); err != nil {
			t.Fatalf("Create(%s) 应成功: %v", n, err)
		}
	}

	clients, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(clients) != len(names) {
		t.Fatalf("期望%d个客户，实际=%d", len(names), len(clients))
	}
	for i, n := range names {
		if clients[i].ClientName != n {
			t.Errorf("第%d个期望=%s，实际=%s", i, n, clients[i].ClientName)
		}
	}
}

func TestClientService_List_Empty(t *testing.T) {
	svc, _ := setupTestClientService()

	clients, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(clients) != 0 {
		t.Errorf("期望空列表，实际=%d", len(clients))
	}
}
