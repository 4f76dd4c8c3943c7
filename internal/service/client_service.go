package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
)

// ── 客户模块业务错误 ──

var (
	ErrClientExists = errors.New("客户已存在")
)

// ClientService 客户业务接口
type ClientService interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
}

type clientService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClientService 创建 ClientService 实例
func NewClientService(repo *repository.Repository, logger *zap.Logger) ClientService {
	return &clientService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if _, err := s.repo.Client.GetByName(ctx, req.ClientName); err == nil {
		return nil, ErrClientExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询客户失败", zap.Error(err))
		return nil, err
	}

	client := &model.Client{ClientName: req.ClientName}
	if err := s.repo.Client.Create(ctx, client); err != nil {
		// 并发创建由 client_name 唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrClientExists
		}
		s.logger.Error("创建客户失败", zap.Error(err))
		return nil, err
	}

	return toClientResponse(client), nil
}

// ────────────────────── List ──────────────────────

func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.Client.List(ctx)
	if err != nil {
		s.logger.Error("查询客户列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		result = append(result, *toClientResponse(&clients[i]))
	}
	return result, nil
}

// ── 内部辅助 ──

func toClientResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:         c.ID,
		ClientName: c.ClientName,
		CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
