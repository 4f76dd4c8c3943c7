package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
)

// ClientRepository 客户数据访问接口
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	GetByName(ctx context.Context, name string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
}

// clientRepo ClientRepository 的 GORM 实现
type clientRepo struct {
	db *gorm.DB
}

// NewClientRepo 创建 ClientRepository 实例
func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepo) GetByName(ctx context.Context, name string) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).
		Where("client_name = ?", name).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&clients).Error
	return clients, err
}
