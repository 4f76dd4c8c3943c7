package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
)

// SubmissionRepository 周提交数据访问接口
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.WeeklySubmission) error
	GetByID(ctx context.Context, id string) (*model.WeeklySubmission, error)
	GetByOwnerWeek(ctx context.Context, email string, weekStart time.Time) (*model.WeeklySubmission, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	List(ctx context.Context, status string) ([]model.WeeklySubmission, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// submissionRepo SubmissionRepository 的 GORM 实现
type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo 创建 SubmissionRepository 实例
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, sub *model.WeeklySubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.WeeklySubmission, error) {
	var sub model.WeeklySubmission
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) GetByOwnerWeek(ctx context.Context, email string, weekStart time.Time) (*model.WeeklySubmission, error) {
	var sub model.WeeklySubmission
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND week_start = ?", email, weekStart).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.WeeklySubmission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *submissionRepo) List(ctx context.Context, status string) ([]model.WeeklySubmission, error) {
	db := r.db.WithContext(ctx).Model(&model.WeeklySubmission{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var subs []model.WeeklySubmission
	err := db.Order("week_start DESC, user_email ASC").Find(&subs).Error
	return subs, err
}

func (r *submissionRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.WeeklySubmission{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}
