package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
)

// ErrWeekNotDraft 目标周已存在提交记录，写入被拒绝
// Service 层负责翻译为面向用户的业务错误
var ErrWeekNotDraft = errors.New("该周已提交，不允许写入工时")

// TimesheetRepository 工时记录数据访问接口
type TimesheetRepository interface {
	// CreateDraftGated 在同一事务内复查周提交状态并插入记录。
	// 状态检查与写入之间的窗口由事务消除：提交记录存在（任何状态）即拒绝。
	CreateDraftGated(ctx context.Context, entry *model.TimesheetEntry, weekStart time.Time) error
	ListByOwnerWeek(ctx context.Context, email string, weekStart, weekEnd time.Time) ([]model.TimesheetEntry, error)
	SumHoursByOwnerWeek(ctx context.Context, email string, weekStart, weekEnd time.Time) (float64, error)
	ListAll(ctx context.Context) ([]model.TimesheetEntry, error)
}

// timesheetRepo TimesheetRepository 的 GORM 实现
type timesheetRepo struct {
	db *gorm.DB
}

// NewTimesheetRepo 创建 TimesheetRepository 实例
func NewTimesheetRepo(db *gorm.DB) TimesheetRepository {
	return &timesheetRepo{db: db}
}

func (r *timesheetRepo) CreateDraftGated(ctx context.Context, entry *model.TimesheetEntry, weekStart time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub model.WeeklySubmission
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_email = ? AND week_start = ?", entry.UserEmail, weekStart).
			First(&sub).Error
		switch {
		case err == nil:
			// 存在提交记录（Submitted/Approved/Rejected 任一）即非 Draft
			return ErrWeekNotDraft
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 无提交记录即 Draft，允许写入
		default:
			return err
		}

		return tx.Create(entry).Error
	})
}

func (r *timesheetRepo) ListByOwnerWeek(ctx context.Context, email string, weekStart, weekEnd time.Time) ([]model.TimesheetEntry, error) {
	var entries []model.TimesheetEntry
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND work_date >= ? AND work_date <= ?", email, weekStart, weekEnd).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timesheetRepo) SumHoursByOwnerWeek(ctx context.Context, email string, weekStart, weekEnd time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.TimesheetEntry{}).
		Where("user_email = ? AND work_date >= ? AND work_date <= ?", email, weekStart, weekEnd).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return total, err
}

func (r *timesheetRepo) ListAll(ctx context.Context) ([]model.TimesheetEntry, error) {
	var entries []model.TimesheetEntry
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
