package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/week"
)

// WeeklyCapacityHours 周产能基准（小时）
// 固定业务假设：利用率 = 周工时 / 45 × 100，本设计中不可配置
const WeeklyCapacityHours = 45.0

// ── 工时模块业务错误 ──

var (
	ErrInvalidWorkDate = errors.New("工作日期格式无效")
	ErrFutureWorkDate  = errors.New("工作日期不能晚于今天")
	ErrInvalidHours    = errors.New("工时必须在 0-9 小时之间，且步长为 0.5")
	ErrUnknownClient   = errors.New("客户不存在")
	ErrWeekNotEditable = errors.New("该周工时已提交，不能再录入")
)

// TimesheetService 工时业务接口
type TimesheetService interface {
	RecordEntry(ctx context.Context, owner string, req *dto.CreateEntryRequest) (*dto.EntryResponse, error)
	WeeklySummary(ctx context.Context, owner string, dateStr string) (*dto.WeeklySummaryResponse, error)
	Dashboard(ctx context.Context, owner string) (*dto.EmployeeDashboardResponse, error)
}

type timesheetService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewTimesheetService 创建 TimesheetService 实例
func NewTimesheetService(repo *repository.Repository, logger *zap.Logger) TimesheetService {
	return &timesheetService{repo: repo, logger: logger, now: time.Now}
}

// Utilization 计算相对周产能的利用率百分比，保留两位小数
func Utilization(totalHours float64) float64 {
	return math.Round(totalHours/WeeklyCapacityHours*100*100) / 100
}

// ────────────────────── RecordEntry ──────────────────────

func (s *timesheetService) RecordEntry(ctx context.Context, owner string, req *dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	// 1. 校验工作日期（不晚于今天）
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return nil, ErrInvalidWorkDate
	}
	workDate = week.Truncate(workDate)
	if workDate.After(week.Truncate(s.now())) {
		return nil, ErrFutureWorkDate
	}

	// 2. 校验工时（0-9，步长 0.5）
	if err := validateHours(req.Hours); err != nil {
		return nil, err
	}

	// 3. 校验客户存在
	if _, err := s.repo.Client.GetByName(ctx, req.Client); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownClient
		}
		s.logger.Error("查询客户失败", zap.Error(err))
		return nil, err
	}

	// 4. 校验所属周为 Draft（未提交）
	weekStart := week.Start(workDate)
	status, err := s.weekStatus(ctx, owner, weekStart)
	if err != nil {
		return nil, err
	}
	if status != model.StatusDraft {
		return nil, ErrWeekNotEditable
	}

	// 5. 事务内复查状态并写入（消除检查与写入之间的竞态窗口）
	entry := &model.TimesheetEntry{
		UserEmail:   owner,
		WorkDate:    workDate,
		Client:      req.Client,
		Project:     req.Project,
		Description: req.Description,
		Hours:       req.Hours,
	}
	if err := s.repo.Timesheet.CreateDraftGated(ctx, entry, weekStart); err != nil {
		if errors.Is(err, repository.ErrWeekNotDraft) {
			return nil, ErrWeekNotEditable
		}
		s.logger.Error("写入工时记录失败", zap.Error(err))
		return nil, err
	}

	return toEntryResponse(entry), nil
}

// ────────────────────── WeeklySummary ──────────────────────

func (s *timesheetService) WeeklySummary(ctx context.Context, owner string, dateStr string) (*dto.WeeklySummaryResponse, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidWorkDate
	}

	weekStart := week.Start(d)
	weekEnd := week.End(d)

	entries, err := s.repo.Timesheet.ListByOwnerWeek(ctx, owner, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("查询周工时失败", zap.Error(err))
		return nil, err
	}

	status, err := s.weekStatus(ctx, owner, weekStart)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EntryResponse, 0, len(entries))
	var total float64
	for i := range entries {
		result = append(result, *toEntryResponse(&entries[i]))
		total += entries[i].Hours
	}

	return &dto.WeeklySummaryResponse{
		WeekStart:  weekStart.Format("2006-01-02"),
		WeekEnd:    weekEnd.Format("2006-01-02"),
		Status:     status,
		Entries:    result,
		TotalHours: total,
	}, nil
}

// ────────────────────── Dashboard ──────────────────────

func (s *timesheetService) Dashboard(ctx context.Context, owner string) (*dto.EmployeeDashboardResponse, error) {
	today := s.now()
	weekStart := week.Start(today)
	weekEnd := week.End(today)

	total, err := s.repo.Timesheet.SumHoursByOwnerWeek(ctx, owner, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("统计周工时失败", zap.Error(err))
		return nil, err
	}

	return &dto.EmployeeDashboardResponse{
		WeekStart:   weekStart.Format("2006-01-02"),
		TotalHours:  total,
		Utilization: Utilization(total),
	}, nil
}

// ── 内部辅助 ──

// validateHours 校验工时数值：[0, 9] 且为 0.5 的整数倍
func validateHours(h float64) error {
	if h < 0 || h > 9 {
		return ErrInvalidHours
	}
	steps := h * 2
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return ErrInvalidHours
	}
	return nil
}

// weekStatus 查询某周的提交状态，无记录时为 Draft
func (s *timesheetService) weekStatus(ctx context.Context, owner string, weekStart time.Time) (string, error) {
	sub, err := s.repo.Submission.GetByOwnerWeek(ctx, owner, weekStart)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.StatusDraft, nil
		}
		s.logger.Error("查询周提交状态失败", zap.Error(err))
		return "", err
	}
	return sub.Status, nil
}

func toEntryResponse(e *model.TimesheetEntry) *dto.EntryResponse {
	return &dto.EntryResponse{
		ID:          e.ID,
		UserEmail:   e.UserEmail,
		WorkDate:    e.WorkDate.Format("2006-01-02"),
		Client:      e.Client,
		Project:     e.Project,
		Description: e.Description,
		Hours:       e.Hours,
		Weekend:     week.IsWeekend(e.WorkDate),
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
