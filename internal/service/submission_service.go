package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/week"
)

// ── 周提交模块业务错误 ──

var (
	ErrInvalidWeekDate    = errors.New("周日期格式无效")
	ErrSubmitNotFriday    = errors.New("仅周五可提交本周工时")
	ErrAlreadySubmitted   = errors.New("该周已提交，不能重复提交")
	ErrSubmissionNotFound = errors.New("提交记录不存在")
)

// SubmissionService 周提交业务接口
//
// 状态机：Draft（无记录）→ Submitted → Approved | Rejected。
// Approved/Rejected 为终态；对终态重复执行同一转换是幂等的无副作用写入。
type SubmissionService interface {
	SubmitWeek(ctx context.Context, owner string, req *dto.SubmitWeekRequest) (*dto.SubmissionResponse, error)
	StatusFor(ctx context.Context, owner string, dateStr string) (*dto.WeekStatusResponse, error)
	Approve(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	Reject(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	List(ctx context.Context, req *dto.SubmissionListRequest) ([]dto.SubmissionResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
}

type submissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewSubmissionService 创建 SubmissionService 实例
func NewSubmissionService(repo *repository.Repository, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── SubmitWeek ──────────────────────

func (s *submissionService) SubmitWeek(ctx context.Context, owner string, req *dto.SubmitWeekRequest) (*dto.SubmissionResponse, error) {
	d, err := time.Parse("2006-01-02", req.WeekDate)
	if err != nil {
		return nil, ErrInvalidWeekDate
	}
	weekStart := week.Start(d)

	// 业务规则：周提交仅在周五（服务器当日）开放
	if !week.IsFriday(s.now()) {
		return nil, ErrSubmitNotFriday
	}

	// 已存在提交记录（任何状态）即不可重复提交
	if _, err := s.repo.Submission.GetByOwnerWeek(ctx, owner, weekStart); err == nil {
		return nil, ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询周提交记录失败", zap.Error(err))
		return nil, err
	}

	sub := &model.WeeklySubmission{
		UserEmail: owner,
		WeekStart: weekStart,
		Status:    model.StatusSubmitted,
	}
	if err := s.repo.Submission.Create(ctx, sub); err != nil {
		// 并发重复提交由 (user_email, week_start) 唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		s.logger.Error("创建周提交记录失败", zap.Error(err))
		return nil, err
	}

	return toSubmissionResponse(sub), nil
}

// ────────────────────── StatusFor ──────────────────────

func (s *submissionService) StatusFor(ctx context.Context, owner string, dateStr string) (*dto.WeekStatusResponse, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidWeekDate
	}
	weekStart := week.Start(d)

	status := model.StatusDraft
	sub, err := s.repo.Submission.GetByOwnerWeek(ctx, owner, weekStart)
	switch {
	case err == nil:
		status = sub.Status
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 无记录即 Draft
	default:
		s.logger.Error("查询周提交状态失败", zap.Error(err))
		return nil, err
	}

	return &dto.WeekStatusResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Status:    status,
	}, nil
}

// ────────────────────── Approve / Reject ──────────────────────

func (s *submissionService) Approve(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	return s.transition(ctx, id, model.StatusApproved)
}

func (s *submissionService) Reject(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	return s.transition(ctx, id, model.StatusRejected)
}

func (s *submissionService) transition(ctx context.Context, id string, status string) (*dto.SubmissionResponse, error) {
	sub, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 任意输入的 ID 必须有存在性检查，未知 ID 不做静默空操作
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("查询周提交记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 终态重复写入保持幂等：同一状态再次提交直接返回
	if sub.Status != status {
		if err := s.repo.Submission.UpdateStatus(ctx, id, status); err != nil {
			s.logger.Error("更新提交状态失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		sub.Status = status
	}

	return toSubmissionResponse(sub), nil
}

// ────────────────────── List ──────────────────────

func (s *submissionService) List(ctx context.Context, req *dto.SubmissionListRequest) ([]dto.SubmissionResponse, error) {
	subs, err := s.repo.Submission.List(ctx, req.Status)
	if err != nil {
		s.logger.Error("查询提交记录列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		result = append(result, *toSubmissionResponse(&subs[i]))
	}
	return result, nil
}

// ────────────────────── AdminDashboard ──────────────────────

func (s *submissionService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	employees, err := s.repo.User.CountByRole(ctx, model.RoleEmployee)
	if err != nil {
		s.logger.Error("统计员工数量失败", zap.Error(err))
		return nil, err
	}

	pending, err := s.repo.Submission.CountByStatus(ctx, model.StatusSubmitted)
	if err != nil {
		s.logger.Error("统计待审批数量失败", zap.Error(err))
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		TotalEmployees:   employees,
		PendingApprovals: pending,
	}, nil
}

// ── 内部辅助 ──

func toSubmissionResponse(sub *model.WeeklySubmission) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		ID:        sub.ID,
		UserEmail: sub.UserEmail,
		WeekStart: sub.WeekStart.Format("2006-01-02"),
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: sub.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
