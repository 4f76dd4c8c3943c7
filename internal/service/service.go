package service

import (
	"go.uber.org/zap"

	"github.com/kvrvenkatca-ai/firm-timesheet/config"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/jwt"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Client     ClientService
	Timesheet  TimesheetService
	Submission SubmissionService
	Report     ReportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Client:     NewClientService(repo, logger),
		Timesheet:  NewTimesheetService(repo, logger),
		Submission: NewSubmissionService(repo, logger),
		Report:     NewReportService(repo, logger),
	}
}
