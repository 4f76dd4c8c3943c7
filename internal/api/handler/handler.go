package handler

import "github.com/kvrvenkatca-ai/firm-timesheet/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Client     *ClientHandler
	Timesheet  *TimesheetHandler
	Submission *SubmissionHandler
	Dashboard  *DashboardHandler
	Report     *ReportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Client:     NewClientHandler(svc.Client),
		Timesheet:  NewTimesheetHandler(svc.Timesheet),
		Submission: NewSubmissionHandler(svc.Submission),
		Dashboard:  NewDashboardHandler(svc.Timesheet, svc.Submission),
		Report:     NewReportHandler(svc.Report),
	}
}
