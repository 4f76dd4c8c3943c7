package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/service"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/response"
)

// DashboardHandler 仪表盘 HTTP 处理器（按角色返回不同视图）
type DashboardHandler struct {
	tsSvc  service.TimesheetService
	subSvc service.SubmissionService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(tsSvc service.TimesheetService, subSvc service.SubmissionService) *DashboardHandler {
	return &DashboardHandler{tsSvc: tsSvc, subSvc: subSvc}
}

// Get 获取仪表盘数据
// 员工返回本周工时与利用率，管理员返回员工总数与待审批数
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if role == model.RoleAdmin {
		result, err := h.subSvc.AdminDashboard(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, result)
		return
	}

	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	result, err := h.tsSvc.Dashboard(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
