package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/service"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/response"
)

// SubmissionHandler 周提交模块 HTTP 处理器
type SubmissionHandler struct {
	subSvc service.SubmissionService
}

// NewSubmissionHandler 创建 SubmissionHandler
func NewSubmissionHandler(subSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{subSvc: subSvc}
}

// SubmitWeek 提交本周工时（仅周五可提交）
// POST /api/v1/submissions
func (h *SubmissionHandler) SubmitWeek(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.SubmitWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subSvc.SubmitWeek(c.Request.Context(), email, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidWeekDate):
			response.BadRequest(c, 12001, "日期格式无效，应为 YYYY-MM-DD")
		case errors.Is(err, service.ErrSubmitNotFriday):
			response.Conflict(c, 13002, "仅周五可提交周工时")
		case errors.Is(err, service.ErrAlreadySubmitted):
			response.Conflict(c, 13003, "该周已提交")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// WeekStatus 查询某周的提交状态（无记录为 Draft）
// GET /api/v1/submissions/status?date=2026-08-31
func (h *SubmissionHandler) WeekStatus(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.WeeklySummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subSvc.StatusFor(c.Request.Context(), email, req.Date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWeekDate) {
			response.BadRequest(c, 12001, "日期格式无效，应为 YYYY-MM-DD")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 提交记录列表（管理员，可按状态过滤）
// GET /api/v1/submissions?status=Submitted
func (h *SubmissionHandler) List(c *gin.Context) {
	var req dto.SubmissionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Approve 审批通过（管理员）
// PUT /api/v1/submissions/:id/approve
func (h *SubmissionHandler) Approve(c *gin.Context) {
	result, err := h.subSvc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTransitionError(c, err)
		return
	}

	response.OK(c, result)
}

// Reject 审批驳回（管理员）
// PUT /api/v1/submissions/:id/reject
func (h *SubmissionHandler) Reject(c *gin.Context) {
	result, err := h.subSvc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTransitionError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *SubmissionHandler) handleTransitionError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSubmissionNotFound) {
		response.NotFound(c, 14001, "提交记录不存在")
		return
	}
	response.InternalError(c)
}
