package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/service"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/response"
)

// TimesheetHandler 工时模块 HTTP 处理器
type TimesheetHandler struct {
	tsSvc service.TimesheetService
}

// NewTimesheetHandler 创建 TimesheetHandler
func NewTimesheetHandler(tsSvc service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{tsSvc: tsSvc}
}

// CreateEntry 录入一条工时记录（仅 Draft 状态的周可写）
// POST /api/v1/entries
func (h *TimesheetHandler) CreateEntry(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.tsSvc.RecordEntry(c.Request.Context(), email, &req)
	if err != nil {
		h.handleEntryError(c, err)
		return
	}

	response.Created(c, result)
}

// WeeklySummary 查询某周工时汇总
// GET /api/v1/entries/week?date=2026-08-31
func (h *TimesheetHandler) WeeklySummary(c *gin.Context) {
	email, ok := MustGetUserEmail(c)
	if !ok {
		return
	}

	var req dto.WeeklySummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.tsSvc.WeeklySummary(c.Request.Context(), email, req.Date)
	if err != nil {
		h.handleEntryError(c, err)
		return
	}

	response.OK(c, result)
}

// handleEntryError 将工时业务错误映射为响应
func (h *TimesheetHandler) handleEntryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWorkDate):
		response.BadRequest(c, 12001, "工作日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrFutureWorkDate):
		response.BadRequest(c, 12002, "工作日期不能晚于今天")
	case errors.Is(err, service.ErrInvalidHours):
		response.BadRequest(c, 12003, "工时必须在 0-9 之间且为 0.5 的倍数")
	case errors.Is(err, service.ErrUnknownClient):
		response.BadRequest(c, 12004, "客户不存在")
	case errors.Is(err, service.ErrWeekNotEditable):
		response.Conflict(c, 13001, "该周已提交，不可再录入工时")
	default:
		response.InternalError(c)
	}
}
