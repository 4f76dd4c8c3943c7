package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kvrvenkatca-ai/firm-timesheet/internal/dto"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/service"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/response"
)

// ClientHandler 客户模块 HTTP 处理器
type ClientHandler struct {
	clientSvc service.ClientService
}

// NewClientHandler 创建 ClientHandler
func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

// Create 新增客户（管理员）
// POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.clientSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrClientExists) {
			response.Conflict(c, 15001, "客户已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List 客户列表（按创建顺序）
// GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	result, err := h.clientSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
