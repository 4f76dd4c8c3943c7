package dto

// ── 客户模块 DTO ──

// CreateClientRequest 新增客户请求
type CreateClientRequest struct {
	ClientName string `json:"client_name" binding:"required,min=1,max=100"`
}

// ClientResponse 客户信息响应
type ClientResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	CreatedAt  string `json:"created_at"`
}
