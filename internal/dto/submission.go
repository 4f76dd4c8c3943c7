package dto

// ── 周提交模块 DTO ──

// SubmitWeekRequest 提交周工时请求（week_date 为该周内任意一天）
type SubmitWeekRequest struct {
	WeekDate string `json:"week_date" binding:"required"`
}

// SubmissionListRequest 提交记录列表查询参数
type SubmissionListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=Submitted Approved Rejected"`
}

// SubmissionResponse 周提交记录响应
type SubmissionResponse struct {
	ID        string `json:"id"`
	UserEmail string `json:"user_email"`
	WeekStart string `json:"week_start"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// WeekStatusResponse 某周提交状态响应（无记录时为 Draft）
type WeekStatusResponse struct {
	WeekStart string `json:"week_start"`
	Status    string `json:"status"`
}
