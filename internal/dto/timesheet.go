package dto

// ── 工时模块 DTO ──

// CreateEntryRequest 录入工时请求
// 展示层已做控件级限制（0-9、步长0.5、日期不晚于今天），服务端视其为不可信输入重新校验
type CreateEntryRequest struct {
	WorkDate    string  `json:"work_date"   binding:"required"`
	Client      string  `json:"client"      binding:"required"`
	Project     string  `json:"project"     binding:"required,max=100"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Hours       float64 `json:"hours"       binding:"min=0,max=9"` // 0 为合法值，步长校验在 Service 层
}

// EntryResponse 工时记录响应
type EntryResponse struct {
	ID          string  `json:"id"`
	UserEmail   string  `json:"user_email"`
	WorkDate    string  `json:"work_date"`
	Client      string  `json:"client"`
	Project     string  `json:"project"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Weekend     bool    `json:"weekend"` // 派生字段：工作日期是否为周末
	CreatedAt   string  `json:"created_at"`
}

// WeeklySummaryRequest 周汇总查询参数（date 为该周内任意一天）
type WeeklySummaryRequest struct {
	Date string `form:"date" binding:"required"`
}

// WeeklySummaryResponse 周汇总响应
type WeeklySummaryResponse struct {
	WeekStart  string          `json:"week_start"`
	WeekEnd    string          `json:"week_end"`
	Status     string          `json:"status"`
	Entries    []EntryResponse `json:"entries"`
	TotalHours float64         `json:"total_hours"`
}

// EmployeeDashboardResponse 员工仪表盘响应
type EmployeeDashboardResponse struct {
	WeekStart   string  `json:"week_start"`
	TotalHours  float64 `json:"total_hours"`
	Utilization float64 `json:"utilization"` // 相对 45 小时周产能的百分比
}

// AdminDashboardResponse 管理员仪表盘响应
type AdminDashboardResponse struct {
	TotalEmployees   int64 `json:"total_employees"`
	PendingApprovals int64 `json:"pending_approvals"`
}
