package dto

// ── 报表模块 DTO ──

// ReportListRequest 工时报表查询参数
// weekend_only 为 true 时仅返回周末（周六/周日）的工时记录
type ReportListRequest struct {
	WeekendOnly bool `form:"weekend_only"`
}
