package model

import "time"

// 周提交状态常量
// Draft 为虚拟状态：该周无提交记录即为 Draft，不落库
const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// WeeklySubmission 周提交表 — 对应 weekly_submissions
// (user_email, week_start) 唯一；Approved/Rejected 为终态，不回退 Draft
type WeeklySubmission struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"            json:"id"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_owner_week"      json:"user_email"`
	WeekStart time.Time `gorm:"type:date;not null;uniqueIndex:uq_owner_week"              json:"week_start"`
	Status    string    `gorm:"type:varchar(20);not null"                                 json:"status"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"updated_at"`

	// 关联
	Owner *User `gorm:"foreignKey:UserEmail;references:Email" json:"owner,omitempty"`
}

// TableName 指定表名
func (WeeklySubmission) TableName() string { return "weekly_submissions" }
