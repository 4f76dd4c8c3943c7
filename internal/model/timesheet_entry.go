package model

import "time"

// TimesheetEntry 工时记录表 — 对应 timesheets
// 创建后不可修改、不可删除；所属周由 work_date 推导（周一为起点）
type TimesheetEntry struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserEmail   string    `gorm:"type:varchar(255);not null;index"               json:"user_email"`
	WorkDate    time.Time `gorm:"type:date;not null"                             json:"work_date"`
	Client      string    `gorm:"type:varchar(100);not null"                     json:"client"`
	Project     string    `gorm:"type:varchar(100);not null"                     json:"project"`
	Description string    `gorm:"type:text;not null;default:''"                  json:"description"`
	Hours       float64   `gorm:"type:numeric(3,1);not null"                     json:"hours"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Owner *User `gorm:"foreignKey:UserEmail;references:Email" json:"owner,omitempty"`
}

// TableName 指定表名
func (TimesheetEntry) TableName() string { return "timesheets" }
