package model

import "time"

// 角色常量
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User 用户表 — 对应 users
// 账号在开通阶段创建（见 cmd/seed），登录时只读
type User struct {
	Email        string    `gorm:"type:varchar(255);primaryKey"                    json:"email"`
	Name         string    `gorm:"type:varchar(100);not null"                      json:"name"`
	Role         string    `gorm:"type:varchar(20);not null;default:'employee'"    json:"role"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                      json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"              json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"              json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
