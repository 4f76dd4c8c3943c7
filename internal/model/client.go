package model

import "time"

// Client 客户表 — 对应 clients
// 由管理员在客户管理页创建；工时记录按名称引用，本设计中不提供删除
type Client struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientName string    `gorm:"type:varchar(100);not null;uniqueIndex"         json:"client_name"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Client) TableName() string { return "clients" }
