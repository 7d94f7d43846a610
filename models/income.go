package models

import (
	"time"

	"gorm.io/gorm"
)

// Income 收入记录模型
// Description 允许为空，用指针映射 NULL 列，序列化时输出 null 而不是空串。
// UserID 不做外键约束，用户删除后收入记录保留（孤儿行语义见 DESIGN.md）。
type Income struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description *string        `json:"description" gorm:"size:255"`
	Amount      uint           `json:"amount" gorm:"not null"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Income) TableName() string {
	return "incomes"
}
