package repository

import (
	"context"

	"finbook/models"
)

// UserStore 用户仓储接口，便于路由层注入与测试替身
type UserStore interface {
	Create(ctx context.Context, name string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// IncomeStore 收入仓储接口
type IncomeStore interface {
	Create(ctx context.Context, in *models.Income) error
	GetByUserID(ctx context.Context, userID uint) ([]models.Income, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Income, error)
	Delete(ctx context.Context, id uint) (int64, error)
	SummarizeByUserID(ctx context.Context, userID uint) (*IncomeSummary, error)
}
