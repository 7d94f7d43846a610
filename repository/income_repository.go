package repository

import (
	"context"
	"errors"

	"finbook/models"

	"gorm.io/gorm"
)

// IncomeRepository 收入表的增删改查，按所属用户划分
type IncomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// IncomeSummary 单个用户的收入汇总
type IncomeSummary struct {
	UserID        uint    `json:"user_id"`
	Count         int64   `json:"count"`
	TotalAmount   uint64  `json:"total_amount"`
	AverageAmount float64 `json:"average_amount"`
}

// Create 插入收入记录并回填生成的 ID
// 输入已在路由层校验，这里信任传入的字段
func (r *IncomeRepository) Create(ctx context.Context, in *models.Income) error {
	return r.db.WithContext(ctx).Create(in).Error
}

// GetByUserID 返回该用户的全部收入记录
// 用户没有记录（或不存在）时返回空切片，不返回错误
func (r *IncomeRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Income, error) {
	list := make([]models.Income, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Update 按 ID 部分更新，未提供的字段保持不变
// 记录不存在返回 nil, nil；成功后重新读取返回最新记录
func (r *IncomeRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Income, error) {
	var in models.Income
	err := r.db.WithContext(ctx).First(&in, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&in).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).First(&in, id).Error; err != nil {
			return nil, err
		}
	}
	return &in, nil
}

// Delete 删除收入记录，返回受影响行数
func (r *IncomeRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Income{}, id)
	return res.RowsAffected, res.Error
}

// SummarizeByUserID 统计该用户的收入条数与总额
func (r *IncomeRepository) SummarizeByUserID(ctx context.Context, userID uint) (*IncomeSummary, error) {
	var row struct {
		Count       int64
		TotalAmount uint64
	}
	err := r.db.WithContext(ctx).Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	s := &IncomeSummary{
		UserID:      userID,
		Count:       row.Count,
		TotalAmount: row.TotalAmount,
	}
	if row.Count > 0 {
		s.AverageAmount = float64(row.TotalAmount) / float64(row.Count)
	}
	return s, nil
}
