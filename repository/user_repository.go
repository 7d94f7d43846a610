package repository

import (
	"context"
	"errors"

	"finbook/models"

	"gorm.io/gorm"
)

// UserRepository 用户表的增删查，连接从共享连接池借用
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 插入用户并回填生成的 ID
func (r *UserRepository) Create(ctx context.Context, name string) (*models.User, error) {
	u := models.User{Name: name}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID 按 ID 查询，记录不存在返回 nil, nil 而不是错误
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// List 返回全部用户，无分页
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete 删除用户，返回受影响行数让调用方区分"不存在"与"已删除"
// 该用户名下的收入记录不级联删除
func (r *UserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}
