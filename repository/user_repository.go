package repository

import (
	"errors"

	"pixelcraft-server/domain/entity"
	domainErrors "pixelcraft-server/domain/errors"
	domainRepo "pixelcraft-server/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository GORM 实现 UserRepository 接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 构造函数
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// Create 创建新用户
// 依赖 bootstrap 开启的 TranslateError，把驱动的唯一约束冲突翻译成 gorm.ErrDuplicatedKey
func (r *userRepository) Create(user *entity.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainErrors.ErrUserAlreadyExists
	}
	return err
}

// GetByClerkID 根据 Clerk user_id 查询用户
func (r *userRepository) GetByClerkID(clerkID string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("clerk_id = ?", clerkID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // 返回 nil 表示不存在，调用方需处理
	}
	return &user, err
}

// GetByID 根据内部主键查询用户
func (r *userRepository) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// Update 按 clerk_id 做部分字段更新
// ⚠️ 禁止使用 GORM Save，它会整行覆盖，把 credit_balance 一并写掉
func (r *userRepository) Update(clerkID string, fields map[string]interface{}) (*entity.User, error) {
	var user entity.User
	result := r.db.Model(&user).
		Clauses(clause.Returning{}).
		Where("clerk_id = ?", clerkID).
		Updates(fields)

	if result.Error != nil {
		return nil, result.Error
	}

	// RowsAffected == 0 说明用户不存在
	if result.RowsAffected == 0 {
		return nil, domainErrors.ErrUserNotFound
	}

	return &user, nil
}

// Delete 按 clerk_id 删除用户（硬删除），返回被删除的记录
func (r *userRepository) Delete(clerkID string) (*entity.User, error) {
	var user entity.User
	result := r.db.
		Clauses(clause.Returning{}).
		Where("clerk_id = ?", clerkID).
		Delete(&user)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainErrors.ErrUserNotFound
	}

	return &user, nil
}

// AdjustCredits 原子增减积分（扣费热路径）
// ✅ 自增表达式由 PostgreSQL 执行，并发扣费不会丢更新
func (r *userRepository) AdjustCredits(id uint, delta int) (*entity.User, error) {
	var user entity.User
	result := r.db.Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("credit_balance", gorm.Expr("credit_balance + ?", delta))

	if result.Error != nil {
		return nil, result.Error
	}

	// ⚠️ 关键：检查是否真的更新了记录
	// 扣费落空必须上报，静默忽略等于让用户免费消费付费功能
	if result.RowsAffected == 0 {
		return nil, domainErrors.ErrUserNotFound
	}

	return &user, nil
}
