package repository

import "pixelcraft-server/domain/entity"

// UserRepository 用户数据仓库接口
type UserRepository interface {
	// Create 创建新用户（首次 user.created 事件或自愈式读取时调用）
	// clerk_id 冲突时返回 ErrUserAlreadyExists
	Create(user *entity.User) error

	// GetByClerkID 根据 Clerk user_id 获取用户，不存在返回 (nil, nil)
	GetByClerkID(clerkID string) (*entity.User, error)

	// GetByID 根据内部主键获取用户，不存在返回 (nil, nil)
	GetByID(id uint) (*entity.User, error)

	// Update 按 clerk_id 做部分字段更新，返回更新后的记录
	// 无匹配记录时返回 ErrUserNotFound
	Update(clerkID string, fields map[string]interface{}) (*entity.User, error)

	// Delete 按 clerk_id 删除用户，返回被删除的记录
	// 无匹配记录时返回 ErrUserNotFound
	Delete(clerkID string) (*entity.User, error)

	// AdjustCredits 按内部 id 原子增减积分，返回更新后的记录
	// ⚠️ 必须由数据库执行自增，禁止应用层读改写（并发扣费会丢更新）
	// 无匹配记录时返回 ErrUserNotFound
	AdjustCredits(id uint, delta int) (*entity.User, error)
}
