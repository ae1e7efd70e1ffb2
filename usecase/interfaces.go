package usecase

import (
	"context"

	"pixelcraft-server/domain/entity"
)

// IdentityProvider 外部身份系统协作方接口
// 由 internal/identity 的 Clerk 适配器实现，测试中用 Mock 替换
type IdentityProvider interface {
	// FetchUser 回源拉取用户档案（自愈式读取：Webhook 尚未到达时合成本地记录）
	FetchUser(ctx context.Context, clerkID string) (*entity.User, error)

	// SetInternalUserID 把内部主键回写到身份系统的公开元数据（尽力而为）
	SetInternalUserID(ctx context.Context, clerkID string, internalID uint) error
}

// ListingCache 图片列表页缓存接口
// 由 internal/cache 的 Redis 实现提供，测试中用 Mock 替换
type ListingCache interface {
	// GetPage 命中时反序列化到 dest 并返回 true
	GetPage(ctx context.Context, authorID uint, page int, dest any) bool

	// SetPage 写入一页列表结果
	SetPage(ctx context.Context, authorID uint, page int, value any)

	// InvalidateAuthor 清理指定用户的全部列表页缓存
	InvalidateAuthor(ctx context.Context, authorID uint)
}
