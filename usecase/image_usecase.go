package usecase

import (
	"context"

	"pixelcraft-server/domain/entity"
	domainErrors "pixelcraft-server/domain/errors"
	"pixelcraft-server/domain/repository"
)

// GalleryPageSize 图片列表固定页大小
const GalleryPageSize = 9

// ImagePage 一页列表结果（同时是缓存值和 HTTP 响应体）
type ImagePage struct {
	Images      []entity.Image `json:"images"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// ImageUseCase 图片列表业务逻辑层
type ImageUseCase struct {
	images repository.ImageRepository
	users  repository.UserRepository
	cache  ListingCache
}

// NewImageUseCase 构造函数，依赖注入
func NewImageUseCase(images repository.ImageRepository, users repository.UserRepository, cache ListingCache) *ImageUseCase {
	return &ImageUseCase{images: images, users: users, cache: cache}
}

// ListUserImages 按 Clerk subject id 列出该用户的历史变换图片
// page 从 1 开始；列表按创建时间倒序；totalPages = ceil(总数/页大小)，0 张图片时为 0
// 此路径不做自愈式创建：无本地记录返回 ErrUserNotFound，由调用方映射成 404
func (uc *ImageUseCase) ListUserImages(ctx context.Context, clerkID string, page int) (*ImagePage, error) {
	if page < 1 {
		return nil, domainErrors.ErrInvalidPage
	}

	user, err := uc.users.GetByClerkID(clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}

	// 先查缓存
	if uc.cache != nil {
		var cached ImagePage
		if uc.cache.GetPage(ctx, user.ID, page, &cached) {
			return &cached, nil
		}
	}

	offset := (page - 1) * GalleryPageSize
	images, err := uc.images.ListByAuthor(user.ID, offset, GalleryPageSize)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []entity.Image{} // JSON 序列化成 [] 而不是 null
	}

	total, err := uc.images.CountByAuthor(user.ID)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + GalleryPageSize - 1) / GalleryPageSize)

	result := &ImagePage{
		Images:      images,
		CurrentPage: page,
		TotalPages:  totalPages,
	}

	if uc.cache != nil {
		uc.cache.SetPage(ctx, user.ID, page, result)
	}

	return result, nil
}
