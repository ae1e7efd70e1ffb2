package repository

import (
	"pixelcraft-server/domain/entity"
	domainRepo "pixelcraft-server/domain/repository"

	"gorm.io/gorm"
)

// imageRepository GORM 实现 ImageRepository 接口
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository 构造函数
func NewImageRepository(db *gorm.DB) domainRepo.ImageRepository {
	return &imageRepository{db: db}
}

// ListByAuthor 按作者查询图片，最新的排在最前
func (r *imageRepository) ListByAuthor(authorID uint, offset, limit int) ([]entity.Image, error) {
	var images []entity.Image
	err := r.db.
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&images).Error
	return images, err
}

// CountByAuthor 统计作者的图片总数
// 与 ListByAuthor 是两条独立查询，两者之间不保证读己之写（已记录的一致性缺口）
func (r *imageRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Image{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
