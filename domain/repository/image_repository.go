package repository

import "pixelcraft-server/domain/entity"

// ImageRepository 图片数据仓库接口（本服务只读）
type ImageRepository interface {
	// ListByAuthor 按作者内部 id 查询图片，按创建时间倒序，offset/limit 分页
	ListByAuthor(authorID uint, offset, limit int) ([]entity.Image, error)

	// CountByAuthor 统计作者的图片总数（与 ListByAuthor 使用相同过滤条件）
	CountByAuthor(authorID uint) (int64, error)
}
