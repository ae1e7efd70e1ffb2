package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Image 变换结果图片表 (PostgreSQL JSONB)
// 本服务只读：图片的写入发生在变换管线中
type Image struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	AuthorID           uint           `gorm:"index;not null" json:"authorId"` // users.id
	Title              string         `gorm:"size:255" json:"title"`
	PublicID           string         `gorm:"size:255" json:"publicId"` // 图片托管方的资源 ID
	Width              int            `json:"width"`
	Height             int            `json:"height"`
	TransformationType string         `gorm:"size:64" json:"transformationType"`
	Config             datatypes.JSON `gorm:"type:jsonb" json:"config,omitempty"` // 变换参数
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
