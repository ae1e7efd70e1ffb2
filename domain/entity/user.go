package entity

import "time"

// DefaultCreditBalance 新用户的初始积分额度
const DefaultCreditBalance = 10

// User Clerk 用户同步表
// ClerkID 是外部身份系统的 subject id，与内部主键 ID 严格区分
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClerkID       string    `gorm:"uniqueIndex;size:64" json:"clerkId"` // Clerk user_id
	Email         string    `gorm:"size:255" json:"email"`
	Username      string    `gorm:"size:100" json:"username"`
	FirstName     string    `gorm:"size:100" json:"firstName"`
	LastName      string    `gorm:"size:100" json:"lastName"`
	Photo         string    `gorm:"size:500" json:"photo"`
	CreditBalance int       `gorm:"default:10" json:"creditBalance"` // ⚠️ 只允许通过原子自增修改
	PlanID        *uint     `json:"planId,omitempty"`                // 订阅套餐（可选）
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
