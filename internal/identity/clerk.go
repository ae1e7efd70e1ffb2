package identity

import (
	"context"
	"encoding/json"
	"fmt"

	"pixelcraft-server/domain/entity"

	clerkuser "github.com/clerk/clerk-sdk-go/v2/user"
)

// ClerkProvider Clerk Backend API 适配器
// 实现 usecase.IdentityProvider：自愈式读取回源拉档案 + 回写内部 id 到公开元数据
// 依赖 bootstrap.InitClerk 预先注入全局 API 密钥
type ClerkProvider struct{}

// NewClerkProvider 构造函数
func NewClerkProvider() *ClerkProvider {
	return &ClerkProvider{}
}

// FetchUser 从 Clerk 拉取用户档案，合成本地 User 记录（未落库）
// 缺失的可选字段统一默认空字符串，邮箱取地址列表第一项
func (p *ClerkProvider) FetchUser(ctx context.Context, clerkID string) (*entity.User, error) {
	cu, err := clerkuser.Get(ctx, clerkID)
	if err != nil {
		return nil, fmt.Errorf("拉取 Clerk 用户 %s 失败: %w", clerkID, err)
	}

	profile := &entity.User{
		ClerkID:       cu.ID,
		CreditBalance: entity.DefaultCreditBalance,
	}
	if cu.Username != nil {
		profile.Username = *cu.Username
	}
	if cu.FirstName != nil {
		profile.FirstName = *cu.FirstName
	}
	if cu.LastName != nil {
		profile.LastName = *cu.LastName
	}
	if cu.ImageURL != nil {
		profile.Photo = *cu.ImageURL
	}
	if len(cu.EmailAddresses) > 0 {
		profile.Email = cu.EmailAddresses[0].EmailAddress
	}

	return profile, nil
}

// SetInternalUserID 把内部主键回写到 Clerk 的 publicMetadata.userId
// 前端凭此元数据直接携带内部 id 调用变换接口
func (p *ClerkProvider) SetInternalUserID(ctx context.Context, clerkID string, internalID uint) error {
	meta, err := json.Marshal(map[string]interface{}{"userId": internalID})
	if err != nil {
		return err
	}

	raw := json.RawMessage(meta)
	if _, err := clerkuser.UpdateMetadata(ctx, clerkID, &clerkuser.UpdateMetadataParams{
		PublicMetadata: &raw,
	}); err != nil {
		return fmt.Errorf("回写 Clerk 元数据失败: %w", err)
	}

	return nil
}
