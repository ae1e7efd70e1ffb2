package usecase

import (
	"context"
	"errors"
	"log"

	"pixelcraft-server/domain/entity"
	domainErrors "pixelcraft-server/domain/errors"
	"pixelcraft-server/domain/repository"
)

// UserUseCase 用户同步与积分账本业务逻辑层
// 负责把 Clerk Webhook 事件落到本地用户表，并维护两边的最终一致
type UserUseCase struct {
	repo  repository.UserRepository
	idp   IdentityProvider
	cache ListingCache
}

// NewUserUseCase 构造函数，依赖注入
func NewUserUseCase(repo repository.UserRepository, idp IdentityProvider, cache ListingCache) *UserUseCase {
	return &UserUseCase{repo: repo, idp: idp, cache: cache}
}

// HandleUserCreated 处理 user.created 事件
// Webhook 可能重投递：clerk_id 冲突视为已处理，返回现有记录
// 成功创建后把内部 id 回写到 Clerk 元数据（尽力而为：本地记录已落库，回写失败不使事件失败）
func (uc *UserUseCase) HandleUserCreated(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := uc.repo.Create(user)
	if errors.Is(err, domainErrors.ErrUserAlreadyExists) {
		existing, gerr := uc.repo.GetByClerkID(user.ClerkID)
		if gerr != nil {
			return nil, gerr
		}
		if existing == nil {
			// 冲突记录又消失了（并发删除），把冲突原样上报
			return nil, err
		}
		log.Printf("[UserSync] ℹ️ user.created 重投递: %s 已存在", user.ClerkID)
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	if perr := uc.idp.SetInternalUserID(ctx, user.ClerkID, user.ID); perr != nil {
		log.Printf("[UserSync] ⚠️ 回写内部 id 到 Clerk 失败: %v", perr)
	}

	log.Printf("[UserSync] ✅ 用户已创建: %s (%s)", user.ClerkID, user.Email)
	return user, nil
}

// HandleUserUpdated 处理 user.updated 事件（部分字段更新）
// fields 不包含 clerk_id 和 email，这两个字段不在此路径修改
func (uc *UserUseCase) HandleUserUpdated(clerkID string, fields map[string]interface{}) (*entity.User, error) {
	user, err := uc.repo.Update(clerkID, fields)
	if err != nil {
		return nil, err
	}
	log.Printf("[UserSync] ✅ 用户已更新: %s", clerkID)
	return user, nil
}

// HandleUserDeleted 处理 user.deleted 事件（硬删除）
// 删除成功后清理该用户的列表页缓存
func (uc *UserUseCase) HandleUserDeleted(ctx context.Context, clerkID string) (*entity.User, error) {
	user, err := uc.repo.Delete(clerkID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateAuthor(ctx, user.ID)
	}

	log.Printf("[UserSync] ✅ 用户已删除: %s", clerkID)
	return user, nil
}

// GetOrCreateByClerkID 自愈式读取
// 本地命中直接返回；未命中说明 Webhook 尚未到达（乱序/丢失投递），
// 回源 Clerk 拉档案合成本地记录。与并发 Webhook 的创建竞争通过冲突后重读解决
func (uc *UserUseCase) GetOrCreateByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	user, err := uc.repo.GetByClerkID(clerkID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	log.Printf("[UserSync] ℹ️ 本地无记录，回源 Clerk 合成用户: %s", clerkID)

	profile, err := uc.idp.FetchUser(ctx, clerkID)
	if err != nil {
		return nil, errors.Join(domainErrors.ErrIdentityUnavailable, err)
	}

	cerr := uc.repo.Create(profile)
	if errors.Is(cerr, domainErrors.ErrUserAlreadyExists) {
		// 与 Webhook 投递竞争落败：记录已存在，重读即可
		existing, gerr := uc.repo.GetByClerkID(clerkID)
		if gerr != nil {
			return nil, gerr
		}
		if existing == nil {
			return nil, cerr
		}
		return existing, nil
	}
	if cerr != nil {
		return nil, cerr
	}

	if perr := uc.idp.SetInternalUserID(ctx, profile.ClerkID, profile.ID); perr != nil {
		log.Printf("[UserSync] ⚠️ 回写内部 id 到 Clerk 失败: %v", perr)
	}

	return profile, nil
}

// AdjustCredits 按内部 id 原子增减积分
// delta 为负是扣费，为正是退款/发放；用户不存在时返回 ErrUserNotFound（扣费落空必须上报）
func (uc *UserUseCase) AdjustCredits(id uint, delta int) (*entity.User, error) {
	return uc.repo.AdjustCredits(id, delta)
}

// AdjustCreditsByClerkID 按 Clerk subject id 先解析内部 id 再增减积分
// 供 HTTP 层使用：认证主体只携带 subject id
func (uc *UserUseCase) AdjustCreditsByClerkID(clerkID string, delta int) (*entity.User, error) {
	user, err := uc.repo.GetByClerkID(clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainErrors.ErrUserNotFound
	}
	return uc.repo.AdjustCredits(user.ID, delta)
}
