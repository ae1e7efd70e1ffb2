package usecase

import (
	"context"

	"pixelcraft-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ========== MockUserRepository ==========
// 实现 repository.UserRepository 接口，用于 UseCase 的单元测试

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByClerkID(clerkID string) (*entity.User, error) {
	args := m.Called(clerkID)
	// 处理 nil 情况
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(clerkID string, fields map[string]interface{}) (*entity.User, error) {
	args := m.Called(clerkID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(clerkID string) (*entity.User, error) {
	args := m.Called(clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) AdjustCredits(id uint, delta int) (*entity.User, error) {
	args := m.Called(id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// ========== MockImageRepository ==========

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) ListByAuthor(authorID uint, offset, limit int) ([]entity.Image, error) {
	args := m.Called(authorID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Image), args.Error(1)
}

func (m *MockImageRepository) CountByAuthor(authorID uint) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

// ========== MockIdentityProvider ==========

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) FetchUser(ctx context.Context, clerkID string) (*entity.User, error) {
	args := m.Called(ctx, clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockIdentityProvider) SetInternalUserID(ctx context.Context, clerkID string, internalID uint) error {
	args := m.Called(ctx, clerkID, internalID)
	return args.Error(0)
}

// ========== MockListingCache ==========

type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) GetPage(ctx context.Context, authorID uint, page int, dest any) bool {
	args := m.Called(ctx, authorID, page, dest)
	return args.Bool(0)
}

func (m *MockListingCache) SetPage(ctx context.Context, authorID uint, page int, value any) {
	m.Called(ctx, authorID, page, value)
}

func (m *MockListingCache) InvalidateAuthor(ctx context.Context, authorID uint) {
	m.Called(ctx, authorID)
}
