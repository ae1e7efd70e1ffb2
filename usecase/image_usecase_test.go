package usecase

import (
	"context"
	"testing"

	"pixelcraft-server/domain/entity"
	domainErrors "pixelcraft-server/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ========== ImageUseCase 单元测试 ==========
// 覆盖分页算术、边界页、缓存读写路径

// TestListUserImages_TableDriven 表格驱动测试分页算术
func TestListUserImages_TableDriven(t *testing.T) {
	author := &entity.User{ID: 8, ClerkID: "u_1"}

	testCases := []struct {
		name           string
		page           int
		totalCount     int64
		returnedItems  int
		expectedOffset int
		expectedPages  int
		expectedErr    error
	}{
		{
			name:        "Page zero rejected",
			page:        0,
			expectedErr: domainErrors.ErrInvalidPage,
		},
		{
			name:        "Negative page rejected",
			page:        -3,
			expectedErr: domainErrors.ErrInvalidPage,
		},
		{
			name:           "Empty gallery",
			page:           1,
			totalCount:     0,
			returnedItems:  0,
			expectedOffset: 0,
			expectedPages:  0, // ceil(0/9) = 0
		},
		{
			name:           "First page full",
			page:           1,
			totalCount:     20,
			returnedItems:  9,
			expectedOffset: 0,
			expectedPages:  3,
		},
		{
			name:           "Last partial page",
			page:           3,
			totalCount:     20,
			returnedItems:  2, // 第 18、19 张（按新旧排序的最后两张）
			expectedOffset: 18,
			expectedPages:  3,
		},
		{
			name:           "Exact multiple of page size",
			page:           2,
			totalCount:     18,
			returnedItems:  9,
			expectedOffset: 9,
			expectedPages:  2,
		},
		{
			name:           "Page beyond range returns empty",
			page:           9,
			totalCount:     20,
			returnedItems:  0,
			expectedOffset: 72,
			expectedPages:  3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockImages := new(MockImageRepository)
			mockUsers := new(MockUserRepository)

			if tc.expectedErr == nil {
				mockUsers.On("GetByClerkID", "u_1").Return(author, nil).Once()

				items := make([]entity.Image, tc.returnedItems)
				for i := range items {
					items[i] = entity.Image{ID: uint(i + 1), AuthorID: author.ID}
				}
				mockImages.On("ListByAuthor", author.ID, tc.expectedOffset, GalleryPageSize).
					Return(items, nil).Once()
				mockImages.On("CountByAuthor", author.ID).Return(tc.totalCount, nil).Once()
			}

			uc := NewImageUseCase(mockImages, mockUsers, nil)
			result, err := uc.ListUserImages(context.Background(), "u_1", tc.page)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, result)
				// 参数校验失败不应触发任何查询
				mockUsers.AssertNotCalled(t, "GetByClerkID", mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Len(t, result.Images, tc.returnedItems)
			assert.NotNil(t, result.Images) // 空结果是 []，不是 nil
			assert.Equal(t, tc.page, result.CurrentPage)
			assert.Equal(t, tc.expectedPages, result.TotalPages)
		})
	}
}

// TestListUserImages_UnknownUser 测试无本地记录
// 列表路径不做自愈式创建，直接返回 ErrUserNotFound
func TestListUserImages_UnknownUser(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetByClerkID", "ghost").Return(nil, nil).Once()

	uc := NewImageUseCase(mockImages, mockUsers, nil)

	result, err := uc.ListUserImages(context.Background(), "ghost", 1)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)
	mockImages.AssertNotCalled(t, "ListByAuthor", mock.Anything, mock.Anything, mock.Anything)
}

// TestListUserImages_CacheHit 测试缓存命中
// 命中时不触发任何数据库查询
func TestListUserImages_CacheHit(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	mockCache := new(MockListingCache)

	author := &entity.User{ID: 8, ClerkID: "u_1"}
	mockUsers.On("GetByClerkID", "u_1").Return(author, nil).Once()

	cached := ImagePage{
		Images:      []entity.Image{{ID: 42, AuthorID: 8}},
		CurrentPage: 1,
		TotalPages:  1,
	}
	mockCache.On("GetPage", mock.Anything, uint(8), 1, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*ImagePage) = cached
		}).
		Return(true).Once()

	uc := NewImageUseCase(mockImages, mockUsers, mockCache)

	result, err := uc.ListUserImages(context.Background(), "u_1", 1)

	assert.NoError(t, err)
	assert.Equal(t, cached, *result)
	mockImages.AssertNotCalled(t, "ListByAuthor", mock.Anything, mock.Anything, mock.Anything)
	mockImages.AssertNotCalled(t, "CountByAuthor", mock.Anything)
}

// TestListUserImages_CacheMissPopulates 测试缓存未命中
// 查库后应回填缓存
func TestListUserImages_CacheMissPopulates(t *testing.T) {
	mockImages := new(MockImageRepository)
	mockUsers := new(MockUserRepository)
	mockCache := new(MockListingCache)

	author := &entity.User{ID: 8, ClerkID: "u_1"}
	mockUsers.On("GetByClerkID", "u_1").Return(author, nil).Once()
	mockCache.On("GetPage", mock.Anything, uint(8), 2, mock.Anything).Return(false).Once()
	mockImages.On("ListByAuthor", uint(8), 9, GalleryPageSize).
		Return([]entity.Image{{ID: 10, AuthorID: 8}}, nil).Once()
	mockImages.On("CountByAuthor", uint(8)).Return(int64(10), nil).Once()
	mockCache.On("SetPage", mock.Anything, uint(8), 2, mock.AnythingOfType("*usecase.ImagePage")).Return().Once()

	uc := NewImageUseCase(mockImages, mockUsers, mockCache)

	result, err := uc.ListUserImages(context.Background(), "u_1", 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalPages)
	mockCache.AssertCalled(t, "SetPage", mock.Anything, uint(8), 2, mock.AnythingOfType("*usecase.ImagePage"))
}
