package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"pixelcraft-server/api/middleware"
	domainErrors "pixelcraft-server/domain/errors"
	"pixelcraft-server/usecase"

	"github.com/gin-gonic/gin"
)

// ImageController 图片列表控制器
type ImageController struct {
	imageUC *usecase.ImageUseCase
}

// NewImageController 构造函数
func NewImageController(imageUC *usecase.ImageUseCase) *ImageController {
	return &ImageController{imageUC: imageUC}
}

// ListImages 分页列出当前用户的历史变换图片
// GET /api/images?page=N （page 从 1 开始，默认 1，页大小固定 9）
func (ic *ImageController) ListImages(c *gin.Context) {
	clerkID := c.GetString(middleware.ContextKeyClerkID)
	if clerkID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未认证"})
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page 必须是正整数"})
		return
	}

	result, err := ic.imageUC.ListUserImages(c.Request.Context(), clerkID, page)
	switch {
	case errors.Is(err, domainErrors.ErrInvalidPage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "page 必须是正整数"})
	case errors.Is(err, domainErrors.ErrUserNotFound):
		// 列表路径不做自愈式创建：搜不到本地记录就是 404
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
	case err != nil:
		log.Printf("[Images] ❌ 查询图片列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询图片列表失败"})
	default:
		c.JSON(http.StatusOK, result)
	}
}
