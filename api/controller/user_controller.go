package controller

import (
	"errors"
	"log"
	"net/http"

	"pixelcraft-server/api/middleware"
	domainErrors "pixelcraft-server/domain/errors"
	"pixelcraft-server/usecase"

	"github.com/gin-gonic/gin"
)

// UserController 用户档案与积分控制器
type UserController struct {
	userUC *usecase.UserUseCase
}

// NewUserController 构造函数
func NewUserController(userUC *usecase.UserUseCase) *UserController {
	return &UserController{userUC: userUC}
}

// GetProfile 返回当前用户的档案（含积分余额）
// GET /api/profile
// 自愈式读取：本地无记录时回源 Clerk 合成，容忍 Webhook 乱序/丢失投递
func (uc *UserController) GetProfile(c *gin.Context) {
	clerkID := c.GetString(middleware.ContextKeyClerkID)
	if clerkID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未认证"})
		return
	}

	user, err := uc.userUC.GetOrCreateByClerkID(c.Request.Context(), clerkID)
	if errors.Is(err, domainErrors.ErrIdentityUnavailable) {
		log.Printf("[Profile] ❌ 回源 Clerk 失败: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "身份服务暂不可用"})
		return
	}
	if err != nil {
		log.Printf("[Profile] ❌ 获取用户档案失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户档案失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AdjustCreditsRequest 积分增减请求体
// delta 为负是扣费（变换消费），为正是退款/发放
type AdjustCreditsRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustCredits 原子增减当前用户的积分
// POST /api/credits
func (uc *UserController) AdjustCredits(c *gin.Context) {
	clerkID := c.GetString(middleware.ContextKeyClerkID)
	if clerkID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未认证"})
		return
	}

	var req AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	user, err := uc.userUC.AdjustCreditsByClerkID(clerkID, req.Delta)
	if errors.Is(err, domainErrors.ErrUserNotFound) {
		// 扣费落空必须显式失败，否则用户可以免费消费付费功能
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		return
	}
	if err != nil {
		log.Printf("[Credits] ❌ 积分更新失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "积分更新失败"})
		return
	}

	log.Printf("[Credits] ✅ 积分已更新: %s delta=%d balance=%d", clerkID, req.Delta, user.CreditBalance)
	c.JSON(http.StatusOK, gin.H{"creditBalance": user.CreditBalance})
}
