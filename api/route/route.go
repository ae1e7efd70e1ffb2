package route

import (
	"pixelcraft-server/api/controller"
	"pixelcraft-server/api/middleware"

	"github.com/gin-gonic/gin"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	ImageController   *controller.ImageController
	UserController    *controller.UserController
	WebhookController *controller.WebhookController
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "pixelcraft-server",
		})
	})

	// Clerk Webhook（使用 svix 签名验证，不使用 JWT）
	router.POST("/webhook/clerk", deps.WebhookController.HandleClerkWebhook)

	// --- API 路由（需要 Clerk JWT 认证）---
	api := router.Group("/api")
	api.Use(middleware.ClerkAuth())
	{
		// 图片列表（分页）
		api.GET("/images", deps.ImageController.ListImages)

		// 用户档案（自愈式读取）
		api.GET("/profile", deps.UserController.GetProfile)

		// 积分增减（原子）
		api.POST("/credits", deps.UserController.AdjustCredits)
	}
}
