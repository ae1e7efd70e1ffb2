package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pixelcraft-server/api/controller"
	"pixelcraft-server/api/route"
	"pixelcraft-server/bootstrap"
	"pixelcraft-server/internal/cache"
	"pixelcraft-server/internal/identity"
	"pixelcraft-server/repository"
	"pixelcraft-server/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("[Server] PixelCraft Go Server 启动中...")

	// 加载环境变量
	env := bootstrap.LoadEnv()

	// 初始化 Clerk
	bootstrap.InitClerk()

	// 连接数据库
	db := bootstrap.NewDatabase(env.DatabaseURL)

	// 连接 Redis（列表页缓存，可禁用）
	rdb := bootstrap.NewRedis(env.RedisAddr, env.RedisPass)

	// 依赖注入 - Repository 层
	userRepo := repository.NewUserRepository(db)
	imageRepo := repository.NewImageRepository(db)

	// 依赖注入 - 协作方适配器
	idp := identity.NewClerkProvider()
	listingCache := cache.NewRedisListingCache(rdb)

	// 依赖注入 - UseCase 层
	userUseCase := usecase.NewUserUseCase(userRepo, idp, listingCache)
	imageUseCase := usecase.NewImageUseCase(imageRepo, userRepo, listingCache)

	// 依赖注入 - Controller 层
	imageController := controller.NewImageController(imageUseCase)
	userController := controller.NewUserController(userUseCase)
	webhookController := controller.NewWebhookController(userUseCase, env.WebhookSecret)

	// 配置 Gin 路由
	router := gin.Default()

	// CORS 配置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 设置路由
	route.Setup(router, &route.Dependencies{
		ImageController:   imageController,
		UserController:    userController,
		WebhookController: webhookController,
	})

	// 启动 HTTP 服务
	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] 服务已启动: http://localhost:%s", env.Port)
		log.Printf("[Server] API 端点:")
		log.Printf("   GET  /health           - 健康检查")
		log.Printf("   GET  /api/images?page=N - 图片列表（分页）")
		log.Printf("   GET  /api/profile      - 用户档案")
		log.Printf("   POST /api/credits      - 积分增减")
		log.Printf("   POST /webhook/clerk    - Clerk Webhook")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] 服务启动失败: %v", err)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Server] 收到停机信号，正在优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Server] 服务强制关闭: %v", err)
	}

	log.Println("[Server] 服务已安全停止")
}
