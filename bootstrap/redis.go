package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis 创建 Redis 客户端（图片列表页缓存）
// addr 为空时返回 nil，缓存层对 nil 客户端直接透传到数据库
func NewRedis(addr, password string) *redis.Client {
	if addr == "" {
		log.Println("⚠️ 未配置 REDIS_ADDR，列表页缓存已禁用")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis 连接失败: %v", err)
	}

	log.Println("✅ Redis 连接成功")
	return rdb
}
