package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// 列表页缓存 TTL
// 图片写入发生在本服务之外，短 TTL 限制陈旧窗口
const listingTTL = 60 * time.Second

// 失效时清理的最大页数（简化版：删除前 5 页）
const invalidatePages = 5

// RedisListingCache Redis 实现图片列表页缓存
// 键格式: images:user:<内部id>:page:<页码>
type RedisListingCache struct {
	rdb *redis.Client
}

// NewRedisListingCache 构造函数，rdb 可为 nil（缓存禁用）
func NewRedisListingCache(rdb *redis.Client) *RedisListingCache {
	return &RedisListingCache{rdb: rdb}
}

func pageKey(authorID uint, page int) string {
	return fmt.Sprintf("images:user:%d:page:%d", authorID, page)
}

// GetPage 读取缓存的列表页，命中时反序列化到 dest 并返回 true
func (c *RedisListingCache) GetPage(ctx context.Context, authorID uint, page int, dest any) bool {
	if c.rdb == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, pageKey(authorID, page)).Result()
	if err == redis.Nil {
		return false // 缓存未命中
	}
	if err != nil {
		log.Printf("[Cache] ⚠️ 读取列表页缓存失败: %v", err)
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		log.Printf("[Cache] ⚠️ 反序列化列表页缓存失败: %v", err)
		return false
	}
	return true
}

// SetPage 写入列表页缓存，失败只记日志（缓存是加速层，不是正确性依赖）
func (c *RedisListingCache) SetPage(ctx context.Context, authorID uint, page int, value any) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		log.Printf("[Cache] ⚠️ 序列化列表页失败: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, pageKey(authorID, page), b, listingTTL).Err(); err != nil {
		log.Printf("[Cache] ⚠️ 写入列表页缓存失败: %v", err)
	}
}

// InvalidateAuthor 用户删除后清理其全部列表页缓存
func (c *RedisListingCache) InvalidateAuthor(ctx context.Context, authorID uint) {
	if c.rdb == nil {
		return
	}
	for i := 1; i <= invalidatePages; i++ {
		if err := c.rdb.Del(ctx, pageKey(authorID, i)).Err(); err != nil {
			log.Printf("[Cache] ⚠️ 清理列表页缓存失败: %v", err)
		}
	}
}
