package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/redis/go-redis/v9"

	"github.com/Xushengqwer/mp_hub/repository"
)

// ticketCache 是 repository.TicketCache 基于 go-redis/v9 的实现。
// - 多实例部署时推荐使用，保证所有实例共享同一份 ticket。
type ticketCache struct {
	client *redis.Client
}

// NewTicketCache 创建基于 Redis 的 ticket 缓存。
func NewTicketCache(client *redis.Client) repository.TicketCache {
	return &ticketCache{client: client}
}

// Fetch 实现接口方法，从 Redis 读取缓存值。
func (r *ticketCache) Fetch(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 未命中或已过期，由 Redis 的 TTL 负责淘汰
			return "", commonerrors.ErrRepoNotFound
		}
		return "", fmt.Errorf("ticketCache.Fetch: 读取缓存失败 (key: %s): %w", key, err)
	}
	return val, nil
}

// Save 实现接口方法，写入 Redis 并设置过期时间。
func (r *ticketCache) Save(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ticketCache.Save: key %s: %w", key, repository.ErrInvalidTTL)
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("ticketCache.Save: 写入缓存失败 (key: %s): %w", key, err)
	}
	return nil
}
