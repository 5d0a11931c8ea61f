package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/mp_hub/repository"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// TicketCache 进程内缓存，仅适合单实例部署或测试。
type TicketCache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewTicketCache 创建进程内缓存。
func NewTicketCache() *TicketCache {
	return &TicketCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Fetch 读取未过期的缓存值，过期条目在读取时顺带删除。
func (c *TicketCache) Fetch(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", commonerrors.ErrRepoNotFound
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", commonerrors.ErrRepoNotFound
	}
	return e.value, nil
}

// Save 写入缓存。
func (c *TicketCache) Save(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("memory.TicketCache.Save: key %s: %w", key, repository.ErrInvalidTTL)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	return nil
}

var _ repository.TicketCache = (*TicketCache)(nil)
