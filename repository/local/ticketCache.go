package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	_ "modernc.org/sqlite"

	"github.com/Xushengqwer/mp_hub/repository"
)

// DefaultFileName 未配置路径时在系统临时目录下使用的文件名
const DefaultFileName = "mp_hub_ticket_cache.db"

// TicketCache 基于本地 SQLite 文件的缓存，无需额外部署 Redis。
// 同一台机器上的多个进程可以共享同一个文件。
type TicketCache struct {
	db  *sql.DB
	now func() time.Time
}

// NewTicketCache 打开（必要时创建）缓存文件并建表。dbPath 为空时使用系统临时目录。
func NewTicketCache(dbPath string) (*TicketCache, error) {
	if dbPath == "" {
		dbPath = filepath.Join(os.TempDir(), DefaultFileName)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("local.NewTicketCache: 创建缓存目录失败: %w", err)
	}

	// busy_timeout(5000): 多进程同时写入时最多等待 5 秒
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("local.NewTicketCache: 打开缓存文件失败: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("local.NewTicketCache: 连接缓存文件失败: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS ticket_cache (
		cache_key  TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		expires_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("local.NewTicketCache: 建表失败: %w", err)
	}

	return &TicketCache{db: db, now: time.Now}, nil
}

// Fetch 读取未过期的缓存值。
func (c *TicketCache) Fetch(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM ticket_cache WHERE cache_key = ? AND expires_at > ?`,
		key, c.now().UnixMilli(),
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", commonerrors.ErrRepoNotFound
		}
		return "", fmt.Errorf("local.TicketCache.Fetch: 读取缓存失败 (key: %s): %w", key, err)
	}
	return value, nil
}

// Save 写入缓存，同键覆盖。
func (c *TicketCache) Save(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("local.TicketCache.Save: key %s: %w", key, repository.ErrInvalidTTL)
	}
	expiresAt := c.now().Add(ttl).UnixMilli()
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO ticket_cache (cache_key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("local.TicketCache.Save: 写入缓存失败 (key: %s): %w", key, err)
	}
	return nil
}

// Close 关闭底层文件
func (c *TicketCache) Close() error {
	return c.db.Close()
}

var _ repository.TicketCache = (*TicketCache)(nil)
