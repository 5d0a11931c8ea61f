package repository

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidTTL 写入缓存时给出的有效期不是正数
var ErrInvalidTTL = errors.New("缓存有效期必须大于 0")

// TicketCache 定义了 ticket / access_token 这类短期凭证的缓存接口。
// - 键由调用方拼接（前缀 + appID + 类型），实现只负责按键存取并在过期后视为不存在。
type TicketCache interface {
	// Fetch 读取键对应的值。
	// - 键不存在或已过期时返回 commonerrors.ErrRepoNotFound。
	Fetch(ctx context.Context, key string) (string, error)

	// Save 写入键值并设置有效期，ttl <= 0 时返回 ErrInvalidTTL。
	Save(ctx context.Context, key, value string, ttl time.Duration) error
}
