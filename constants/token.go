package constants

import (
	"time"
)

const (
	// ServiceTokenTTL 内部服务调用令牌的有效期
	ServiceTokenTTL = 30 * 24 * time.Hour

	// TicketExpiryMargin 写入缓存时从微信声明的有效期中扣除的安全余量（秒）
	TicketExpiryMargin = 500

	// TicketCachePrefix JS-SDK / 卡券 ticket 缓存键前缀，完整键为 prefix + appID + ticketType
	TicketCachePrefix = "overtrue.wechat.jsapi_ticket."

	// AccessTokenCachePrefix access_token 缓存键前缀，完整键为 prefix + appID
	AccessTokenCachePrefix = "overtrue.wechat.access_token."
)
