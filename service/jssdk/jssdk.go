package jssdk

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/models/enums"
	"github.com/Xushengqwer/mp_hub/models/vo"
	"github.com/Xushengqwer/mp_hub/repository"
	"github.com/Xushengqwer/mp_hub/utils"
)

// ErrTicketLifetimeTooShort 微信返回的 ticket 有效期不足以扣除安全余量，ticket 不会被缓存也不会被使用
var ErrTicketLifetimeTooShort = errors.New("ticket 有效期过短")

// nonceLength 自动生成的 nonceStr 长度
const nonceLength = 10

// JSSDKService 定义了 JS-SDK 与卡券 JS 接口所需的 ticket 获取和签名服务。
type JSSDKService interface {
	// Ticket 获取指定类型的 ticket，缓存命中时不会请求微信。
	Ticket(ctx context.Context, ticketType enums.TicketType) (string, error)

	// Signature 生成 JS-SDK 权限验证签名包。
	// - url 为空时通过 URLResolver 获取当前页面地址；nonce 为空时随机生成；timestamp 为 0 时取当前时间。
	Signature(ctx context.Context, url, nonce string, timestamp int64) (vo.JsSignature, error)

	// Config 生成可直接交给 wx.config 的配置。
	Config(ctx context.Context, apis []string, debug, beta bool) (vo.JsConfig, error)

	// CardExt 生成添加卡券 (wx.addCard) 时的 cardExt，nonce 固定为空串。
	CardExt(ctx context.Context, cardID, code, openID string) (vo.CardExt, error)

	// ChooseCardData 生成拉起卡券列表 (wx.chooseCard) 所需的参数与签名。
	ChooseCardData(ctx context.Context, cardID, cardType, locationID string) (vo.ChooseCardData, error)
}

// jssdkService 是 JSSDKService 接口的实现。
// - 除 ticket 缓存外无共享可变状态，可并发使用。
type jssdkService struct {
	wechatClient dependencies.WechatClient
	cache        repository.TicketCache
	resolver     URLResolver
	logger       *zap.Logger

	now   func() time.Time
	nonce func() string
}

// NewJSSDKService 创建 JSSDKService。
// - cache 通常与 WechatClient 共用同一个实例。
func NewJSSDKService(
	wechatClient dependencies.WechatClient,
	cache repository.TicketCache,
	resolver URLResolver,
	logger *zap.Logger,
) JSSDKService {
	return &jssdkService{
		wechatClient: wechatClient,
		cache:        cache,
		resolver:     resolver,
		logger:       logger,
		now:          time.Now,
		nonce:        func() string { return utils.NonceStr(nonceLength) },
	}
}

// Ticket 实现接口方法。
func (s *jssdkService) Ticket(ctx context.Context, ticketType enums.TicketType) (string, error) {
	const operation = "JSSDKService.Ticket"
	key := constants.TicketCachePrefix + s.wechatClient.AppID() + string(ticketType)

	ticket, err := s.cache.Fetch(ctx, key)
	if err == nil {
		return ticket, nil
	}
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return "", fmt.Errorf("%s: 读取 ticket 缓存失败: %w", operation, err)
	}

	query := url.Values{}
	query.Set("type", string(ticketType))
	raw, err := s.wechatClient.Get(ctx, constants.APITicket, query)
	if err != nil {
		s.logger.Error("获取 ticket 失败", zap.String("operation", operation), zap.String("type", string(ticketType)), zap.Error(err))
		return "", fmt.Errorf("%s: 获取 %s ticket 失败: %w", operation, ticketType, err)
	}

	ret := gjson.ParseBytes(raw)
	ticket = ret.Get("ticket").String()
	if ticket == "" {
		return "", fmt.Errorf("%s: 响应中缺少 ticket: %w", operation, commonerrors.ErrThirdPartyServiceError)
	}

	expiresIn := ret.Get("expires_in").Int()
	lifetime := expiresIn - constants.TicketExpiryMargin
	if lifetime <= 0 {
		s.logger.Error("ticket 有效期不足以扣除安全余量",
			zap.String("operation", operation),
			zap.String("type", string(ticketType)),
			zap.Int64("expiresIn", expiresIn),
		)
		return "", fmt.Errorf("%s: expires_in=%d, 余量=%d: %w", operation, expiresIn, constants.TicketExpiryMargin, ErrTicketLifetimeTooShort)
	}

	if err := s.cache.Save(ctx, key, ticket, time.Duration(lifetime)*time.Second); err != nil {
		// 缓存写失败不影响本次使用，下次请求会重新获取
		s.logger.Warn("写入 ticket 缓存失败", zap.String("operation", operation), zap.String("key", key), zap.Error(err))
	}

	s.logger.Info("已获取新的 ticket",
		zap.String("operation", operation),
		zap.String("type", string(ticketType)),
		zap.Int64("cacheSeconds", lifetime),
	)
	return ticket, nil
}

// Signature 实现接口方法。
func (s *jssdkService) Signature(ctx context.Context, pageURL, nonce string, timestamp int64) (vo.JsSignature, error) {
	if pageURL == "" && s.resolver != nil {
		pageURL = s.resolver.CurrentURL(ctx)
	}
	if nonce == "" {
		nonce = s.nonce()
	}
	if timestamp == 0 {
		timestamp = s.now().Unix()
	}

	ticket, err := s.Ticket(ctx, enums.TicketJSAPI)
	if err != nil {
		return vo.JsSignature{}, err
	}

	return vo.JsSignature{
		AppID:     s.wechatClient.AppID(),
		NonceStr:  nonce,
		Timestamp: timestamp,
		URL:       pageURL,
		Signature: JsAPISignature(ticket, nonce, timestamp, pageURL),
	}, nil
}

// Config 实现接口方法。
func (s *jssdkService) Config(ctx context.Context, apis []string, debug, beta bool) (vo.JsConfig, error) {
	sign, err := s.Signature(ctx, "", "", 0)
	if err != nil {
		return vo.JsConfig{}, err
	}
	if apis == nil {
		apis = []string{}
	}
	return vo.JsConfig{
		Debug:       debug,
		Beta:        beta,
		JsSignature: sign,
		JsAPIList:   apis,
	}, nil
}

// CardExt 实现接口方法。
func (s *jssdkService) CardExt(ctx context.Context, cardID, code, openID string) (vo.CardExt, error) {
	timestamp := s.now().Unix()
	nonce := ""

	ticket, err := s.Ticket(ctx, enums.TicketCard)
	if err != nil {
		return vo.CardExt{}, err
	}

	return vo.CardExt{
		Code:      code,
		OpenID:    openID,
		Timestamp: timestamp,
		Signature: CardSignature(ticket, strconv.FormatInt(timestamp, 10), cardID, code, openID, nonce),
	}, nil
}

// ChooseCardData 实现接口方法。
func (s *jssdkService) ChooseCardData(ctx context.Context, cardID, cardType, locationID string) (vo.ChooseCardData, error) {
	timestamp := s.now().Unix()
	nonce := s.nonce()

	ticket, err := s.Ticket(ctx, enums.TicketCard)
	if err != nil {
		return vo.ChooseCardData{}, err
	}

	sign := CardSignature(
		ticket,
		s.wechatClient.AppID(),
		locationID,
		strconv.FormatInt(timestamp, 10),
		nonce,
		cardID,
		cardType,
	)

	return vo.ChooseCardData{
		ShopID:    locationID,
		CardType:  cardType,
		CardID:    cardID,
		Timestamp: timestamp,
		NonceStr:  nonce,
		SignType:  "SHA1",
		CardSign:  sign,
	}, nil
}

// JsAPISignature 计算 JS-SDK 权限验证签名。
// 字段顺序与键名固定，不排序：jsapi_ticket、noncestr、timestamp、url。
func JsAPISignature(ticket, nonce string, timestamp int64, pageURL string) string {
	plain := fmt.Sprintf("jsapi_ticket=%s&noncestr=%s&timestamp=%d&url=%s", ticket, nonce, timestamp, pageURL)
	return sha1Hex(plain)
}

// CardSignature 计算卡券签名。
// 所有字段按字符串字典序升序排序后直接拼接（无分隔符）再取 SHA-1，数字也按字符串比较。
func CardSignature(fields ...string) string {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return sha1Hex(strings.Join(sorted, ""))
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
