package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/models/enums"
)

// CardService 定义了卡券管理相关的服务接口。
// 所有方法都是对微信卡券接口的一次直接调用，返回微信的原始 JSON 响应。
type CardService interface {
	// Get 查询卡券详情
	Get(ctx context.Context, cardID string) (json.RawMessage, error)

	// Create 创建卡券。
	// - base 为 base_info，properties 为该类型的专属字段，两者合并后放在小写类型名的键下。
	// - cardType 为空时按通用券 (GENERAL_COUPON) 处理。
	Create(ctx context.Context, base, properties map[string]any, cardType enums.CardType) (json.RawMessage, error)

	// Delete 删除卡券
	Delete(ctx context.Context, cardID string) (json.RawMessage, error)

	// List 批量查询卡券 ID，statusList 为空时不过滤
	List(ctx context.Context, offset, count int, statusList []enums.CardStatus) (json.RawMessage, error)

	// GetRealCode 解码 JS 接口或跳转页面带出的加密 code
	GetRealCode(ctx context.Context, encryptCode string) (json.RawMessage, error)

	// CodeGet 查询 code 状态
	CodeGet(ctx context.Context, code, cardID string) (json.RawMessage, error)

	// Consume 核销 code，自定义 code 卡券需要同时传 cardID
	Consume(ctx context.Context, code, cardID string) (json.RawMessage, error)

	// Unavailable 设置 code 失效
	Unavailable(ctx context.Context, code, cardID string) (json.RawMessage, error)

	// ModifyStock 修改库存，increase 与 reduce 为 0 时不写入请求体
	ModifyStock(ctx context.Context, cardID string, increase, reduce int) (json.RawMessage, error)

	// UserCardList 查询用户已领取的卡券，cardID 为空时返回全部
	UserCardList(ctx context.Context, openID, cardID string) (json.RawMessage, error)

	// MemberCardActivate 激活会员卡，cardID 会合并进 data
	MemberCardActivate(ctx context.Context, cardID string, data map[string]any) (json.RawMessage, error)

	// MemberCardTrade 更新会员信息（积分、余额等），cardID 会合并进 data
	MemberCardTrade(ctx context.Context, cardID string, data map[string]any) (json.RawMessage, error)

	// SetTestWhitelist 设置测试白名单，openIDs 与 usernames 分别对应 openid / username
	SetTestWhitelist(ctx context.Context, openIDs, usernames []string) (json.RawMessage, error)

	// Update 更新卡券信息，attributes 放在小写类型名的键下
	Update(ctx context.Context, cardID string, cardType enums.CardType, attributes map[string]any) (json.RawMessage, error)

	// UpdateCode 更改 code
	UpdateCode(ctx context.Context, code, newCode, cardID string) (json.RawMessage, error)

	// UpdateTicketHolder 更新电影票、会议门票的持有人信息或办理飞机票登机，data 原样透传
	UpdateTicketHolder(ctx context.Context, cardType enums.CardType, data map[string]any) (json.RawMessage, error)

	// CreateLandingPage 创建卡券货架
	CreateLandingPage(ctx context.Context, page map[string]any) (json.RawMessage, error)
}

// ErrUnsupportedCardType 卡券类型不支持当前操作
var ErrUnsupportedCardType = errors.New("卡券类型不支持该操作")

// cardService 是 CardService 接口的实现。
type cardService struct {
	wechatClient dependencies.WechatClient
	logger       *zap.Logger
}

// NewCardService 创建一个新的 cardService 实例。
func NewCardService(wechatClient dependencies.WechatClient, logger *zap.Logger) CardService {
	return &cardService{
		wechatClient: wechatClient,
		logger:       logger,
	}
}

// codePayload code 相关接口的通用请求体
type codePayload struct {
	Code   string `json:"code"`
	CardID string `json:"card_id,omitempty"`
}

// whitelistPayload 测试白名单请求体
type whitelistPayload struct {
	OpenID   []string `json:"openid,omitempty"`
	Username []string `json:"username,omitempty"`
}

// Get 实现接口方法。
func (s *cardService) Get(ctx context.Context, cardID string) (json.RawMessage, error) {
	return s.post(ctx, "CardService.Get", constants.APICardGet, map[string]string{"card_id": cardID})
}

// Create 实现接口方法。
func (s *cardService) Create(ctx context.Context, base, properties map[string]any, cardType enums.CardType) (json.RawMessage, error) {
	if cardType == "" {
		cardType = enums.CardGeneralCoupon
	}

	// properties 中的同名键覆盖 base_info
	card := map[string]any{"base_info": base}
	for k, v := range properties {
		card[k] = v
	}

	payload := map[string]any{
		"card": map[string]any{
			"card_type":           string(cardType),
			cardType.PayloadKey(): card,
		},
	}
	return s.post(ctx, "CardService.Create", constants.APICardCreate, payload)
}

// Delete 实现接口方法。
func (s *cardService) Delete(ctx context.Context, cardID string) (json.RawMessage, error) {
	return s.post(ctx, "CardService.Delete", constants.APICardDelete, map[string]string{"card_id": cardID})
}

// List 实现接口方法。
func (s *cardService) List(ctx context.Context, offset, count int, statusList []enums.CardStatus) (json.RawMessage, error) {
	payload := map[string]any{
		"offset": offset,
		"count":  count,
	}
	if len(statusList) > 0 {
		payload["status_list"] = statusList
	}
	return s.post(ctx, "CardService.List", constants.APICardList, payload)
}

// GetRealCode 实现接口方法。
func (s *cardService) GetRealCode(ctx context.Context, encryptCode string) (json.RawMessage, error) {
	return s.post(ctx, "CardService.GetRealCode", constants.APICardCodeDecrypt, map[string]string{"encrypt_code": encryptCode})
}

// CodeGet 实现接口方法。
func (s *cardService) CodeGet(ctx context.Context, code, cardID string) (json.RawMessage, error) {
	return s.post(ctx, "CardService.CodeGet", constants.APICardCodeGet, codePayload{Code: code, CardID: cardID})
}

// Consume 实现接口方法。
func (s *cardService) Consume(ctx context.Context, code, cardID string) (json.RawMessage, error) {
	return s.post(ctx, "CardService.Consume", constants.APICardConsume, codePayload{Code: code, CardID: cardID})
}

// Unavailable 实现接口方法。
func (s *cardService) Unavailable(ctx context.Context, code, cardID string) (json.RawMessage, error) {
	return s.post(ctx, "CardService.Unavailable", constants.APICardUnavailable, codePayload{Code: code, CardID: cardID})
}

// ModifyStock 实现接口方法。
func (s *cardService) ModifyStock(ctx context.Context, cardID string, increase, reduce int) (json.RawMessage, error) {
	payload := map[string]any{"card_id": cardID}
	if increase > 0 {
		payload["increase_stock_value"] = increase
	}
	if reduce > 0 {
		payload["reduce_stock_value"] = reduce
	}
	return s.post(ctx, "CardService.ModifyStock", constants.APICardUpdateStock, payload)
}

// UserCardList 实现接口方法。
func (s *cardService) UserCardList(ctx context.Context, openID, cardID string) (json.RawMessage, error) {
	payload := map[string]string{"openid": openID}
	if cardID != "" {
		payload["card_id"] = cardID
	}
	return s.post(ctx, "CardService.UserCardList", constants.APICardUserCardList, payload)
}

// MemberCardActivate 实现接口方法。
func (s *cardService) MemberCardActivate(ctx context.Context, cardID string, data map[string]any) (json.RawMessage, error) {
	return s.post(ctx, "CardService.MemberCardActivate", constants.APIMemberCardActivate, withCardID(cardID, data))
}

// MemberCardTrade 实现接口方法。
func (s *cardService) MemberCardTrade(ctx context.Context, cardID string, data map[string]any) (json.RawMessage, error) {
	return s.post(ctx, "CardService.MemberCardTrade", constants.APIMemberCardTrade, withCardID(cardID, data))
}

// SetTestWhitelist 实现接口方法。
func (s *cardService) SetTestWhitelist(ctx context.Context, openIDs, usernames []string) (json.RawMessage, error) {
	payload := whitelistPayload{OpenID: openIDs, Username: usernames}
	return s.post(ctx, "CardService.SetTestWhitelist", constants.APICardTestWhitelist, payload)
}

// Update 实现接口方法。
func (s *cardService) Update(ctx context.Context, cardID string, cardType enums.CardType, attributes map[string]any) (json.RawMessage, error) {
	if cardType == "" {
		cardType = enums.CardGeneralCoupon
	}
	payload := map[string]any{
		"card_id":             cardID,
		cardType.PayloadKey(): attributes,
	}
	return s.post(ctx, "CardService.Update", constants.APICardUpdate, payload)
}

// UpdateCode 实现接口方法。
func (s *cardService) UpdateCode(ctx context.Context, code, newCode, cardID string) (json.RawMessage, error) {
	payload := map[string]string{
		"code":     code,
		"new_code": newCode,
	}
	if cardID != "" {
		payload["card_id"] = cardID
	}
	return s.post(ctx, "CardService.UpdateCode", constants.APICardCodeUpdate, payload)
}

// UpdateTicketHolder 实现接口方法。
func (s *cardService) UpdateTicketHolder(ctx context.Context, cardType enums.CardType, data map[string]any) (json.RawMessage, error) {
	var path string
	switch cardType {
	case enums.CardMovieTicket:
		path = constants.APIMovieTicketUpdate
	case enums.CardMeetingTicket:
		path = constants.APIMeetingTicketUpdate
	case enums.CardBoardingPass:
		path = constants.APIBoardingPassCheckin
	default:
		return nil, fmt.Errorf("CardService.UpdateTicketHolder: %s: %w", cardType, ErrUnsupportedCardType)
	}
	return s.post(ctx, "CardService.UpdateTicketHolder", path, data)
}

// CreateLandingPage 实现接口方法。
func (s *cardService) CreateLandingPage(ctx context.Context, page map[string]any) (json.RawMessage, error) {
	return s.post(ctx, "CardService.CreateLandingPage", constants.APICardLandingPageCreate, page)
}

// post 发起请求并统一记录错误日志
func (s *cardService) post(ctx context.Context, operation, path string, payload any) (json.RawMessage, error) {
	ret, err := s.wechatClient.PostJSON(ctx, path, payload)
	if err != nil {
		s.logger.Error("调用微信卡券接口失败",
			zap.String("operation", operation),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s: 调用微信卡券接口失败: %w", operation, err)
	}
	return ret, nil
}

// withCardID 复制 data 并写入 card_id，不修改调用方的 map
func withCardID(cardID string, data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["card_id"] = cardID
	return out
}
