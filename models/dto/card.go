package dto

import "github.com/Xushengqwer/mp_hub/models/enums"

// CreateCardData 创建卡券请求体
type CreateCardData struct {
	// CardType 卡券类型，留空为 GENERAL_COUPON
	CardType enums.CardType `json:"card_type" binding:"omitempty,CardType"`
	// BaseInfo 卡券基础信息 (base_info)，原样透传给微信
	BaseInfo map[string]any `json:"base_info" binding:"required"`
	// Properties 类型专属字段，例如团购券的 deal_detail、礼品券的 gift
	Properties map[string]any `json:"properties"`
}

// CardCodeData 针对单个 code 的操作（核销、查询、设置失效）
type CardCodeData struct {
	Code   string `json:"code" binding:"required"`
	CardID string `json:"card_id"` // 自定义 code 卡券必填
}

// DecryptCodeData code 解码请求体
type DecryptCodeData struct {
	EncryptCode string `json:"encrypt_code" binding:"required"`
}

// MemberCardData 会员卡激活 / 更新会员信息请求体
type MemberCardData struct {
	CardID string         `json:"card_id" binding:"required"`
	Data   map[string]any `json:"data" binding:"required"`
}

// TestWhitelistData 设置测试白名单请求体，openid 与微信号至少填一项
type TestWhitelistData struct {
	OpenIDs   []string `json:"openids" binding:"required_without=Usernames"`
	Usernames []string `json:"usernames" binding:"required_without=OpenIDs"`
}

// CardListQuery 批量查询卡券的查询参数
type CardListQuery struct {
	Offset int `form:"offset" binding:"min=0"`
	// Count 每页数量，微信限制最大 50，留空为 10
	Count int `form:"count" binding:"omitempty,min=1,max=50"`
	// Status 按审核 / 投放状态过滤，可重复传入
	Status []enums.CardStatus `form:"status" binding:"omitempty,dive,CardStatus"`
}

// ModifyStockData 修改库存请求体，两项至少填一项
type ModifyStockData struct {
	CardID   string `json:"card_id" binding:"required"`
	Increase int    `json:"increase_stock_value" binding:"min=0,required_without=Reduce"`
	Reduce   int    `json:"reduce_stock_value" binding:"min=0,required_without=Increase"`
}

// UserCardQuery 查询用户卡券的查询参数
type UserCardQuery struct {
	OpenID string `form:"openid" binding:"required"`
	CardID string `form:"card_id"`
}

// UpdateCardData 更新卡券信息请求体
type UpdateCardData struct {
	CardID   string         `json:"card_id" binding:"required"`
	CardType enums.CardType `json:"card_type" binding:"omitempty,CardType"`
	// Attributes 需要更新的字段，可包含 base_info
	Attributes map[string]any `json:"attributes" binding:"required"`
}

// UpdateCodeData 更改 code 请求体
type UpdateCodeData struct {
	Code    string `json:"code" binding:"required"`
	NewCode string `json:"new_code" binding:"required"`
	CardID  string `json:"card_id"`
}

// TicketHolderData 电影票 / 会议门票 / 飞机票持有人信息更新请求体
type TicketHolderData struct {
	CardType enums.CardType `json:"card_type" binding:"required,oneof=MOVIE_TICKET MEETING_TICKET BOARDING_PASS"`
	Data     map[string]any `json:"data" binding:"required"`
}
