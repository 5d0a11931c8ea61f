package enums

import "strings"

// CardType 卡券类型
type CardType string

const (
	CardGeneralCoupon CardType = "GENERAL_COUPON" // 通用券
	CardGroupon       CardType = "GROUPON"        // 团购券
	CardDiscount      CardType = "DISCOUNT"       // 折扣券
	CardGift          CardType = "GIFT"           // 礼品券
	CardCash          CardType = "CASH"           // 代金券
	CardMemberCard    CardType = "MEMBER_CARD"    // 会员卡
	CardScenicTicket  CardType = "SCENIC_TICKET"  // 景点门票
	CardMovieTicket   CardType = "MOVIE_TICKET"   // 电影票
	CardBoardingPass  CardType = "BOARDING_PASS"  // 飞机票
	CardLuckyMoney    CardType = "LUCKY_MONEY"    // 红包
	CardMeetingTicket CardType = "MEETING_TICKET" // 会议门票
)

var cardTypes = map[CardType]struct{}{
	CardGeneralCoupon: {},
	CardGroupon:       {},
	CardDiscount:      {},
	CardGift:          {},
	CardCash:          {},
	CardMemberCard:    {},
	CardScenicTicket:  {},
	CardMovieTicket:   {},
	CardBoardingPass:  {},
	CardLuckyMoney:    {},
	CardMeetingTicket: {},
}

// Valid 是否为已定义的卡券类型
func (t CardType) Valid() bool {
	_, ok := cardTypes[t]
	return ok
}

// PayloadKey 创建卡券时类型专属字段所在的键，即小写的类型名
func (t CardType) PayloadKey() string {
	return strings.ToLower(string(t))
}
