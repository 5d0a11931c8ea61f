package enums

import "fmt"

// TicketType 微信 ticket 类型，值即为 getticket 接口的 type 参数
type TicketType string

const (
	TicketJSAPI TicketType = "jsapi"   // JS-SDK 权限验证使用
	TicketCard  TicketType = "wx_card" // 卡券扩展字段 / 拉起卡券列表使用
)

// TicketTypeFromString 将字符串解析为 TicketType，空串视为 jsapi
func TicketTypeFromString(s string) (TicketType, error) {
	switch TicketType(s) {
	case "", TicketJSAPI:
		return TicketJSAPI, nil
	case TicketCard:
		return TicketCard, nil
	default:
		return "", fmt.Errorf("未知的 ticket 类型: %q", s)
	}
}
