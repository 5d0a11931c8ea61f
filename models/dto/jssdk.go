package dto

// JsConfigQuery 获取 wx.config 配置的查询参数
type JsConfigQuery struct {
	// URL 当前页面地址（不含 # 及之后部分），留空则取 Referer
	URL string `form:"url" binding:"omitempty,url"`
	// APIs 需要使用的 JS 接口列表，逗号分隔，例如 "updateAppMessageShareData,chooseImage"
	APIs  string `form:"apis"`
	Debug bool   `form:"debug"`
	Beta  bool   `form:"beta"`
}

// SignatureQuery 仅获取签名包
type SignatureQuery struct {
	URL string `form:"url" binding:"omitempty,url"`
}

// CardExtQuery 生成 cardExt 的查询参数
type CardExtQuery struct {
	CardID string `form:"card_id" binding:"required"`
	Code   string `form:"code"`
	OpenID string `form:"openid"`
}

// ChooseCardQuery 生成拉起卡券列表参数的查询参数
type ChooseCardQuery struct {
	CardID   string `form:"card_id"`
	CardType string `form:"card_type" binding:"omitempty,CardType"`
	ShopID   string `form:"shop_id"`
}
