package vo

// JsSignature JS-SDK 权限验证签名包，字段名与前端 wx.config 保持一致
type JsSignature struct {
	AppID     string `json:"appId"`
	NonceStr  string `json:"nonceStr"`
	Timestamp int64  `json:"timestamp"`
	URL       string `json:"url"`
	Signature string `json:"signature"`
}

// JsConfig 可直接传给前端 wx.config 的完整配置
type JsConfig struct {
	Debug bool `json:"debug"`
	Beta  bool `json:"beta"`
	JsSignature
	JsAPIList []string `json:"jsApiList"`
}

// CardExt 添加卡券时使用的 cardExt，字段顺序即微信要求的 JSON 形状
type CardExt struct {
	Code      string `json:"code"`
	OpenID    string `json:"openid"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// ChooseCardData 拉起卡券列表 (wx.chooseCard) 所需参数
type ChooseCardData struct {
	ShopID    string `json:"shopId"`
	CardType  string `json:"cardType"`
	CardID    string `json:"cardId"`
	Timestamp int64  `json:"timestamp"`
	NonceStr  string `json:"nonceStr"`
	SignType  string `json:"signType"`
	CardSign  string `json:"cardSign"`
}

// TicketVO 供其他内部服务共用的 ticket
type TicketVO struct {
	Type   string `json:"type"`
	Ticket string `json:"ticket"`
}
