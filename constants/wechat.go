package constants

// DefaultWechatBaseURL 微信公众平台 API 根地址
const DefaultWechatBaseURL = "https://api.weixin.qq.com"

// 基础接口
const (
	APIAccessToken = "/cgi-bin/token"
	APITicket      = "/cgi-bin/ticket/getticket"
)

// 卡券接口
const (
	APICardCreate            = "/card/create"
	APICardDelete            = "/card/delete"
	APICardGet               = "/card/get"
	APICardUpdate            = "/card/update"
	APICardList              = "/card/batchget"
	APICardConsume           = "/card/code/consume"
	APICardUnavailable       = "/card/code/unavailable"
	APICardCodeGet           = "/card/code/get"
	APICardCodeUpdate        = "/card/code/update"
	APICardCodeDecrypt       = "/card/code/decrypt"
	APICardUpdateStock       = "/card/modifystock"
	APIMemberCardActivate    = "/card/membercard/activate"
	APIMemberCardTrade       = "/card/membercard/updateuser"
	APIMovieTicketUpdate     = "/card/movieticket/updateuser"
	APIBoardingPassCheckin   = "/card/boardingpass/checkin"
	APIMeetingTicketUpdate   = "/card/meetingticket/updateuser"
	APICardTestWhitelist     = "/card/testwhitelist/set"
	APICardUserCardList      = "/card/user/getcardlist"
	APICardLandingPageCreate = "/card/landingpage/create"
)

// 模板消息接口
const (
	APINoticeSend     = "/cgi-bin/message/template/send"
	APINoticeIndustry = "/cgi-bin/template/api_set_industry"
	APINoticeAddTpl   = "/cgi-bin/template/api_add_template"
	APINoticeListTpl  = "/cgi-bin/template/get_all_private_template"
)

const (
	// NoticeDefaultColor 模板消息数据项默认颜色
	NoticeDefaultColor = "#173177"

	// NoticeDefaultTopColor 模板消息顶部颜色默认值
	NoticeDefaultTopColor = "#FF0000"

	// NoticeErrorDataItem 无法识别的数据项被替换成的值
	NoticeErrorDataItem = "error data item."
)
