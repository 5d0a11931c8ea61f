package initialization

import (
	"github.com/Xushengqwer/mp_hub/service/card"
	"github.com/Xushengqwer/mp_hub/service/jssdk"
	"github.com/Xushengqwer/mp_hub/service/notice"
)

// AppServices 封装了应用所需的所有服务层实例。
type AppServices struct {
	JSSDK     jssdk.JSSDKService
	Card      card.CardService
	NewNotice notice.Factory
}

// SetupServices 初始化所有服务层实例。
func SetupServices(deps *AppDependencies) *AppServices {
	logger := deps.Logger.Logger()
	cfg := deps.Config

	jssdkService := jssdk.NewJSSDKService(
		deps.WechatClient,
		deps.TicketCache,
		jssdk.ContextURLResolver{Fallback: cfg.WechatConfig.DefaultPageURL},
		logger,
	)

	cardService := card.NewCardService(deps.WechatClient, logger)

	return &AppServices{
		JSSDK:     jssdkService,
		Card:      cardService,
		NewNotice: notice.NewFactory(deps.WechatClient, &cfg.NoticeConfig, logger),
	}
}
