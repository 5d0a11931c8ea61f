package router

import (
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/controller"
	_ "github.com/Xushengqwer/mp_hub/docs" // 引入 docs 包以注册 Swagger 信息
	"github.com/Xushengqwer/mp_hub/initialization"
	"github.com/Xushengqwer/mp_hub/middleware"
)

// SetupRouter 初始化并配置 Gin 引擎，注册所有中间件和路由。
//   - JS-SDK 签名接口由网页直接调用，不做鉴权。
//   - 卡券和模板消息接口会改动公众号数据，需要服务令牌。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *config.MpHubConfig,
	appDeps *initialization.AppDependencies,
	appServices *initialization.AppServices,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constants.ServiceName))

	// 2. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger，需要底层的 *zap.Logger
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout，配置单位为秒
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 5. User Context
	router.Use(commonMiddleware.UserContextMiddleware())

	v1 := router.Group("api/v1/mp-hub")
	logger.Info("API 路由将注册到 api/v1/mp-hub 分组下")

	jssdkCtrl := controller.NewJSSDKController(appServices.JSSDK, logger)
	cardCtrl := controller.NewCardController(appServices.Card, logger)
	noticeCtrl := controller.NewNoticeController(appServices.NewNotice, logger)

	jssdkCtrl.RegisterRoutes(v1)

	serviceAuth := middleware.NewServiceAuth(appDeps.ServiceToken, logger.Logger())
	protected := v1.Group("", serviceAuth.Required())
	jssdkCtrl.RegisterProtectedRoutes(protected)
	cardCtrl.RegisterRoutes(protected)
	noticeCtrl.RegisterRoutes(protected)

	logger.Info("所有业务路由已成功注册")

	// Swagger UI，访问路径 /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Info("Swagger UI 路由已注册，访问路径: /swagger/index.html")

	return router
}
