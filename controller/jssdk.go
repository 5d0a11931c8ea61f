package controller

import (
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/models/dto"
	"github.com/Xushengqwer/mp_hub/models/enums"
	"github.com/Xushengqwer/mp_hub/models/vo"
	"github.com/Xushengqwer/mp_hub/service/jssdk"
)

// JSSDKController 为网页前端提供 wx.config、卡券 JS 接口所需的签名参数。
// 这些接口由浏览器直接调用，不需要服务令牌。
type JSSDKController struct {
	jssdkService jssdk.JSSDKService
	logger       *core.ZapLogger
}

// NewJSSDKController 创建一个新的 JSSDKController 实例。
func NewJSSDKController(jssdkService jssdk.JSSDKService, logger *core.ZapLogger) *JSSDKController {
	return &JSSDKController{
		jssdkService: jssdkService,
		logger:       logger,
	}
}

// ConfigHandler 生成 wx.config 配置。
// @Summary 获取 wx.config 配置
// @Description 返回可直接传给 wx.config 的对象。url 留空时取 Referer 请求头，仍为空则使用服务端配置的默认页面地址。
// @Tags JS-SDK
// @Produce json
// @Param url query string false "当前页面地址（不含 # 之后部分）"
// @Param apis query string false "JS 接口列表，逗号分隔"
// @Param debug query bool false "开启调试模式"
// @Param beta query bool false "开启内测接口"
// @Success 200 {object} docs.SwaggerAPIJsConfigResponse "配置生成成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "获取 jsapi_ticket 失败"
// @Router /api/v1/mp-hub/jssdk/config [get]
func (ctrl *JSSDKController) ConfigHandler(c *gin.Context) {
	const operation = "JSSDKController.ConfigHandler"

	var query dto.JsConfigQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ctrl.logger.Warn("wx.config 请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ctx := jssdk.WithCurrentURL(c.Request.Context(), pageURL(c, query.URL))
	cfg, err := ctrl.jssdkService.Config(ctx, splitAPIs(query.APIs), query.Debug, query.Beta)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, cfg, "获取配置成功")
}

// SignatureHandler 仅生成签名包。
// @Summary 获取 JS-SDK 签名包
// @Tags JS-SDK
// @Produce json
// @Param url query string false "当前页面地址（不含 # 之后部分）"
// @Success 200 {object} docs.SwaggerAPIJsSignatureResponse "签名成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "获取 jsapi_ticket 失败"
// @Router /api/v1/mp-hub/jssdk/signature [get]
func (ctrl *JSSDKController) SignatureHandler(c *gin.Context) {
	const operation = "JSSDKController.SignatureHandler"

	var query dto.SignatureQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ctrl.logger.Warn("签名请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ctx := jssdk.WithCurrentURL(c.Request.Context(), pageURL(c, query.URL))
	sign, err := ctrl.jssdkService.Signature(ctx, "", "", 0)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, sign, "签名成功")
}

// CardExtHandler 生成 wx.addCard 所需的 cardExt。
// @Summary 获取添加卡券的 cardExt
// @Tags JS-SDK
// @Produce json
// @Param card_id query string true "卡券 ID"
// @Param code query string false "自定义 code"
// @Param openid query string false "指定领取者 openid"
// @Success 200 {object} docs.SwaggerAPICardExtResponse "生成成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "获取卡券 ticket 失败"
// @Router /api/v1/mp-hub/jssdk/card-ext [get]
func (ctrl *JSSDKController) CardExtHandler(c *gin.Context) {
	const operation = "JSSDKController.CardExtHandler"

	var query dto.CardExtQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ctrl.logger.Warn("cardExt 请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ext, err := ctrl.jssdkService.CardExt(c.Request.Context(), query.CardID, query.Code, query.OpenID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ext, "生成成功")
}

// ChooseCardHandler 生成 wx.chooseCard 所需的参数。
// @Summary 获取拉起卡券列表的参数
// @Tags JS-SDK
// @Produce json
// @Param card_id query string false "卡券 ID"
// @Param card_type query string false "卡券类型" Enums(GENERAL_COUPON, GROUPON, DISCOUNT, GIFT, CASH, MEMBER_CARD, SCENIC_TICKET, MOVIE_TICKET, BOARDING_PASS, LUCKY_MONEY, MEETING_TICKET)
// @Param shop_id query string false "门店 ID"
// @Success 200 {object} docs.SwaggerAPIChooseCardResponse "生成成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "获取卡券 ticket 失败"
// @Router /api/v1/mp-hub/jssdk/choose-card [get]
func (ctrl *JSSDKController) ChooseCardHandler(c *gin.Context) {
	const operation = "JSSDKController.ChooseCardHandler"

	var query dto.ChooseCardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ctrl.logger.Warn("chooseCard 请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	data, err := ctrl.jssdkService.ChooseCardData(c.Request.Context(), query.CardID, query.CardType, query.ShopID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, data, "生成成功")
}

// TicketHandler 返回当前有效的 ticket。
// 多个内部服务共用同一个公众号时，应通过此接口取 ticket，各自向微信申请会使对方缓存的 ticket 失效。
// @Summary 获取 ticket
// @Tags JS-SDK
// @Produce json
// @Security BearerAuth
// @Param type query string false "ticket 类型" Enums(jsapi, wx_card) default(jsapi)
// @Success 200 {object} docs.SwaggerAPITicketResponse "获取成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "ticket 类型无效"
// @Failure 401 {object} docs.SwaggerAPIErrorResponseString "服务令牌无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "获取 ticket 失败"
// @Router /api/v1/mp-hub/jssdk/ticket [get]
func (ctrl *JSSDKController) TicketHandler(c *gin.Context) {
	const operation = "JSSDKController.TicketHandler"

	rawType := c.Query("type")
	ticketType, err := enums.TicketTypeFromString(rawType)
	if err != nil {
		ctrl.logger.Warn("无效的 ticket 类型", zap.String("operation", operation), zap.String("type", rawType))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
		return
	}

	ticket, err := ctrl.jssdkService.Ticket(c.Request.Context(), ticketType)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, vo.TicketVO{Type: string(ticketType), Ticket: ticket}, "获取成功")
}

// RegisterRoutes 注册 JS-SDK 相关的公开路由。
func (ctrl *JSSDKController) RegisterRoutes(group *gin.RouterGroup) {
	jssdkGroup := group.Group("/jssdk")
	{
		jssdkGroup.GET("/config", ctrl.ConfigHandler)
		jssdkGroup.GET("/signature", ctrl.SignatureHandler)
		jssdkGroup.GET("/card-ext", ctrl.CardExtHandler)
		jssdkGroup.GET("/choose-card", ctrl.ChooseCardHandler)
	}
}

// RegisterProtectedRoutes 注册需要服务令牌的 JS-SDK 路由。
func (ctrl *JSSDKController) RegisterProtectedRoutes(group *gin.RouterGroup) {
	group.GET("/jssdk/ticket", ctrl.TicketHandler)
}

// pageURL 按 url 参数、Referer 的顺序取当前页面地址，并去掉 # 之后的部分
func pageURL(c *gin.Context, explicit string) string {
	u := explicit
	if u == "" {
		u = c.GetHeader("Referer")
	}
	if i := strings.IndexByte(u, '#'); i >= 0 {
		u = u[:i]
	}
	return u
}

func splitAPIs(raw string) []string {
	apis := []string{}
	for _, api := range strings.Split(raw, ",") {
		if api = strings.TrimSpace(api); api != "" {
			apis = append(apis, api)
		}
	}
	return apis
}
