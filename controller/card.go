package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/models/dto"
	"github.com/Xushengqwer/mp_hub/service/card"
)

// defaultCardListCount 批量查询卡券时未指定 count 的默认值
const defaultCardListCount = 10

// CardController 处理卡券管理相关的 HTTP 请求。
// 所有接口都需要服务令牌，响应中的 data 为微信接口原样返回的 JSON。
type CardController struct {
	cardService card.CardService
	logger      *core.ZapLogger
}

// NewCardController 创建一个新的 CardController 实例。
func NewCardController(cardService card.CardService, logger *core.ZapLogger) *CardController {
	return &CardController{
		cardService: cardService,
		logger:      logger,
	}
}

// CreateHandler 创建卡券。
// @Summary 创建卡券
// @Description base_info 与类型专属字段原样透传给微信，card_type 留空为 GENERAL_COUPON。
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateCardData true "卡券信息"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "创建成功，data 中包含 card_id"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 401 {object} docs.SwaggerAPIErrorResponseString "服务令牌无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards [post]
func (ctrl *CardController) CreateHandler(c *gin.Context) {
	const operation = "CardController.CreateHandler"

	var req dto.CreateCardData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("创建卡券请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.Create(c.Request.Context(), req.BaseInfo, req.Properties, req.CardType)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	ctrl.logger.Info("卡券创建成功", zap.String("operation", operation), zap.String("cardType", string(req.CardType)))
	response.RespondSuccess(c, ret, "创建成功")
}

// ListHandler 批量查询卡券。
// @Summary 批量查询卡券
// @Tags 卡券管理
// @Produce json
// @Security BearerAuth
// @Param offset query int false "起始偏移"
// @Param count query int false "数量，最大 50"
// @Param status query []string false "状态过滤" collectionFormat(multi)
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "查询成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards [get]
func (ctrl *CardController) ListHandler(c *gin.Context) {
	const operation = "CardController.ListHandler"

	var query dto.CardListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ctrl.logger.Warn("批量查询卡券参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}
	if query.Count == 0 {
		query.Count = defaultCardListCount
	}

	ret, err := ctrl.cardService.List(c.Request.Context(), query.Offset, query.Count, query.Status)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "查询成功")
}

// GetHandler 查询卡券详情。
// @Summary 查询卡券详情
// @Tags 卡券管理
// @Produce json
// @Security BearerAuth
// @Param cardID path string true "卡券 ID"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "查询成功"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/{cardID} [get]
func (ctrl *CardController) GetHandler(c *gin.Context) {
	const operation = "CardController.GetHandler"

	ret, err := ctrl.cardService.Get(c.Request.Context(), c.Param("cardID"))
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "查询成功")
}

// DeleteHandler 删除卡券。
// @Summary 删除卡券
// @Tags 卡券管理
// @Produce json
// @Security BearerAuth
// @Param cardID path string true "卡券 ID"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "删除成功"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/{cardID} [delete]
func (ctrl *CardController) DeleteHandler(c *gin.Context) {
	const operation = "CardController.DeleteHandler"
	cardID := c.Param("cardID")

	ret, err := ctrl.cardService.Delete(c.Request.Context(), cardID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	ctrl.logger.Info("卡券已删除", zap.String("operation", operation), zap.String("cardID", cardID))
	response.RespondSuccess(c, ret, "删除成功")
}

// ModifyStockHandler 修改库存。
// @Summary 修改卡券库存
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ModifyStockData true "增减数量"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "修改成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/stock [post]
func (ctrl *CardController) ModifyStockHandler(c *gin.Context) {
	const operation = "CardController.ModifyStockHandler"

	var req dto.ModifyStockData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("修改库存请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.ModifyStock(c.Request.Context(), req.CardID, req.Increase, req.Reduce)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "修改成功")
}

// DecryptCodeHandler 解码加密 code。
// @Summary 解码卡券 code
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.DecryptCodeData true "加密 code"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "解码成功，data 中包含 code"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/code/decrypt [post]
func (ctrl *CardController) DecryptCodeHandler(c *gin.Context) {
	const operation = "CardController.DecryptCodeHandler"

	var req dto.DecryptCodeData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("解码请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.GetRealCode(c.Request.Context(), req.EncryptCode)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "解码成功")
}

// CodeGetHandler 查询 code 状态。
// @Summary 查询卡券 code
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CardCodeData true "code 与卡券 ID"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "查询成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/code/get [post]
func (ctrl *CardController) CodeGetHandler(c *gin.Context) {
	ctrl.handleCode(c, "CardController.CodeGetHandler", ctrl.cardService.CodeGet, "查询成功")
}

// ConsumeHandler 核销 code。
// @Summary 核销卡券 code
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CardCodeData true "code 与卡券 ID"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "核销成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/code/consume [post]
func (ctrl *CardController) ConsumeHandler(c *gin.Context) {
	ctrl.handleCode(c, "CardController.ConsumeHandler", ctrl.cardService.Consume, "核销成功")
}

// UnavailableHandler 设置 code 失效。
// @Summary 设置卡券 code 失效
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CardCodeData true "code 与卡券 ID"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "设置成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/code/unavailable [post]
func (ctrl *CardController) UnavailableHandler(c *gin.Context) {
	ctrl.handleCode(c, "CardController.UnavailableHandler", ctrl.cardService.Unavailable, "设置成功")
}

// MemberCardActivateHandler 激活会员卡。
// @Summary 激活会员卡
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.MemberCardData true "会员卡 ID 与激活信息"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "激活成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/membercard/activate [post]
func (ctrl *CardController) MemberCardActivateHandler(c *gin.Context) {
	ctrl.handleMemberCard(c, "CardController.MemberCardActivateHandler", ctrl.cardService.MemberCardActivate, "激活成功")
}

// MemberCardTradeHandler 更新会员信息。
// @Summary 更新会员信息
// @Description 用于积分、余额变动等交易后的会员信息更新。
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.MemberCardData true "会员卡 ID 与更新内容"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "更新成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/membercard/trade [post]
func (ctrl *CardController) MemberCardTradeHandler(c *gin.Context) {
	ctrl.handleMemberCard(c, "CardController.MemberCardTradeHandler", ctrl.cardService.MemberCardTrade, "更新成功")
}

// TestWhitelistHandler 设置测试白名单。
// @Summary 设置卡券测试白名单
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TestWhitelistData true "openid 或微信号列表"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "设置成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/testwhitelist [post]
func (ctrl *CardController) TestWhitelistHandler(c *gin.Context) {
	const operation = "CardController.TestWhitelistHandler"

	var req dto.TestWhitelistData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("测试白名单请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.SetTestWhitelist(c.Request.Context(), req.OpenIDs, req.Usernames)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "设置成功")
}

// UserCardListHandler 查询用户已领取的卡券。
// @Summary 查询用户卡券
// @Tags 卡券管理
// @Produce json
// @Security BearerAuth
// @Param openid query string true "用户 openid"
// @Param card_id query string false "卡券 ID，留空返回全部"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "查询成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/user-cards [get]
func (ctrl *CardController) UserCardListHandler(c *gin.Context) {
	const operation = "CardController.UserCardListHandler"

	var query dto.UserCardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ctrl.logger.Warn("查询用户卡券参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.UserCardList(c.Request.Context(), query.OpenID, query.CardID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "查询成功")
}

// UpdateHandler 更新卡券信息。
// @Summary 更新卡券信息
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateCardData true "卡券 ID、类型与需要更新的字段"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "更新成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/update [post]
func (ctrl *CardController) UpdateHandler(c *gin.Context) {
	const operation = "CardController.UpdateHandler"

	var req dto.UpdateCardData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("更新卡券请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.Update(c.Request.Context(), req.CardID, req.CardType, req.Attributes)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "更新成功")
}

// UpdateCodeHandler 更改 code。
// @Summary 更改卡券 code
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateCodeData true "原 code 与新 code"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "更改成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/code/update [post]
func (ctrl *CardController) UpdateCodeHandler(c *gin.Context) {
	const operation = "CardController.UpdateCodeHandler"

	var req dto.UpdateCodeData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("更改 code 请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.UpdateCode(c.Request.Context(), req.Code, req.NewCode, req.CardID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "更改成功")
}

// TicketHolderHandler 更新电影票、会议门票持有人信息或办理飞机票登机。
// @Summary 更新票券持有人信息
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TicketHolderData true "票券类型与微信接口所需字段"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "更新成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/ticket-holder [post]
func (ctrl *CardController) TicketHolderHandler(c *gin.Context) {
	const operation = "CardController.TicketHolderHandler"

	var req dto.TicketHolderData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("票券持有人请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.UpdateTicketHolder(c.Request.Context(), req.CardType, req.Data)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "更新成功")
}

// LandingPageHandler 创建卡券货架。
// @Summary 创建卡券货架
// @Description 请求体原样透传给微信，包含 banner、page_title、card_list 等字段。
// @Tags 卡券管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "货架信息"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "创建成功，data 中包含货架链接"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/cards/landingpage [post]
func (ctrl *CardController) LandingPageHandler(c *gin.Context) {
	const operation = "CardController.LandingPageHandler"

	var page map[string]any
	if err := bindJSONUseNumber(c, &page); err != nil || len(page) == 0 {
		ctrl.logger.Warn("货架请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.cardService.CreateLandingPage(c.Request.Context(), page)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "创建成功")
}

// RegisterRoutes 注册卡券管理相关路由，group 应已挂载服务令牌中间件。
func (ctrl *CardController) RegisterRoutes(group *gin.RouterGroup) {
	cards := group.Group("/cards")
	{
		cards.POST("", ctrl.CreateHandler)
		cards.GET("", ctrl.ListHandler)
		cards.GET("/user-cards", ctrl.UserCardListHandler)
		cards.GET("/:cardID", ctrl.GetHandler)
		cards.DELETE("/:cardID", ctrl.DeleteHandler)
		cards.POST("/stock", ctrl.ModifyStockHandler)
		cards.POST("/code/decrypt", ctrl.DecryptCodeHandler)
		cards.POST("/code/get", ctrl.CodeGetHandler)
		cards.POST("/code/consume", ctrl.ConsumeHandler)
		cards.POST("/code/unavailable", ctrl.UnavailableHandler)
		cards.POST("/membercard/activate", ctrl.MemberCardActivateHandler)
		cards.POST("/membercard/trade", ctrl.MemberCardTradeHandler)
		cards.POST("/testwhitelist", ctrl.TestWhitelistHandler)
		cards.POST("/update", ctrl.UpdateHandler)
		cards.POST("/code/update", ctrl.UpdateCodeHandler)
		cards.POST("/ticket-holder", ctrl.TicketHolderHandler)
		cards.POST("/landingpage", ctrl.LandingPageHandler)
	}
}

type codeOperation func(ctx context.Context, code, cardID string) (json.RawMessage, error)

type memberCardOperation func(ctx context.Context, cardID string, data map[string]any) (json.RawMessage, error)

func (ctrl *CardController) handleCode(c *gin.Context, operation string, op codeOperation, message string) {
	var req dto.CardCodeData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("code 请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := op(c.Request.Context(), req.Code, req.CardID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, message)
}

func (ctrl *CardController) handleMemberCard(c *gin.Context, operation string, op memberCardOperation, message string) {
	var req dto.MemberCardData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("会员卡请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := op(c.Request.Context(), req.CardID, req.Data)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, message)
}
