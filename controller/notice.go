package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/models/dto"
	"github.com/Xushengqwer/mp_hub/service/notice"
)

// NoticeController 处理模板消息相关的 HTTP 请求。
// Notice 不可并发使用，每个请求都通过 newNotice 取得独立实例。
type NoticeController struct {
	newNotice notice.Factory
	logger    *core.ZapLogger
}

// NewNoticeController 创建一个新的 NoticeController 实例。
func NewNoticeController(newNotice notice.Factory, logger *core.ZapLogger) *NoticeController {
	return &NoticeController{
		newNotice: newNotice,
		logger:    logger,
	}
}

// SendHandler 发送模板消息。
// @Summary 发送模板消息
// @Description touser 与 template_id 必填；data 中每一项可以是字符串、{"value","color"} 对象或 [value, color] 数组。
// @Tags 模板消息
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SendNoticeData true "模板消息"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "发送成功，data 中包含 msgid"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效或缺少必填字段"
// @Failure 401 {object} docs.SwaggerAPIErrorResponseString "服务令牌无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/notices [post]
func (ctrl *NoticeController) SendHandler(c *gin.Context) {
	const operation = "NoticeController.SendHandler"

	var req dto.SendNoticeData
	if err := bindJSONUseNumber(c, &req); err != nil {
		ctrl.logger.Warn("模板消息请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.newNotice().
		To(req.ToUser).
		Template(req.TemplateID).
		URL(req.URL).
		Data(req.Data).
		Send(c.Request.Context(), notice.Message{TopColor: req.TopColor})
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}

	ctrl.logger.Info("模板消息发送成功",
		zap.String("operation", operation),
		zap.String("templateID", req.TemplateID),
	)
	response.RespondSuccess(c, ret, "发送成功")
}

// ListTemplatesHandler 获取已添加的模板列表。
// @Summary 获取模板列表
// @Tags 模板消息
// @Produce json
// @Security BearerAuth
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "查询成功"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/notices/templates [get]
func (ctrl *NoticeController) ListTemplatesHandler(c *gin.Context) {
	const operation = "NoticeController.ListTemplatesHandler"

	ret, err := ctrl.newNotice().ListTemplates(c.Request.Context())
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "查询成功")
}

// AddTemplateHandler 从模板库添加模板。
// @Summary 添加模板
// @Tags 模板消息
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddTemplateData true "模板库中的模板编号"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "添加成功，data 中包含 template_id"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/notices/templates [post]
func (ctrl *NoticeController) AddTemplateHandler(c *gin.Context) {
	const operation = "NoticeController.AddTemplateHandler"

	var req dto.AddTemplateData
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.logger.Warn("添加模板请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.newNotice().AddTemplate(c.Request.Context(), req.ShortID)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "添加成功")
}

// SetIndustryHandler 设置所属行业。
// @Summary 设置所属行业
// @Tags 模板消息
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SetIndustryData true "主营行业与副营行业编号"
// @Success 200 {object} docs.SwaggerAPIWechatResultResponse "设置成功"
// @Failure 400 {object} docs.SwaggerAPIErrorResponseString "请求参数无效"
// @Failure 502 {object} docs.SwaggerAPIErrorResponseString "微信接口错误"
// @Router /api/v1/mp-hub/notices/industry [post]
func (ctrl *NoticeController) SetIndustryHandler(c *gin.Context) {
	const operation = "NoticeController.SetIndustryHandler"

	var req dto.SetIndustryData
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.logger.Warn("设置行业请求参数绑定失败", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "输入参数无效")
		return
	}

	ret, err := ctrl.newNotice().SetIndustry(c.Request.Context(), req.IndustryID1, req.IndustryID2)
	if err != nil {
		respondServiceError(c, ctrl.logger, operation, err)
		return
	}
	response.RespondSuccess(c, ret, "设置成功")
}

// RegisterRoutes 注册模板消息相关路由，group 应已挂载服务令牌中间件。
func (ctrl *NoticeController) RegisterRoutes(group *gin.RouterGroup) {
	notices := group.Group("/notices")
	{
		notices.POST("", ctrl.SendHandler)
		notices.GET("/templates", ctrl.ListTemplatesHandler)
		notices.POST("/templates", ctrl.AddTemplateHandler)
		notices.POST("/industry", ctrl.SetIndustryHandler)
	}
}

// bindJSONUseNumber 与 ShouldBindJSON 相同，但 any 中的数字解码为 json.Number，
// 避免大整数经 float64 丢失精度或变成科学计数法。
func bindJSONUseNumber(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return errors.New("请求体为空")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
