package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/models/enums"
	"github.com/Xushengqwer/mp_hub/models/vo"
)

// ErrMissingAttribute 发送模板消息时必填字段为空
var ErrMissingAttribute = errors.New("模板消息缺少必填字段")

// Message 一条待发送的模板消息
type Message struct {
	ToUser     string
	TemplateID string
	URL        string
	TopColor   string
	Data       map[string]any
}

// sendPayload 发送接口请求体
type sendPayload struct {
	ToUser     string                       `json:"touser"`
	TemplateID string                       `json:"template_id"`
	URL        string                       `json:"url"`
	TopColor   string                       `json:"topcolor"`
	Data       map[string]vo.NoticeDataItem `json:"data"`
}

// Notice 模板消息构建与发送。
// - 内部缓冲一条待发送消息，通过 Set 或具名方法链式填充，Send 之后无论成败都会重置为默认值。
// - 不可并发使用，每个请求应使用独立实例（见 Factory）。
type Notice struct {
	wechatClient    dependencies.WechatClient
	logger          *zap.Logger
	defaultColor    string
	defaultTopColor string

	message Message
}

// Factory 创建独立的 Notice 实例
type Factory func() *Notice

// NewFactory 根据配置返回 Notice 工厂，所有实例共享同一个 WechatClient。
func NewFactory(wechatClient dependencies.WechatClient, cfg *config.NoticeConfig, logger *zap.Logger) Factory {
	var color, topColor string
	if cfg != nil {
		color, topColor = cfg.DefaultColor, cfg.DefaultTopColor
	}
	return func() *Notice {
		return NewNotice(wechatClient, color, topColor, logger)
	}
}

// NewNotice 创建 Notice，颜色留空时使用微信文档中的默认值。
func NewNotice(wechatClient dependencies.WechatClient, defaultColor, defaultTopColor string, logger *zap.Logger) *Notice {
	if defaultColor == "" {
		defaultColor = constants.NoticeDefaultColor
	}
	if defaultTopColor == "" {
		defaultTopColor = constants.NoticeDefaultTopColor
	}
	n := &Notice{
		wechatClient:    wechatClient,
		logger:          logger,
		defaultColor:    defaultColor,
		defaultTopColor: defaultTopColor,
	}
	n.reset()
	return n
}

func (n *Notice) reset() {
	n.message = Message{TopColor: n.defaultTopColor}
}

// Pending 返回当前缓冲中的消息副本
func (n *Notice) Pending() Message {
	m := n.message
	if m.Data != nil {
		m.Data = copyData(m.Data)
	}
	return m
}

// Set 按名称设置字段，支持 "template"、"withData"、"andUrl" 等别名，无法识别的名称被忽略。
// data 字段只接受 map，其余字段的值按字符串处理。
func (n *Notice) Set(name string, value any) *Notice {
	field := enums.NoticeFieldFromAlias(name)
	switch field {
	case enums.NoticeFieldData:
		if data, ok := toData(value); ok {
			n.message.Data = data
		}
	case enums.NoticeFieldTemplateID:
		n.message.TemplateID = toString(value)
	case enums.NoticeFieldToUser:
		n.message.ToUser = toString(value)
	case enums.NoticeFieldTopColor:
		n.message.TopColor = toString(value)
	case enums.NoticeFieldURL:
		n.message.URL = toString(value)
	}
	return n
}

// Template 设置模板 ID
func (n *Notice) Template(templateID string) *Notice {
	n.message.TemplateID = templateID
	return n
}

// To 设置接收者 openid
func (n *Notice) To(openID string) *Notice {
	n.message.ToUser = openID
	return n
}

// Color 设置顶部颜色
func (n *Notice) Color(color string) *Notice {
	n.message.TopColor = color
	return n
}

// URL 设置详情链接
func (n *Notice) URL(link string) *Notice {
	n.message.URL = link
	return n
}

// Data 设置模板数据
func (n *Notice) Data(data map[string]any) *Notice {
	n.message.Data = data
	return n
}

// Send 发送模板消息。
// - overrides 中非空的字段优先于缓冲中的值。
// - touser、template_id 最终为空时返回 ErrMissingAttribute，不会发起请求。
// - 返回后缓冲重置为默认值。
func (n *Notice) Send(ctx context.Context, overrides Message) (json.RawMessage, error) {
	const operation = "Notice.Send"
	defer n.reset()

	payload := sendPayload{
		ToUser:     pick(overrides.ToUser, n.message.ToUser),
		TemplateID: pick(overrides.TemplateID, n.message.TemplateID),
		URL:        pick(overrides.URL, n.message.URL),
		TopColor:   pick(overrides.TopColor, n.message.TopColor),
	}
	if payload.ToUser == "" {
		return nil, fmt.Errorf("%s: %w: %s", operation, ErrMissingAttribute, enums.NoticeFieldToUser)
	}
	if payload.TemplateID == "" {
		return nil, fmt.Errorf("%s: %w: %s", operation, ErrMissingAttribute, enums.NoticeFieldTemplateID)
	}

	data := overrides.Data
	if len(data) == 0 {
		data = n.message.Data
	}
	payload.Data = FormatData(data, n.defaultColor)

	ret, err := n.wechatClient.PostJSON(ctx, constants.APINoticeSend, payload)
	if err != nil {
		n.logger.Error("发送模板消息失败",
			zap.String("operation", operation),
			zap.String("templateID", payload.TemplateID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s: 调用微信发送接口失败: %w", operation, err)
	}
	return ret, nil
}

// SetIndustry 设置公众号所属行业
func (n *Notice) SetIndustry(ctx context.Context, industryOne, industryTwo int) (json.RawMessage, error) {
	body := map[string]int{
		"industry_id1": industryOne,
		"industry_id2": industryTwo,
	}
	ret, err := n.wechatClient.PostJSON(ctx, constants.APINoticeIndustry, body)
	if err != nil {
		return nil, fmt.Errorf("Notice.SetIndustry: %w", err)
	}
	return ret, nil
}

// AddTemplate 从模板库添加模板，返回结果中包含 template_id
func (n *Notice) AddTemplate(ctx context.Context, shortID string) (json.RawMessage, error) {
	ret, err := n.wechatClient.PostJSON(ctx, constants.APINoticeAddTpl, map[string]string{"template_id_short": shortID})
	if err != nil {
		return nil, fmt.Errorf("Notice.AddTemplate: %w", err)
	}
	return ret, nil
}

// ListTemplates 获取已添加的模板列表
func (n *Notice) ListTemplates(ctx context.Context) (json.RawMessage, error) {
	ret, err := n.wechatClient.Get(ctx, constants.APINoticeListTpl, nil)
	if err != nil {
		return nil, fmt.Errorf("Notice.ListTemplates: %w", err)
	}
	return ret, nil
}

func pick(override, buffered string) string {
	if override != "" {
		return override
	}
	return buffered
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func toData(v any) (map[string]any, bool) {
	switch d := v.(type) {
	case map[string]any:
		return d, true
	case map[string]string:
		out := make(map[string]any, len(d))
		for k, val := range d {
			out[k] = val
		}
		return out, true
	case map[string]vo.NoticeDataItem:
		out := make(map[string]any, len(d))
		for k, val := range d {
			out[k] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func copyData(d map[string]any) map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
