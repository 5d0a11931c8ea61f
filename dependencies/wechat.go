package dependencies

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/repository"
)

// WechatClient 定义了调用微信公众平台服务端 API 的客户端接口。
// - 所有请求自动附带 access_token，access_token 本身缓存在 TicketCache 中。
// - 响应体中 errcode 非 0 时返回 *APIError。
// - 每个方法只发起一次请求，不做重试。
type WechatClient interface {
	// AppID 返回当前公众号的 AppID，用于拼接缓存键和签名包。
	AppID() string

	// Get 以 GET 方式调用 path，query 会与 access_token 合并。
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)

	// PostJSON 以 POST 方式调用 path，body 序列化为 JSON 作为请求体。
	PostJSON(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// APIError 微信接口返回的业务错误。
// - 通过 errors.Is(err, commonerrors.ErrThirdPartyServiceError) 可统一识别。
type APIError struct {
	Path string // 调用的接口路径
	Code int64  // errcode
	Msg  string // errmsg
}

func (e *APIError) Error() string {
	return fmt.Sprintf("微信 API 业务错误: path=%s, code=%d, msg=%s", e.Path, e.Code, e.Msg)
}

func (e *APIError) Unwrap() error {
	return commonerrors.ErrThirdPartyServiceError
}

// wechatClient 是 WechatClient 接口的实现。
type wechatClient struct {
	config  *config.WechatConfig   // AppID / Secret
	baseURL string                 // API 根地址，测试时指向本地服务
	client  *http.Client           // 带 OTel 追踪的 HTTP 客户端
	cache   repository.TicketCache // access_token 缓存
	logger  *zap.Logger
}

// NewWechatClient 创建一个新的 wechatClient 实例。
// - 依赖注入微信配置、凭证缓存和日志。
func NewWechatClient(cfg *config.WechatConfig, cache repository.TicketCache, logger *zap.Logger) WechatClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultWechatBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &wechatClient{
		config:  cfg,
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cache:  cache,
		logger: logger,
	}
}

func (w *wechatClient) AppID() string {
	return w.config.AppID
}

// Get 实现接口方法。
func (w *wechatClient) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	token, err := w.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	return w.do(ctx, http.MethodGet, path, withToken(query, token), nil)
}

// PostJSON 实现接口方法。
func (w *wechatClient) PostJSON(ctx context.Context, path string, body any) (json.RawMessage, error) {
	token, err := w.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if body != nil {
		// 模板消息中的跳转链接经常带 &，不做 HTML 转义
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(body); err != nil {
			return nil, fmt.Errorf("wechatClient.PostJSON: 序列化请求体失败 (path: %s): %w", path, err)
		}
	}
	return w.do(ctx, http.MethodPost, path, withToken(nil, token), &buf)
}

// accessToken 先读缓存，未命中时调用 /cgi-bin/token 获取并写回缓存。
func (w *wechatClient) accessToken(ctx context.Context) (string, error) {
	key := constants.AccessTokenCachePrefix + w.config.AppID

	token, err := w.cache.Fetch(ctx, key)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return "", fmt.Errorf("wechatClient.accessToken: 读取 access_token 缓存失败: %w", err)
	}

	query := url.Values{}
	query.Set("grant_type", "client_credential")
	query.Set("appid", w.config.AppID)
	query.Set("secret", w.config.Secret)

	body, err := w.do(ctx, http.MethodGet, constants.APIAccessToken, query, nil)
	if err != nil {
		return "", fmt.Errorf("wechatClient.accessToken: 获取 access_token 失败: %w", err)
	}

	ret := gjson.ParseBytes(body)
	token = ret.Get("access_token").String()
	if token == "" {
		return "", fmt.Errorf("wechatClient.accessToken: 响应中缺少 access_token: %w", commonerrors.ErrThirdPartyServiceError)
	}

	lifetime := ret.Get("expires_in").Int() - constants.TicketExpiryMargin
	if lifetime <= 0 {
		// 仍然可用于本次请求，只是不写缓存
		w.logger.Warn("access_token 有效期过短，跳过缓存", zap.Int64("expiresIn", ret.Get("expires_in").Int()))
		return token, nil
	}
	if err := w.cache.Save(ctx, key, token, time.Duration(lifetime)*time.Second); err != nil {
		w.logger.Warn("写入 access_token 缓存失败", zap.String("appID", w.config.AppID), zap.Error(err))
	}
	return token, nil
}

// do 发送请求并检查 HTTP 状态码与微信业务错误码。
func (w *wechatClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader) (json.RawMessage, error) {
	const operation = "wechatClient.do"

	apiURL := w.baseURL + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: 创建微信 API 请求失败 (path: %s): %w", operation, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: 请求微信 API 失败 (path: %s): %w", operation, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: 读取微信 API 响应体失败 (path: %s): %w", operation, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: 微信 API 返回非 200 状态码: %d, path: %s, 响应体: %s: %w", operation, resp.StatusCode, path, string(b), commonerrors.ErrThirdPartyServiceError)
	}
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("%s: 微信 API 响应不是合法 JSON (path: %s): %w", operation, path, commonerrors.ErrThirdPartyServiceError)
	}

	ret := gjson.ParseBytes(b)
	if code := ret.Get("errcode").Int(); code != 0 {
		apiErr := &APIError{Path: path, Code: code, Msg: ret.Get("errmsg").String()}
		w.logger.Warn("微信 API 返回业务错误",
			zap.String("operation", operation),
			zap.String("path", path),
			zap.Int64("errcode", code),
			zap.String("errmsg", apiErr.Msg),
		)
		return nil, apiErr
	}

	w.logger.Debug("微信 API 调用成功", zap.String("operation", operation), zap.String("method", method), zap.String("path", path))
	return json.RawMessage(b), nil
}

func withToken(query url.Values, token string) url.Values {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("access_token", token)
	return q
}
