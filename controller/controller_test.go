package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/repository/memory"
	"github.com/Xushengqwer/mp_hub/service/card"
	"github.com/Xushengqwer/mp_hub/service/jssdk"
	"github.com/Xushengqwer/mp_hub/service/notice"
	"github.com/Xushengqwer/mp_hub/utils"
)

// stubWechat 按路径返回预设响应，并记录最后一次 POST 的请求体
type stubWechat struct {
	responses map[string]string
	errs      map[string]error
	lastPath  string
	lastBody  []byte
}

func (s *stubWechat) AppID() string { return "wx123" }

func (s *stubWechat) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	s.lastPath = path
	if err := s.errs[path]; err != nil {
		return nil, err
	}
	return json.RawMessage(s.responses[path]), nil
}

func (s *stubWechat) PostJSON(_ context.Context, path string, body any) (json.RawMessage, error) {
	s.lastPath = path
	s.lastBody, _ = json.Marshal(body)
	if err := s.errs[path]; err != nil {
		return nil, err
	}
	resp, ok := s.responses[path]
	if !ok {
		resp = `{"errcode":0,"errmsg":"ok"}`
	}
	return json.RawMessage(resp), nil
}

func newTestEngine(t *testing.T, wechat *stubWechat) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, utils.RegisterCustomValidators())

	logger, err := core.NewZapLogger(config.ZapConfig{Level: "error"})
	require.NoError(t, err)

	jssdkSvc := jssdk.NewJSSDKService(wechat, memory.NewTicketCache(), jssdk.ContextURLResolver{Fallback: "https://fallback.example.com/"}, zap.NewNop())
	cardSvc := card.NewCardService(wechat, zap.NewNop())
	factory := notice.NewFactory(wechat, nil, zap.NewNop())

	r := gin.New()
	group := r.Group("/api/v1/mp-hub")
	NewJSSDKController(jssdkSvc, logger).RegisterRoutes(group)
	NewCardController(cardSvc, logger).RegisterRoutes(group)
	NewNoticeController(factory, logger).RegisterRoutes(group)
	return r
}

func perform(r *gin.Engine, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ticketStub() *stubWechat {
	return &stubWechat{responses: map[string]string{
		constants.APITicket: `{"errcode":0,"ticket":"t","expires_in":7200}`,
	}}
}

func TestSignatureHandler_UsesRefererWithoutFragment(t *testing.T) {
	r := newTestEngine(t, ticketStub())

	w := perform(r, http.MethodGet, "/api/v1/mp-hub/jssdk/signature", "", map[string]string{
		"Referer": "https://page.example.com/a?b=1#section",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"url":"https://page.example.com/a?b=1"`)
	assert.Contains(t, w.Body.String(), `"appId":"wx123"`)
}

func TestConfigHandler_SplitsAPIs(t *testing.T) {
	r := newTestEngine(t, ticketStub())

	w := perform(r, http.MethodGet, "/api/v1/mp-hub/jssdk/config?apis=scanQRCode,+chooseImage,&debug=true", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"jsApiList":["scanQRCode","chooseImage"]`)
	assert.Contains(t, w.Body.String(), `"debug":true`)
	assert.Contains(t, w.Body.String(), `"url":"https://fallback.example.com/"`)
}

func TestCardExtHandler_RequiresCardID(t *testing.T) {
	r := newTestEngine(t, ticketStub())

	w := perform(r, http.MethodGet, "/api/v1/mp-hub/jssdk/card-ext", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketFailureMapsToBadGateway(t *testing.T) {
	wechat := &stubWechat{errs: map[string]error{
		constants.APITicket: &dependencies.APIError{Path: constants.APITicket, Code: 40001, Msg: "invalid credential"},
	}}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodGet, "/api/v1/mp-hub/jssdk/signature?url=https://a.example.com/", "", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "40001")
}

func TestCreateCardHandler(t *testing.T) {
	wechat := &stubWechat{responses: map[string]string{
		constants.APICardCreate: `{"errcode":0,"errmsg":"ok","card_id":"pNew"}`,
	}}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/cards",
		`{"card_type":"GIFT","base_info":{"title":"t"},"properties":{"gift":"g"}}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"card_id":"pNew"`)
	assert.Equal(t, constants.APICardCreate, wechat.lastPath)
	assert.JSONEq(t, `{"card":{"card_type":"GIFT","gift":{"base_info":{"title":"t"},"gift":"g"}}}`, string(wechat.lastBody))
}

func TestCardRoutes_StaticPathsBeatCardID(t *testing.T) {
	wechat := &stubWechat{}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodGet, "/api/v1/mp-hub/cards/user-cards?openid=oUser", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.APICardUserCardList, wechat.lastPath)

	w = perform(r, http.MethodGet, "/api/v1/mp-hub/cards/pCard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.APICardGet, wechat.lastPath)
	assert.JSONEq(t, `{"card_id":"pCard"}`, string(wechat.lastBody))
}

func TestCreateCardHandler_RejectsUnknownType(t *testing.T) {
	r := newTestEngine(t, &stubWechat{})

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/cards", `{"card_type":"VIP","base_info":{}}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendNoticeHandler_MissingTemplate(t *testing.T) {
	wechat := &stubWechat{}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/notices", `{"touser":"oUser","data":{"first":"hi"}}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "template_id")
	assert.Empty(t, wechat.lastPath)
}

func TestSendNoticeHandler(t *testing.T) {
	wechat := &stubWechat{responses: map[string]string{
		constants.APINoticeSend: `{"errcode":0,"errmsg":"ok","msgid":1}`,
	}}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/notices",
		`{"touser":"oUser","template_id":"tpl","data":{"first":"hi","remark":["bye","#000000"]}}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"touser":"oUser","template_id":"tpl","url":"","topcolor":"#FF0000",
		"data":{"first":{"value":"hi","color":"#173177"},"remark":{"value":"bye","color":"#000000"}}
	}`, string(wechat.lastBody))
}

func TestSendNoticeHandler_KeepsNumbers(t *testing.T) {
	wechat := &stubWechat{}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/notices",
		`{"touser":"oUser","template_id":"tpl","data":{"amount":12345678,"order":202310190012345678,"price":[19.9,"#000000"]}}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"touser":"oUser","template_id":"tpl","url":"","topcolor":"#FF0000",
		"data":{
			"amount":{"value":"12345678","color":"#173177"},
			"order":{"value":"202310190012345678","color":"#173177"},
			"price":{"value":"19.9","color":"#000000"}
		}
	}`, string(wechat.lastBody))
}

func TestSendNoticeHandler_InvalidTopColor(t *testing.T) {
	wechat := &stubWechat{}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/notices",
		`{"touser":"oUser","template_id":"tpl","topcolor":"red"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, wechat.lastPath)
}

func TestMemberCardTradeHandler_KeepsLargeIntegers(t *testing.T) {
	wechat := &stubWechat{}
	r := newTestEngine(t, wechat)

	w := perform(r, http.MethodPost, "/api/v1/mp-hub/cards/membercard/trade",
		`{"card_id":"pCard","data":{"code":"123","record_bonus":9007199254740993}}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.APIMemberCardTrade, wechat.lastPath)
	assert.Contains(t, string(wechat.lastBody), `"record_bonus":9007199254740993`)
}
