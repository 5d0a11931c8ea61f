package jssdk

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/models/enums"
	"github.com/Xushengqwer/mp_hub/repository/memory"
)

type fakeClient struct {
	appID    string
	response string
	calls    []url.Values
}

func (f *fakeClient) AppID() string { return f.appID }

func (f *fakeClient) Get(_ context.Context, path string, query url.Values) (json.RawMessage, error) {
	if path != constants.APITicket {
		return nil, assert.AnError
	}
	f.calls = append(f.calls, query)
	return json.RawMessage(f.response), nil
}

func (f *fakeClient) PostJSON(context.Context, string, any) (json.RawMessage, error) {
	return nil, assert.AnError
}

func newTestService(client *fakeClient, cache *memory.TicketCache) *jssdkService {
	svc := NewJSSDKService(client, cache, ContextURLResolver{Fallback: "https://example.com/fallback"}, zap.NewNop()).(*jssdkService)
	svc.now = func() time.Time { return time.Unix(1414587457, 0) }
	svc.nonce = func() string { return "Wm3WZYTPz0wzccnW" }
	return svc
}

func TestJsAPISignature_KnownVector(t *testing.T) {
	got := JsAPISignature(
		"sM4AOVdWfPE4DxkXGEs8VMCPGGVi4C3VM0P37wVUCFvkVAy_90u5h9nbSlYy3-Sl-HhTdfl2fzFy1AOcHKP7qg",
		"Wm3WZYTPz0wzccnW",
		1414587457,
		"http://mp.weixin.qq.com?params=value",
	)
	assert.Equal(t, "0f9de62fce790f9a083d5c99e95740ceb90c27ed", got)
}

func TestCardSignature_SortsBeforeHashing(t *testing.T) {
	assert.Equal(t, "d3c033bc9339ddbdfae4926ef61436110cf6bde0", CardSignature("b", "a", "10"))
	assert.Equal(t, CardSignature("10", "a", "b"), CardSignature("b", "a", "10"))
}

func TestTicket_CacheHitSkipsRequest(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewTicketCache()
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"fresh","expires_in":7200}`}
	svc := newTestService(client, cache)

	require.NoError(t, cache.Save(ctx, constants.TicketCachePrefix+"wx123jsapi", "cached", time.Minute))

	got, err := svc.Ticket(ctx, enums.TicketJSAPI)
	require.NoError(t, err)
	assert.Equal(t, "cached", got)
	assert.Empty(t, client.calls)
}

func TestTicket_MissFetchesAndCaches(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewTicketCache()
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"card-ticket","expires_in":7200}`}
	svc := newTestService(client, cache)

	got, err := svc.Ticket(ctx, enums.TicketCard)
	require.NoError(t, err)
	assert.Equal(t, "card-ticket", got)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "wx_card", client.calls[0].Get("type"))

	again, err := svc.Ticket(ctx, enums.TicketCard)
	require.NoError(t, err)
	assert.Equal(t, "card-ticket", again)
	assert.Len(t, client.calls, 1)

	cached, err := cache.Fetch(ctx, constants.TicketCachePrefix+"wx123wx_card")
	require.NoError(t, err)
	assert.Equal(t, "card-ticket", cached)
}

func TestTicket_ShortLifetimeFails(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewTicketCache()
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"short","expires_in":500}`}
	svc := newTestService(client, cache)

	_, err := svc.Ticket(ctx, enums.TicketJSAPI)
	assert.ErrorIs(t, err, ErrTicketLifetimeTooShort)

	_, err = cache.Fetch(ctx, constants.TicketCachePrefix+"wx123jsapi")
	assert.Error(t, err)
}

func TestSignature_FillsDefaults(t *testing.T) {
	client := &fakeClient{
		appID:    "wx123",
		response: `{"errcode":0,"ticket":"sM4AOVdWfPE4DxkXGEs8VMCPGGVi4C3VM0P37wVUCFvkVAy_90u5h9nbSlYy3-Sl-HhTdfl2fzFy1AOcHKP7qg","expires_in":7200}`,
	}
	svc := newTestService(client, memory.NewTicketCache())
	ctx := WithCurrentURL(context.Background(), "http://mp.weixin.qq.com?params=value")

	sign, err := svc.Signature(ctx, "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "wx123", sign.AppID)
	assert.Equal(t, "Wm3WZYTPz0wzccnW", sign.NonceStr)
	assert.Equal(t, int64(1414587457), sign.Timestamp)
	assert.Equal(t, "http://mp.weixin.qq.com?params=value", sign.URL)
	assert.Equal(t, "0f9de62fce790f9a083d5c99e95740ceb90c27ed", sign.Signature)
}

func TestSignature_FallbackURL(t *testing.T) {
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"t","expires_in":7200}`}
	svc := newTestService(client, memory.NewTicketCache())

	sign, err := svc.Signature(context.Background(), "", "n", 42)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/fallback", sign.URL)
	assert.Equal(t, JsAPISignature("t", "n", 42, "https://example.com/fallback"), sign.Signature)
}

func TestConfig_EmbedsSignature(t *testing.T) {
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"t","expires_in":7200}`}
	svc := newTestService(client, memory.NewTicketCache())

	cfg, err := svc.Config(context.Background(), []string{"scanQRCode"}, true, false)
	require.NoError(t, err)

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"debug": true,
		"beta": false,
		"appId": "wx123",
		"nonceStr": "Wm3WZYTPz0wzccnW",
		"timestamp": 1414587457,
		"url": "https://example.com/fallback",
		"signature": "`+JsAPISignature("t", "Wm3WZYTPz0wzccnW", 1414587457, "https://example.com/fallback")+`",
		"jsApiList": ["scanQRCode"]
	}`, string(raw))
}

func TestCardExt_EmptyNonceAndFieldOrder(t *testing.T) {
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"card-ticket","expires_in":7200}`}
	svc := newTestService(client, memory.NewTicketCache())

	ext, err := svc.CardExt(context.Background(), "pCard", "12345", "oUser")
	require.NoError(t, err)

	ts := strconv.FormatInt(1414587457, 10)
	assert.Equal(t, CardSignature("card-ticket", ts, "pCard", "12345", "oUser", ""), ext.Signature)

	raw, err := json.Marshal(ext)
	require.NoError(t, err)
	assert.Equal(t, `{"code":"12345","openid":"oUser","timestamp":1414587457,"signature":"`+ext.Signature+`"}`, string(raw))
}

func TestChooseCardData_SignsAllFields(t *testing.T) {
	client := &fakeClient{appID: "wx123", response: `{"errcode":0,"ticket":"card-ticket","expires_in":7200}`}
	svc := newTestService(client, memory.NewTicketCache())

	data, err := svc.ChooseCardData(context.Background(), "pCard", "GROUPON", "shop1")
	require.NoError(t, err)
	assert.Equal(t, "SHA1", data.SignType)
	assert.Equal(t, "Wm3WZYTPz0wzccnW", data.NonceStr)
	assert.Equal(t,
		CardSignature("card-ticket", "wx123", "shop1", "1414587457", "Wm3WZYTPz0wzccnW", "pCard", "GROUPON"),
		data.CardSign,
	)
}
