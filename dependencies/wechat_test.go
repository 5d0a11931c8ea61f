package dependencies

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/repository/memory"
)

// fakeWechat 模拟微信服务端，记录 /cgi-bin/token 被调用的次数
type fakeWechat struct {
	tokenCalls atomic.Int32
	lastBody   []byte
	lastQuery  map[string]string
}

func (f *fakeWechat) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(constants.APIAccessToken, func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		assert.Equal(t, "client_credential", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "wx-app", r.URL.Query().Get("appid"))
		assert.Equal(t, "s3cret", r.URL.Query().Get("secret"))
		_, _ = io.WriteString(w, `{"access_token":"ACCESS","expires_in":7200}`)
	})
	mux.HandleFunc(constants.APICardGet, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "ACCESS", r.URL.Query().Get("access_token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		f.lastBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"errcode":0,"errmsg":"ok","card":{"card_type":"GIFT"}}`)
	})
	mux.HandleFunc(constants.APITicket, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		f.lastQuery = map[string]string{
			"type":         r.URL.Query().Get("type"),
			"access_token": r.URL.Query().Get("access_token"),
		}
		_, _ = io.WriteString(w, `{"errcode":0,"errmsg":"ok","ticket":"T","expires_in":7200}`)
	})
	mux.HandleFunc(constants.APINoticeSend, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"errcode":40003,"errmsg":"invalid openid"}`)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeWechat) (WechatClient, *memory.TicketCache) {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	cache := memory.NewTicketCache()
	cfg := &config.WechatConfig{AppID: "wx-app", Secret: "s3cret", BaseURL: srv.URL + "/"}
	return NewWechatClient(cfg, cache, zap.NewNop()), cache
}

func TestWechatClient_PostJSONAttachesCachedToken(t *testing.T) {
	f := &fakeWechat{}
	client, cache := newTestClient(t, f)
	ctx := context.Background()

	raw, err := client.PostJSON(ctx, constants.APICardGet, map[string]string{"card_id": "c1", "link": "a?b=1&c=2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"errcode":0,"errmsg":"ok","card":{"card_type":"GIFT"}}`, string(raw))
	assert.JSONEq(t, `{"card_id":"c1","link":"a?b=1&c=2"}`, string(f.lastBody))
	assert.Contains(t, string(f.lastBody), "a?b=1&c=2")

	_, err = client.PostJSON(ctx, constants.APICardGet, map[string]string{"card_id": "c2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.tokenCalls.Load(), "access_token 应当只获取一次")

	token, err := cache.Fetch(ctx, constants.AccessTokenCachePrefix+"wx-app")
	require.NoError(t, err)
	assert.Equal(t, "ACCESS", token)
}

func TestWechatClient_GetMergesQuery(t *testing.T) {
	f := &fakeWechat{}
	client, _ := newTestClient(t, f)

	raw, err := client.Get(context.Background(), constants.APITicket, map[string][]string{"type": {"jsapi"}})
	require.NoError(t, err)

	var body struct {
		Ticket string `json:"ticket"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "T", body.Ticket)
	assert.Equal(t, map[string]string{"type": "jsapi", "access_token": "ACCESS"}, f.lastQuery)
}

func TestWechatClient_BusinessError(t *testing.T) {
	client, _ := newTestClient(t, &fakeWechat{})

	_, err := client.PostJSON(context.Background(), constants.APINoticeSend, map[string]string{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.EqualValues(t, 40003, apiErr.Code)
	assert.Equal(t, "invalid openid", apiErr.Msg)
	assert.ErrorIs(t, err, commonerrors.ErrThirdPartyServiceError)
}

func TestWechatClient_Non200(t *testing.T) {
	client, _ := newTestClient(t, &fakeWechat{})

	_, err := client.Get(context.Background(), "/broken", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
