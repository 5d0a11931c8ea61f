package notice

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/models/vo"
)

type postCall struct {
	path string
	body []byte
}

type fakeClient struct {
	posts []postCall
	gets  []string
}

func (f *fakeClient) AppID() string { return "wx123" }

func (f *fakeClient) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	f.gets = append(f.gets, path)
	return json.RawMessage(`{"template_list":[]}`), nil
}

func (f *fakeClient) PostJSON(_ context.Context, path string, body any) (json.RawMessage, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	f.posts = append(f.posts, postCall{path: path, body: b})
	return json.RawMessage(`{"errcode":0,"errmsg":"ok","msgid":200228332}`), nil
}

func TestFormatData(t *testing.T) {
	got := FormatData(map[string]any{
		"scalar":   5,
		"float":    float64(5),
		"amount":   float64(12345678),
		"order":    float64(20231019001),
		"ratio":    0.25,
		"number":   json.Number("202310190012345678"),
		"oneKey":   map[string]any{"k": "v"},
		"oneStr":   map[string]string{"k": "v"},
		"empty":    []any{},
		"nil":      nil,
		"single":   []any{"only"},
		"pair":     []any{"v", "#000000"},
		"triple":   []string{"a", "#111111", "ignored"},
		"withVal":  map[string]any{"value": "x"},
		"withBoth": map[string]any{"value": "y", "color": "#222222"},
		"noValue":  map[string]any{"color": "#333333", "k": "v"},
		"item":     vo.NoticeDataItem{Value: "z"},
		"struct":   struct{ A int }{1},
	}, "")

	def := constants.NoticeDefaultColor
	bad := constants.NoticeErrorDataItem
	assert.Equal(t, map[string]vo.NoticeDataItem{
		"scalar":   {Value: "5", Color: def},
		"float":    {Value: "5", Color: def},
		"amount":   {Value: "12345678", Color: def},
		"order":    {Value: "20231019001", Color: def},
		"ratio":    {Value: "0.25", Color: def},
		"number":   {Value: "202310190012345678", Color: def},
		"oneKey":   {Value: "v", Color: def},
		"oneStr":   {Value: "v", Color: def},
		"empty":    {Value: bad, Color: def},
		"nil":      {Value: bad, Color: def},
		"single":   {Value: "only", Color: def},
		"pair":     {Value: "v", Color: "#000000"},
		"triple":   {Value: "a", Color: "#111111"},
		"withVal":  {Value: "x", Color: def},
		"withBoth": {Value: "y", Color: "#222222"},
		"noValue":  {Value: bad, Color: def},
		"item":     {Value: "z", Color: def},
		"struct":   {Value: bad, Color: def},
	}, got)
}

func TestSet_ResolvesAliases(t *testing.T) {
	n := NewNotice(&fakeClient{}, "", "", zap.NewNop())

	n.Set("withTemplate", "tpl").
		Set("andReceiver", "oUser").
		Set("link", "https://example.com/?a=1&b=2").
		Set("WithTopColor", "#00FF00").
		Set("with", map[string]any{"k": "v"}).
		Set("nonsense", "ignored")

	m := n.Pending()
	assert.Equal(t, "tpl", m.TemplateID)
	assert.Equal(t, "oUser", m.ToUser)
	assert.Equal(t, "https://example.com/?a=1&b=2", m.URL)
	assert.Equal(t, "#00FF00", m.TopColor)
	assert.Equal(t, map[string]any{"k": "v"}, m.Data)
}

func TestSend_MissingRecipientMakesNoCall(t *testing.T) {
	client := &fakeClient{}
	n := NewNotice(client, "", "", zap.NewNop())

	_, err := n.Template("tpl").Send(context.Background(), Message{})
	require.ErrorIs(t, err, ErrMissingAttribute)
	assert.Contains(t, err.Error(), "touser")
	assert.Empty(t, client.posts)

	_, err = n.To("oUser").Send(context.Background(), Message{})
	require.ErrorIs(t, err, ErrMissingAttribute)
	assert.Contains(t, err.Error(), "template_id")
	assert.Empty(t, client.posts)
}

func TestSend_PayloadAndReset(t *testing.T) {
	client := &fakeClient{}
	n := NewNotice(client, "", "", zap.NewNop())

	_, err := n.To("oUser").
		Template("tpl").
		URL("https://example.com/?a=1&b=2").
		Data(map[string]any{"first": "hello", "remark": []any{"bye", "#123456"}}).
		Send(context.Background(), Message{})
	require.NoError(t, err)

	require.Len(t, client.posts, 1)
	assert.Equal(t, constants.APINoticeSend, client.posts[0].path)
	assert.JSONEq(t, `{
		"touser": "oUser",
		"template_id": "tpl",
		"url": "https://example.com/?a=1&b=2",
		"topcolor": "#FF0000",
		"data": {
			"first": {"value": "hello", "color": "#173177"},
			"remark": {"value": "bye", "color": "#123456"}
		}
	}`, string(client.posts[0].body))

	assert.Equal(t, Message{TopColor: constants.NoticeDefaultTopColor}, n.Pending())
}

func TestSend_OverridesWinOverBuffer(t *testing.T) {
	client := &fakeClient{}
	n := NewNotice(client, "#AAAAAA", "#BBBBBB", zap.NewNop())

	_, err := n.To("buffered").Template("tpl").Send(context.Background(), Message{
		ToUser: "override",
		Data:   map[string]any{"k": 1},
	})
	require.NoError(t, err)

	require.Len(t, client.posts, 1)
	assert.JSONEq(t, `{
		"touser": "override",
		"template_id": "tpl",
		"url": "",
		"topcolor": "#BBBBBB",
		"data": {"k": {"value": "1", "color": "#AAAAAA"}}
	}`, string(client.posts[0].body))
}

func TestSend_ResetsAfterValidationFailure(t *testing.T) {
	n := NewNotice(&fakeClient{}, "", "", zap.NewNop())

	_, err := n.Template("tpl").Color("#000000").Send(context.Background(), Message{})
	require.Error(t, err)
	assert.Equal(t, Message{TopColor: constants.NoticeDefaultTopColor}, n.Pending())
}

func TestManagementCalls(t *testing.T) {
	client := &fakeClient{}
	n := NewNotice(client, "", "", zap.NewNop())
	ctx := context.Background()

	_, err := n.SetIndustry(ctx, 1, 4)
	require.NoError(t, err)
	_, err = n.AddTemplate(ctx, "TM00015")
	require.NoError(t, err)
	ret, err := n.ListTemplates(ctx)
	require.NoError(t, err)

	require.Len(t, client.posts, 2)
	assert.Equal(t, constants.APINoticeIndustry, client.posts[0].path)
	assert.JSONEq(t, `{"industry_id1":1,"industry_id2":4}`, string(client.posts[0].body))
	assert.Equal(t, constants.APINoticeAddTpl, client.posts[1].path)
	assert.JSONEq(t, `{"template_id_short":"TM00015"}`, string(client.posts[1].body))
	assert.Equal(t, []string{constants.APINoticeListTpl}, client.gets)
	assert.JSONEq(t, `{"template_list":[]}`, string(ret))
}
