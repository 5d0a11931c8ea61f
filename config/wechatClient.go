package config

import "time"

type WechatConfig struct {
	// 公众号的 AppID
	AppID string `mapstructure:"appID" json:"appID" yaml:"appID"`

	// 公众号的 AppSecret
	Secret string `mapstructure:"secret" json:"secret" yaml:"secret"`

	// 微信 API 根地址，留空使用 https://api.weixin.qq.com
	BaseURL string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"`

	// 单次请求超时时间，留空默认 10 秒
	Timeout time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`

	// 未显式传入页面 URL 时，JS-SDK 签名使用的兜底地址
	DefaultPageURL string `mapstructure:"defaultPageURL" json:"defaultPageURL" yaml:"defaultPageURL"`
}
