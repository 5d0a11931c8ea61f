package config

import (
	"github.com/Xushengqwer/go-common/config"
)

type MpHubConfig struct {
	ZapConfig    config.ZapConfig    `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	ServerConfig config.ServerConfig `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig config.TracerConfig `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	JWTConfig    JWTConfig           `mapstructure:"jwtConfig" json:"jwtConfig" yaml:"jwtConfig"`
	RedisConfig  RedisConfig         `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	WechatConfig WechatConfig        `mapstructure:"wechatConfig" json:"wechatConfig" yaml:"wechatConfig"`
	CacheConfig  CacheConfig         `mapstructure:"cacheConfig" json:"cacheConfig" yaml:"cacheConfig"`
	NoticeConfig NoticeConfig        `mapstructure:"noticeConfig" json:"noticeConfig" yaml:"noticeConfig"`
}
