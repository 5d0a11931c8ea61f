package config

// JWTConfig 定义内部服务调用令牌的相关配置。
// 管理类接口（卡券创建、模板消息发送等）要求调用方携带由该密钥签发的令牌。
type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"` // 用于签名服务令牌的密钥
	Issuer    string `mapstructure:"issuer" yaml:"issuer"`         // 令牌的签发者
}
