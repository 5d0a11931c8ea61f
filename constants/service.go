package constants

const (
	ServiceName    = "mp-hub"
	ServiceVersion = "1.0.0"
)

// CallerKey 服务令牌校验通过后，调用方名称写入 gin.Context 的键
const CallerKey = "caller"
