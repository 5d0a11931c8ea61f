package config

// CacheConfig 定义 ticket / access_token 缓存的存储方式
type CacheConfig struct {
	// Driver 可选值: "redis" (默认), "local" (本地 SQLite 文件), "memory" (进程内，仅适合单实例调试)
	Driver string `mapstructure:"driver" json:"driver" yaml:"driver"`

	// LocalPath 本地缓存文件路径，仅在 Driver 为 "local" 时生效。留空则使用系统临时目录。
	LocalPath string `mapstructure:"local_path" json:"local_path" yaml:"local_path"`
}

const (
	CacheDriverRedis  = "redis"
	CacheDriverLocal  = "local"
	CacheDriverMemory = "memory"
)
