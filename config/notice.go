package config

// NoticeConfig 模板消息相关配置
type NoticeConfig struct {
	DefaultColor    string `mapstructure:"default_color" json:"default_color" yaml:"default_color"`             // 数据项默认颜色，留空为 #173177
	DefaultTopColor string `mapstructure:"default_top_color" json:"default_top_color" yaml:"default_top_color"` // 顶部颜色默认值，留空为 #FF0000
}
