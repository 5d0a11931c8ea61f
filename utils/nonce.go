package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NonceStr 生成长度为 n 的随机字符串（十六进制字符），n 最大 32。
func NonceStr(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n <= 0 || n > len(s) {
		return s
	}
	return s[:n]
}
