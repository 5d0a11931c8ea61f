package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonceStr(t *testing.T) {
	hex := regexp.MustCompile(`^[0-9a-f]+$`)

	n := NonceStr(10)
	assert.Len(t, n, 10)
	assert.Regexp(t, hex, n)
	assert.NotEqual(t, n, NonceStr(10))

	assert.Len(t, NonceStr(0), 32)
	assert.Len(t, NonceStr(64), 32)
}
