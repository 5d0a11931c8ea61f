package dependencies

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Xushengqwer/mp_hub/config"
	"github.com/Xushengqwer/mp_hub/constants"
)

// ServiceTokenInterface 定义内部服务令牌工具的接口
// - 管理类接口只允许持有令牌的内部服务调用，令牌由运维通过 -issue-token 签发
type ServiceTokenInterface interface {
	// GenerateServiceToken 为调用方签发令牌
	// - 输入: caller 调用方名称，写入令牌的 subject
	GenerateServiceToken(caller string) (string, error)

	// ParseServiceToken 解析并验证令牌
	ParseServiceToken(tokenString string) (*ServiceClaims, error)
}

// ServiceClaims 服务令牌声明
type ServiceClaims struct {
	Caller string `json:"caller"` // 调用方名称
	jwt.RegisteredClaims
}

// JWTUtility 实现 ServiceTokenInterface 接口的结构体
type JWTUtility struct {
	cfg *config.JWTConfig
	now func() time.Time
}

// NewJWTUtility 创建 JWTUtility 实例
func NewJWTUtility(cfg *config.JWTConfig) ServiceTokenInterface {
	return &JWTUtility{cfg: cfg, now: time.Now}
}

// GenerateServiceToken 签发服务令牌
func (ju *JWTUtility) GenerateServiceToken(caller string) (string, error) {
	if caller == "" {
		return "", errors.New("调用方名称不能为空")
	}
	now := ju.now()

	claims := &ServiceClaims{
		Caller: caller,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ju.cfg.Issuer,
			Subject:   caller,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(constants.ServiceTokenTTL)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(ju.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("签名令牌失败: %w", err)
	}
	return signedToken, nil
}

// ParseServiceToken 解析并验证服务令牌
func (ju *JWTUtility) ParseServiceToken(tokenString string) (*ServiceClaims, error) {
	parser := jwt.NewParser(
		jwt.WithExpirationRequired(),  // 强制要求令牌包含过期时间
		jwt.WithIssuer(ju.cfg.Issuer), // 验证发行者是否匹配配置中的值
		jwt.WithTimeFunc(ju.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法是否为 HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("签名算法不匹配: %v", token.Header["alg"])
		}
		return []byte(ju.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ServiceClaims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的JWT声明")
	}
	return claims, nil
}
