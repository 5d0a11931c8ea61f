package utils

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Xushengqwer/mp_hub/models/enums"
)

// hexColorRegex 模板消息颜色，形如 #FF0000 或 #F00
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// ValidateHexColor 校验十六进制颜色值。
func ValidateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

// ValidCardType 校验卡券类型枚举值，空值视为有效（由 omitempty / 服务层默认值处理）。
func ValidCardType(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.IsZero() {
		return true
	}
	return enums.CardType(field.String()).Valid()
}

// ValidCardStatus 校验卡券状态枚举值。
func ValidCardStatus(fl validator.FieldLevel) bool {
	switch enums.CardStatus(fl.Field().String()) {
	case enums.CardStatusNotVerify, enums.CardStatusVerifyFail, enums.CardStatusVerifyOK,
		enums.CardStatusUserDelete, enums.CardStatusUserDispatch:
		return true
	}
	return false
}

// RegisterCustomValidators 将自定义校验函数注册到 Gin 的 validator 引擎中。
// 注册后可在 DTO 的 struct tag 中使用，例如 `binding:"omitempty,HexColor"`。
func RegisterCustomValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return registerValidations(v)
	}
	return nil
}

func registerValidations(v *validator.Validate) error {
	validations := map[string]validator.Func{
		"HexColor":   ValidateHexColor,
		"CardType":   ValidCardType,
		"CardStatus": ValidCardStatus,
	}
	for tag, validation := range validations {
		if err := v.RegisterValidation(tag, validation); err != nil {
			return fmt.Errorf("注册验证器 '%s' 失败: %w", tag, err)
		}
	}
	return nil
}
