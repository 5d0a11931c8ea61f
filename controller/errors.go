package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/mp_hub/dependencies"
	"github.com/Xushengqwer/mp_hub/service/card"
	"github.com/Xushengqwer/mp_hub/service/jssdk"
	"github.com/Xushengqwer/mp_hub/service/notice"
)

// respondServiceError 把服务层错误映射为 HTTP 响应。
//   - 缺少必填字段 / 卡券类型不支持：400
//   - 微信接口业务错误 / 不可用：502，附带 errcode 与 errmsg
//   - 其他：500
func respondServiceError(c *gin.Context, logger *core.ZapLogger, operation string, err error) {
	var apiErr *dependencies.APIError

	switch {
	case errors.Is(err, notice.ErrMissingAttribute), errors.Is(err, card.ErrUnsupportedCardType):
		logger.Warn("请求参数不满足业务要求", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())

	case errors.As(err, &apiErr):
		logger.Warn("微信接口返回业务错误",
			zap.String("operation", operation),
			zap.Int64("errcode", apiErr.Code),
			zap.String("errmsg", apiErr.Msg),
		)
		response.RespondError(c, http.StatusBadGateway, response.ErrCodeThirdPartyServiceError,
			fmt.Sprintf("微信接口错误: errcode=%d, errmsg=%s", apiErr.Code, apiErr.Msg))

	case errors.Is(err, commonerrors.ErrThirdPartyServiceError), errors.Is(err, jssdk.ErrTicketLifetimeTooShort):
		logger.Error("微信接口不可用", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusBadGateway, response.ErrCodeThirdPartyServiceError, commonerrors.ErrThirdPartyServiceError.Error())

	default:
		logger.Error("服务内部错误", zap.String("operation", operation), zap.Error(err))
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, commonerrors.ErrSystemError.Error())
	}
}
