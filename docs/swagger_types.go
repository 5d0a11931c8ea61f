package docs

// 这个文件定义了专门用于 Swagger 文档注解的类型。
// swaggo/swag 无法直接解析泛型类型（如 response.APIResponse[T]），
// 因此为每个在控制器注解中用到的具体实例化类型定义一个非泛型的包装器。

import (
	"github.com/Xushengqwer/go-common/response"

	"github.com/Xushengqwer/mp_hub/models/vo"
)

// --- 成功响应包装类型 ---

// SwaggerAPIJsConfigResponse 包装了 response.APIResponse[vo.JsConfig]
// 用于 JSSDKController.ConfigHandler
type SwaggerAPIJsConfigResponse struct {
	response.APIResponse[vo.JsConfig]
}

// SwaggerAPIJsSignatureResponse 包装了 response.APIResponse[vo.JsSignature]
// 用于 JSSDKController.SignatureHandler
type SwaggerAPIJsSignatureResponse struct {
	response.APIResponse[vo.JsSignature]
}

// SwaggerAPICardExtResponse 包装了 response.APIResponse[vo.CardExt]
// 用于 JSSDKController.CardExtHandler
type SwaggerAPICardExtResponse struct {
	response.APIResponse[vo.CardExt]
}

// SwaggerAPIChooseCardResponse 包装了 response.APIResponse[vo.ChooseCardData]
// 用于 JSSDKController.ChooseCardHandler
type SwaggerAPIChooseCardResponse struct {
	response.APIResponse[vo.ChooseCardData]
}

// SwaggerAPIWechatResultResponse 微信接口原样返回的 JSON 结果，data 字段内容取决于具体接口
// 用于 CardController 与 NoticeController 的全部接口
type SwaggerAPIWechatResultResponse struct {
	response.APIResponse[map[string]any]
}

// --- 失败响应包装类型 ---

// SwaggerAPIErrorResponseString 包装了 response.APIResponse[string]
type SwaggerAPIErrorResponseString struct {
	response.APIResponse[string]
}

// SwaggerAPITicketResponse 包装了 response.APIResponse[vo.TicketVO]
// 用于 JSSDKController.TicketHandler
type SwaggerAPITicketResponse struct {
	response.APIResponse[vo.TicketVO]
}
