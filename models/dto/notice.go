package dto

// SendNoticeData 发送模板消息请求体。
// touser / template_id 的必填校验由服务层完成，以便返回具体缺失的字段名。
type SendNoticeData struct {
	ToUser     string         `json:"touser"`
	TemplateID string         `json:"template_id"`
	URL        string         `json:"url" binding:"omitempty,url"`
	TopColor   string         `json:"topcolor" binding:"omitempty,HexColor"`
	Data       map[string]any `json:"data"`
}

// SetIndustryData 设置所属行业请求体
type SetIndustryData struct {
	IndustryID1 int `json:"industry_id1" binding:"required"`
	IndustryID2 int `json:"industry_id2" binding:"required"`
}

// AddTemplateData 从模板库添加模板请求体
type AddTemplateData struct {
	ShortID string `json:"template_id_short" binding:"required"`
}
