package vo

// NoticeDataItem 模板消息中单个数据项
type NoticeDataItem struct {
	Value string `json:"value"`
	Color string `json:"color"`
}
