package enums

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoticeField 模板消息中可通过链式设置的字段
type NoticeField int

const (
	NoticeFieldUnknown NoticeField = iota
	NoticeFieldTemplateID
	NoticeFieldToUser
	NoticeFieldTopColor
	NoticeFieldURL
	NoticeFieldData
)

// String 返回字段在微信请求体中的键名
func (f NoticeField) String() string {
	switch f {
	case NoticeFieldTemplateID:
		return "template_id"
	case NoticeFieldToUser:
		return "touser"
	case NoticeFieldTopColor:
		return "topcolor"
	case NoticeFieldURL:
		return "url"
	case NoticeFieldData:
		return "data"
	default:
		return ""
	}
}

// noticeFieldAliases 设置方法名 -> 字段
var noticeFieldAliases = map[string]NoticeField{
	"template":   NoticeFieldTemplateID,
	"templateId": NoticeFieldTemplateID,
	"uses":       NoticeFieldTemplateID,
	"to":         NoticeFieldToUser,
	"receiver":   NoticeFieldToUser,
	"color":      NoticeFieldTopColor,
	"topColor":   NoticeFieldTopColor,
	"url":        NoticeFieldURL,
	"link":       NoticeFieldURL,
	"data":       NoticeFieldData,
	"with":       NoticeFieldData,
}

// NoticeFieldFromAlias 解析设置方法名。
// 先去掉开头的 "with" / "and"（大小写不敏感）并把首字母转为小写，
// 因此 "withData"、"andUrl"、"WithTopColor" 都能识别；无法识别时返回 NoticeFieldUnknown。
func NoticeFieldFromAlias(name string) NoticeField {
	name = trimAliasPrefix(name, "with")
	name = trimAliasPrefix(name, "and")
	if f, ok := noticeFieldAliases[name]; ok {
		return f
	}
	return NoticeFieldUnknown
}

// trimAliasPrefix 只有去掉前缀后仍有剩余时才生效，"with" 本身是 data 的别名
func trimAliasPrefix(name, prefix string) string {
	if len(name) <= len(prefix) || !strings.EqualFold(name[:len(prefix)], prefix) {
		return name
	}
	rest := name[len(prefix):]
	r, size := utf8.DecodeRuneInString(rest)
	return string(unicode.ToLower(r)) + rest[size:]
}
