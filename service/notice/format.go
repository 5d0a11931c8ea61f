package notice

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/mp_hub/constants"
	"github.com/Xushengqwer/mp_hub/models/vo"
)

// FormatData 把调用方传入的模板数据规范成 {value, color} 形式。
//   - 标量：值转为字符串，使用默认颜色
//   - 含 value 键的 map：取 value，color 为空时使用默认颜色
//   - 不含 value 键但只有一个键的 map：该键的值为值，使用默认颜色
//   - 只有一个元素的数组：该元素为值，使用默认颜色
//   - 两个及以上元素的数组：前两个元素分别为值和颜色
//   - NoticeDataItem：原样保留，color 为空时使用默认颜色
//   - 其他（nil、空数组、空 map、结构体等）：替换成 "error data item."
func FormatData(data map[string]any, defaultColor string) map[string]vo.NoticeDataItem {
	if defaultColor == "" {
		defaultColor = constants.NoticeDefaultColor
	}
	out := make(map[string]vo.NoticeDataItem, len(data))
	for key, item := range data {
		out[key] = formatItem(item, defaultColor)
	}
	return out
}

func formatItem(item any, defaultColor string) vo.NoticeDataItem {
	invalid := vo.NoticeDataItem{Value: constants.NoticeErrorDataItem, Color: defaultColor}

	switch v := item.(type) {
	case nil:
		return invalid
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return vo.NoticeDataItem{Value: stringify(v), Color: defaultColor}
	case vo.NoticeDataItem:
		return withDefaultColor(v, defaultColor)
	case *vo.NoticeDataItem:
		if v == nil {
			return invalid
		}
		return withDefaultColor(*v, defaultColor)
	case map[string]any:
		if value, ok := v["value"]; ok && value != nil {
			color, _ := v["color"].(string)
			return withDefaultColor(vo.NoticeDataItem{Value: stringify(value), Color: color}, defaultColor)
		}
		if sole, ok := soleValue(v); ok && sole != nil {
			return vo.NoticeDataItem{Value: stringify(sole), Color: defaultColor}
		}
		return invalid
	case map[string]string:
		if value, ok := v["value"]; ok {
			return withDefaultColor(vo.NoticeDataItem{Value: value, Color: v["color"]}, defaultColor)
		}
		if sole, ok := soleValue(v); ok {
			return vo.NoticeDataItem{Value: sole, Color: defaultColor}
		}
		return invalid
	case []any:
		return formatList(len(v), func(i int) string { return stringify(v[i]) }, defaultColor)
	case []string:
		return formatList(len(v), func(i int) string { return v[i] }, defaultColor)
	default:
		return invalid
	}
}

func formatList(n int, at func(int) string, defaultColor string) vo.NoticeDataItem {
	switch {
	case n == 0:
		return vo.NoticeDataItem{Value: constants.NoticeErrorDataItem, Color: defaultColor}
	case n == 1:
		return vo.NoticeDataItem{Value: at(0), Color: defaultColor}
	default:
		return vo.NoticeDataItem{Value: at(0), Color: at(1)}
	}
}

func withDefaultColor(item vo.NoticeDataItem, defaultColor string) vo.NoticeDataItem {
	if item.Color == "" {
		item.Color = defaultColor
	}
	return item
}

// soleValue 返回只有一个键的 map 中的值
func soleValue[V any](m map[string]V) (V, bool) {
	var zero V
	if len(m) != 1 {
		return zero, false
	}
	for _, v := range m {
		return v, true
	}
	return zero, false
}

// stringify 把标量转成字符串，浮点数不使用科学计数法
func stringify(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case json.Number:
		return n.String()
	default:
		return fmt.Sprint(v)
	}
}
