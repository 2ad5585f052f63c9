package dto

import "encoding/json"

// Optional 区分"字段未提交"和"字段被显式设置(包括 null 或空值)"。
// 零值表示未提交。
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some 构造已设置的可选值
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON 只要字段出现在请求体中就标记为已设置，null 解析为零值
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON 未设置时输出 null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
