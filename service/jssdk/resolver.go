package jssdk

import "context"

// URLResolver 在调用方未显式传入页面地址时提供当前页面 URL。
type URLResolver interface {
	CurrentURL(ctx context.Context) string
}

type currentURLKey struct{}

// WithCurrentURL 把当前页面地址放入 ctx，供 ContextURLResolver 读取。
func WithCurrentURL(ctx context.Context, pageURL string) context.Context {
	return context.WithValue(ctx, currentURLKey{}, pageURL)
}

// ContextURLResolver 优先读取 ctx 中的页面地址，否则返回 Fallback。
type ContextURLResolver struct {
	Fallback string
}

func (r ContextURLResolver) CurrentURL(ctx context.Context) string {
	if u, ok := ctx.Value(currentURLKey{}).(string); ok && u != "" {
		return u
	}
	return r.Fallback
}
