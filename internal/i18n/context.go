package i18n

import "context"

type localeKey struct{}

// WithLocale returns a copy of ctx carrying the active locale
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, l)
}

// FromContext returns the active locale stored in ctx, if any
func FromContext(ctx context.Context) (Locale, bool) {
	l, ok := ctx.Value(localeKey{}).(Locale)
	return l, ok && l != ""
}
