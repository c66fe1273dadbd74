package middleware

import (
	"context"
	"net/http"

	"jeremiassnts.dev/internal/i18n"
)

const themeCookie = "theme"

// Prefs reads the theme preference (query > cookie) into the context and
// persists a query-provided theme in a cookie for ~30 days.
// Unknown values fall back to the system theme.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme := ""
		if c, err := r.Cookie(themeCookie); err == nil {
			theme = normalizeTheme(c.Value)
		}
		if qt := r.URL.Query().Get("theme"); qt != "" {
			theme = normalizeTheme(qt)
			http.SetCookie(w, &http.Cookie{
				Name:     themeCookie,
				Value:    theme,
				Path:     "/",
				MaxAge:   86400 * 30,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), ctxTheme, theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func normalizeTheme(v string) string {
	switch v {
	case "light", "dark":
		return v
	}
	return ""
}

// ThemeFrom returns the theme preference, empty for the system default
func ThemeFrom(r *http.Request) string {
	theme, _ := r.Context().Value(ctxTheme).(string)
	return theme
}

// Locale stores the request locale in the context: the path prefix when it
// names a supported locale, otherwise the Accept-Language negotiation.
func Locale(resolver *i18n.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, _, ok := resolver.Resolve(r.URL.Path)
			if !ok {
				loc = resolver.Negotiate(r.Header.Get("Accept-Language"))
			}
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), loc)))
		})
	}
}
