// Package i18n resolves the active locale from request paths and serves
// translated strings for it.
package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a language identifier such as "en" or "pt"
type Locale string

// Resolver maps request paths to supported locales
type Resolver struct {
	locales []Locale
	def     Locale
	matcher language.Matcher
}

// NewResolver creates a Resolver over the supported locales.
// def must be one of locales.
func NewResolver(locales []Locale, def Locale) *Resolver {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.Make(string(l))
	}
	return &Resolver{
		locales: slices.Clone(locales),
		def:     def,
		matcher: language.NewMatcher(tags),
	}
}

// Locales returns the supported locales in configured order
func (r *Resolver) Locales() []Locale {
	return slices.Clone(r.locales)
}

// Default returns the fallback locale
func (r *Resolver) Default() Locale {
	return r.def
}

// Supported reports whether l is one of the configured locales
func (r *Resolver) Supported(l Locale) bool {
	return slices.Contains(r.locales, l)
}

// Or returns l when supported and the default locale otherwise
func (r *Resolver) Or(l Locale) Locale {
	if r.Supported(l) {
		return l
	}
	return r.def
}

// Resolve extracts the locale prefix of path. rest is the remainder of the
// path starting with "/" (or "" for the locale root). When the first segment
// is not a supported locale, ok is false, the default locale is returned and
// rest is the unmodified path.
func (r *Resolver) Resolve(path string) (loc Locale, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, tail, hasTail := strings.Cut(trimmed, "/")
	if seg == "" || !r.Supported(Locale(seg)) {
		return r.def, path, false
	}
	if hasTail {
		return Locale(seg), "/" + tail, true
	}
	return Locale(seg), "", true
}

// Switch rewrites path to the same page under locale to, preserving
// everything after the locale segment. Paths without a locale prefix get one.
func (r *Resolver) Switch(path string, to Locale) string {
	to = r.Or(to)
	_, rest, ok := r.Resolve(path)
	if !ok {
		rest = path
		if rest == "/" {
			rest = ""
		}
	}
	return "/" + string(to) + rest
}

// Home returns the homepage path of a locale
func (r *Resolver) Home(l Locale) string {
	return "/" + string(r.Or(l))
}

// Negotiate picks the best supported locale for an Accept-Language header,
// falling back to the default locale
func (r *Resolver) Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.def
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.def
	}
	return r.locales[idx]
}
