package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed messages/*.json
var messagesFS embed.FS

// Catalog holds translated strings per locale, keyed by dotted
// namespace path ("projects.title")
type Catalog struct {
	def      Locale
	messages map[Locale]map[string]string
}

// LoadCatalog reads the embedded message bundles for the given locales
func LoadCatalog(locales []Locale, def Locale) (*Catalog, error) {
	return NewCatalog(messagesFS, "messages", locales, def)
}

// NewCatalog reads <dir>/<locale>.json from fsys for each locale
func NewCatalog(fsys fs.FS, dir string, locales []Locale, def Locale) (*Catalog, error) {
	c := &Catalog{def: def, messages: make(map[Locale]map[string]string, len(locales))}
	for _, l := range locales {
		data, err := fs.ReadFile(fsys, path.Join(dir, string(l)+".json"))
		if err != nil {
			return nil, fmt.Errorf("read messages for %s: %w", l, err)
		}
		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse messages for %s: %w", l, err)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		c.messages[l] = flat
	}
	if _, ok := c.messages[def]; !ok {
		return nil, fmt.Errorf("no messages for default locale %s", def)
	}
	return c, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// T translates key for locale l. Missing keys fall back to the default
// locale, then to the key itself.
func (c *Catalog) T(l Locale, key string) string {
	if msg, ok := c.messages[l][key]; ok {
		return msg
	}
	if msg, ok := c.messages[c.def][key]; ok {
		return msg
	}
	return key
}

// Tf translates key and substitutes {name} placeholders from args pairs
func (c *Catalog) Tf(l Locale, key string, args ...string) string {
	msg := c.T(l, key)
	for i := 0; i+1 < len(args); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+args[i]+"}", args[i+1])
	}
	return msg
}
