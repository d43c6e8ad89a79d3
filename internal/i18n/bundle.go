package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translator resolves a message key. Unknown keys return fallback, or the
// key itself when fallback is empty.
type Translator interface {
	T(key string, fallback string) string
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key string, fallback string) string

// T implements Translator.
func (f TranslatorFunc) T(key string, fallback string) string {
	return f(key, fallback)
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Bundle holds flattened messages per language.
type Bundle struct {
	messages map[string]map[string]string
}

// LoadEmbedded loads the locale resources shipped with the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads every locales/<lang>.yaml file of fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale resources: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale resources found")
	}
	sort.Strings(paths)

	bundle := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		lang := strings.TrimSuffix(path.Base(p), path.Ext(p))
		messages := map[string]string{}
		flattenMessages("", tree, messages)
		bundle.messages[lang] = messages
	}
	if _, ok := bundle.messages[FallbackLanguage]; !ok {
		return nil, fmt.Errorf("fallback language %s is not defined", FallbackLanguage)
	}
	return bundle, nil
}

func flattenMessages(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenMessages(fullKey, v, out)
		case string:
			out[fullKey] = v
		case nil:
		default:
			out[fullKey] = fmt.Sprint(v)
		}
	}
}

// Languages returns the loaded language codes.
func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.messages))
	for lang := range b.messages {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the message for key in lang without any fallback.
func (b *Bundle) Lookup(lang string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	value, ok := b.messages[lang][key]
	return value, ok
}

// Translator returns a Translator for lang that falls back to English.
func (b *Bundle) Translator(lang string) Translator {
	return TranslatorFunc(func(key string, fallback string) string {
		if value, ok := b.Lookup(lang, key); ok {
			return value
		}
		if value, ok := b.Lookup(FallbackLanguage, key); ok {
			return value
		}
		if fallback != "" {
			return fallback
		}
		return key
	})
}

// Interpolate replaces {name} placeholders in text.
func Interpolate(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
