package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// FallbackLanguage is used when a key or language is unavailable.
const FallbackLanguage = "en"

var supportedLanguages = []string{"en", "zh", "km"}

var supportedTags = []language.Tag{
	language.English,
	language.Chinese,
	language.Khmer,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Legacy codes used by the language switcher.
var languageAliases = map[string]string{
	"cn": "zh",
	"kh": "km",
}

var languageNames = map[string]string{
	"en": "English",
	"zh": "中文",
	"km": "ខ្មែរ",
}

// SupportedLanguages returns the language codes the site ships.
func SupportedLanguages() []string {
	return append([]string(nil), supportedLanguages...)
}

// LanguageName returns the native display name of lang.
func LanguageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return lang
}

// ResolveLanguage maps user input such as "zh-CN", "kh" or "en_US" to a
// supported language code. The bool is false when the input was not
// recognized and FallbackLanguage was chosen.
func ResolveLanguage(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return FallbackLanguage, false
	}
	value = strings.ReplaceAll(value, "_", "-")
	if alias, ok := languageAliases[value]; ok {
		return alias, true
	}
	tag, err := language.Parse(value)
	if err != nil {
		return FallbackLanguage, false
	}
	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return FallbackLanguage, false
	}
	return supportedLanguages[index], true
}
