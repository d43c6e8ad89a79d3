package i18n

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	allCategoryKey      = "menu.all"
	categoryKeyPrefix   = "menu.categories."
	allCategorySentinel = "All"
	allCategoryInternal = "__all__"
)

// CategoryKeyAliases maps raw category strings found in catalog files,
// including known typos and casing variants, to message keys.
var CategoryKeyAliases = map[string]string{
	"Signature":        "signature",
	"Premium":          "premium",
	"Hot":              "hot",
	"Cold":             "cold",
	"COLD":             "cold",
	"Frappe/Smothies":  "frappe_smoothies",
	"Frappe/Smoothies": "frappe_smoothies",
	"FRAPPE/SMOOTHIES": "frappe_smoothies",
	"Tea/Passion/Soda": "tea_passion_soda",
	"TEA/PASSION/SODA": "tea_passion_soda",
	"Food":             "food",
	"FOOD":             "food",
}

// NormalizeCategoryKey lowercases category and collapses every run of
// characters that are neither letters nor digits into one underscore.
// When nothing is left the input is returned unchanged.
func NormalizeCategoryKey(category string) string {
	lower := cases.Lower(language.Und).String(category)
	var b strings.Builder
	b.Grow(len(lower))
	pendingSeparator := false
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSeparator = false
			b.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}
	if b.Len() == 0 {
		return category
	}
	return b.String()
}

// CategoryKey returns the alias for category, or its normalized form.
func CategoryKey(category string) string {
	if key, ok := CategoryKeyAliases[category]; ok {
		return key
	}
	return NormalizeCategoryKey(category)
}

// LabelForCategory returns the display label of category. Lookup order is
// the normalized key, then the raw key, then category itself.
func LabelForCategory(t Translator, category string) string {
	if category == "" {
		return ""
	}
	if category == allCategorySentinel || category == allCategoryInternal {
		return t.T(allCategoryKey, allCategorySentinel)
	}
	normalizedKey := categoryKeyPrefix + CategoryKey(category)
	rawKey := categoryKeyPrefix + category
	return t.T(normalizedKey, t.T(rawKey, category))
}
