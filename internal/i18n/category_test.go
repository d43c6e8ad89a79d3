package i18n

import "testing"

func mapTranslator(messages map[string]string) Translator {
	return TranslatorFunc(func(key string, fallback string) string {
		if value, ok := messages[key]; ok {
			return value
		}
		if fallback != "" {
			return fallback
		}
		return key
	})
}

func TestNormalizeCategoryKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Hot Drinks", want: "hot_drinks"},
		{in: "  Tea / Milk -- Tea!! ", want: "tea_milk_tea"},
		{in: "Coffee2Go", want: "coffee2go"},
		{in: "咖啡 特调", want: "咖啡_特调"},
		{in: "///", want: "///"},
		{in: "", want: ""},
	}
	for _, tc := range tests {
		if got := NormalizeCategoryKey(tc.in); got != tc.want {
			t.Fatalf("NormalizeCategoryKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoryKeyUsesAliasTable(t *testing.T) {
	if CategoryKey("FRAPPE/SMOOTHIES") != CategoryKey("Frappe/Smothies") {
		t.Fatalf("expected frappe variants to share a key")
	}
	if got := CategoryKey("COLD"); got != "cold" {
		t.Fatalf("expected cold, got %q", got)
	}
	if got := CategoryKey("Iced Tea"); got != "iced_tea" {
		t.Fatalf("expected iced_tea, got %q", got)
	}
}

func TestLabelForCategoryAliasesResolveToSameLabel(t *testing.T) {
	tr := mapTranslator(map[string]string{
		"menu.categories.frappe_smoothies": "Frappe & Smoothies",
	})
	first := LabelForCategory(tr, "FRAPPE/SMOOTHIES")
	second := LabelForCategory(tr, "Frappe/Smothies")
	if first != second || first != "Frappe & Smoothies" {
		t.Fatalf("expected shared label, got %q and %q", first, second)
	}
}

func TestLabelForCategoryFallbackChain(t *testing.T) {
	tr := mapTranslator(map[string]string{
		"menu.all":                    "Everything",
		"menu.categories.hot_drinks":  "Hot drinks (normalized)",
		"menu.categories.Hot Drinks":  "Hot drinks (raw)",
		"menu.categories.Iced Coffee": "Iced coffee (raw)",
	})
	tests := []struct {
		category string
		want     string
	}{
		{category: "Hot Drinks", want: "Hot drinks (normalized)"},
		{category: "Iced Coffee", want: "Iced coffee (raw)"},
		{category: "Bakery Specials", want: "Bakery Specials"},
		{category: "All", want: "Everything"},
		{category: "__all__", want: "Everything"},
		{category: "", want: ""},
	}
	for _, tc := range tests {
		if got := LabelForCategory(tr, tc.category); got != tc.want {
			t.Fatalf("LabelForCategory(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestLabelForCategoryAllWithoutTranslation(t *testing.T) {
	tr := mapTranslator(nil)
	if got := LabelForCategory(tr, "All"); got != "All" {
		t.Fatalf("expected All fallback, got %q", got)
	}
}
