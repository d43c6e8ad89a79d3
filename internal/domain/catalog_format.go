package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingText is rendered when an item has no usable name or price.
const MissingText = "—"

// NormalizeID normalizes mixed payload id values.
func NormalizeID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// DisplayName returns the name in lang, falling back to English.
func (it Item) DisplayName(lang string) string {
	if name := it.Name.Get(lang); name != "" {
		return name
	}
	if name := it.Name.Get("en"); name != "" {
		return name
	}
	return MissingText
}

// DescriptionFor returns the description in lang, falling back to English.
func (it Item) DescriptionFor(lang string) string {
	if desc := it.Description.Get(lang); desc != "" {
		return desc
	}
	return it.Description.Get("en")
}

// Format renders the price for tables.
func (p Price) Format() string {
	if p.Base != nil {
		return "$" + p.Base.StringFixed(2)
	}
	if len(p.Variants) == 0 {
		return MissingText
	}
	parts := make([]string, 0, len(p.Variants))
	for _, variant := range p.Variants {
		parts = append(parts, fmt.Sprintf("%s $%s", strings.ToUpper(variant.Size), variant.Amount.StringFixed(2)))
	}
	return strings.Join(parts, " / ")
}
