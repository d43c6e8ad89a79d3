package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Section groups catalog items under one category heading.
type Section struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Item stores one menu product. Category is filled in when the catalog index is built.
type Item struct {
	ID          string        `json:"id,omitempty" yaml:"id,omitempty"`
	Slug        string        `json:"slug,omitempty" yaml:"slug,omitempty"`
	Name        LocalizedText `json:"name" yaml:"name"`
	Price       Price         `json:"price" yaml:"price"`
	Image       string        `json:"image,omitempty" yaml:"image,omitempty"`
	Description LocalizedText `json:"desc,omitempty" yaml:"desc,omitempty"`
	Category    string        `json:"category" yaml:"category"`
}

// Key returns the lookup key of the item: id when present, slug otherwise.
func (it Item) Key() string {
	if it.ID != "" {
		return it.ID
	}
	return it.Slug
}

// LocalizedText maps language codes (en, zh, km, ...) to text.
type LocalizedText map[string]string

// UnmarshalJSON accepts an object of strings or a bare string (treated as English).
// Anything else decodes to an empty value.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	*t = nil
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if text != "" {
			*t = LocalizedText{"en": text}
		}
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	out := make(LocalizedText, len(raw))
	for lang, value := range raw {
		if s, ok := value.(string); ok {
			out[lang] = s
		}
	}
	*t = out
	return nil
}

// Get returns the text for lang, or an empty string.
func (t LocalizedText) Get(lang string) string {
	if t == nil {
		return ""
	}
	return t[lang]
}

// Values returns every language value in a stable order: en, zh, km, then the rest by code.
func (t LocalizedText) Values() []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, 0, len(t))
	for _, lang := range primaryLanguages {
		if value, ok := t[lang]; ok {
			out = append(out, value)
		}
	}
	rest := make([]string, 0, len(t))
	for lang := range t {
		if !isPrimaryLanguage(lang) {
			rest = append(rest, lang)
		}
	}
	sort.Strings(rest)
	for _, lang := range rest {
		out = append(out, t[lang])
	}
	return out
}

var primaryLanguages = []string{"en", "zh", "km"}

func isPrimaryLanguage(lang string) bool {
	for _, candidate := range primaryLanguages {
		if candidate == lang {
			return true
		}
	}
	return false
}

// PriceVariant is one size option of a product.
type PriceVariant struct {
	Size   string          `json:"size" yaml:"size"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}

// Price is either a single base amount or a list of size variants.
type Price struct {
	Base     *decimal.Decimal
	Variants []PriceVariant
}

var sizeOrder = map[string]int{"s": 0, "m": 1, "l": 2}

// IsZero reports whether no price information is available.
func (p Price) IsZero() bool {
	return p.Base == nil && len(p.Variants) == 0
}

// UnmarshalJSON accepts a number, a numeric string, or an object of size to amount.
// Unusable values decode to an empty price.
func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}
	if amount, ok := parseAmount(data); ok {
		p.Base = &amount
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for size, value := range raw {
		amount, ok := parseAmount(value)
		if !ok {
			continue
		}
		p.Variants = append(p.Variants, PriceVariant{Size: size, Amount: amount})
	}
	sort.SliceStable(p.Variants, func(i, j int) bool {
		return lessSize(p.Variants[i].Size, p.Variants[j].Size)
	})
	return nil
}

// MarshalJSON writes the same shape the catalog file uses.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Base != nil {
		return []byte(p.Base.String()), nil
	}
	if len(p.Variants) == 0 {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, variant := range p.Variants {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(variant.Size)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(variant.Amount.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML mirrors MarshalJSON for yaml output.
func (p Price) MarshalYAML() (any, error) {
	if p.Base != nil {
		return p.Base.InexactFloat64(), nil
	}
	if len(p.Variants) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(p.Variants))
	for _, variant := range p.Variants {
		out[variant.Size] = variant.Amount.InexactFloat64()
	}
	return out, nil
}

func parseAmount(data []byte) (decimal.Decimal, bool) {
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(number.String()))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

func lessSize(left, right string) bool {
	li, lok := sizeOrder[strings.ToLower(left)]
	ri, rok := sizeOrder[strings.ToLower(right)]
	switch {
	case lok && rok:
		return li < ri
	case lok:
		return true
	case rok:
		return false
	default:
		return left < right
	}
}
