package contact

import (
	"regexp"
	"strings"

	"github.com/mekedron/cafe-menu/internal/domain"
)

// DefaultCountryCode is prepended to local numbers that start with 0.
const DefaultCountryCode = "+855"

var phoneSeparators = regexp.MustCompile(`[/,|]`)

// ParsePhones splits a free-form phone field such as
// "077 636 190 / 093 616 989" into dialable entries. Pieces without any
// digit are dropped.
func ParsePhones(raw string, countryCode string) []domain.PhoneEntry {
	entries := []domain.PhoneEntry{}
	if strings.TrimSpace(raw) == "" {
		return entries
	}
	if strings.TrimSpace(countryCode) == "" {
		countryCode = DefaultCountryCode
	}

	for _, piece := range phoneSeparators.Split(raw, -1) {
		display := strings.TrimSpace(piece)
		if display == "" {
			continue
		}
		number, ok := normalizePhone(display, countryCode)
		if !ok {
			continue
		}
		entries = append(entries, domain.PhoneEntry{Display: display, Href: "tel:" + number})
	}
	return entries
}

// normalizePhone keeps numbers that start with + as typed. Otherwise only
// digits are kept and a leading 0 becomes the country code; any other number,
// including one that already starts with the country digits, gets a + prefix.
func normalizePhone(display string, countryCode string) (string, bool) {
	compact := strings.Join(strings.Fields(display), "")
	digits := digitsOnly(compact)
	if digits == "" {
		return "", false
	}
	if strings.HasPrefix(compact, "+") {
		return compact, true
	}
	if strings.HasPrefix(digits, "0") {
		return countryCode + digits[1:], true
	}
	return "+" + digits, true
}

func digitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MailtoHref builds a mailto link, or reports false for a blank address.
func MailtoHref(email string) (string, bool) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", false
	}
	return "mailto:" + trimmed, true
}
