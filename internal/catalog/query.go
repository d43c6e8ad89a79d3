package catalog

import (
	"strings"

	"github.com/mekedron/cafe-menu/internal/domain"
)

// Filter returns the items in category active whose name contains query in
// any language. active == AllCategories keeps every category; a blank query
// keeps every name. The result keeps catalog order and is a fresh slice.
func (x *Index) Filter(active string, query string) []domain.Item {
	inCategory := x.items
	if active != AllCategories {
		want := normalizeCategory(active)
		inCategory = make([]domain.Item, 0, len(x.items))
		for _, item := range x.items {
			if normalizeCategory(item.Category) == want {
				inCategory = append(inCategory, item)
			}
		}
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return cloneItems(inCategory)
	}

	matched := make([]domain.Item, 0, len(inCategory))
	for _, item := range inCategory {
		if nameContains(item.Name, needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

func nameContains(name domain.LocalizedText, needle string) bool {
	for _, value := range name.Values() {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}
