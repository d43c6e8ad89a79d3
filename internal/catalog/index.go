package catalog

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mekedron/cafe-menu/internal/domain"
)

// AllCategories is the sentinel category that disables category filtering.
const AllCategories = "All"

// PriorityCategories are pinned to the front of the display list.
var PriorityCategories = map[string]struct{}{
	"signature":  {},
	"premium":    {},
	"hot drink":  {},
	"hot drinks": {},
}

// Index holds the derived views of one catalog dataset. It is immutable
// once built and safe to share between goroutines.
type Index struct {
	items             []domain.Item
	categories        []string
	displayCategories []string
	byID              map[string]domain.Item
}

// NewIndex builds every derived view of sections in one pass.
func NewIndex(sections []domain.Section) *Index {
	items := flatten(sections)
	categories := uniqueCategories(sections)
	return &Index{
		items:             items,
		categories:        categories,
		displayCategories: pinPriorityCategories(categories),
		byID:              indexByKey(items),
	}
}

// Items returns the flat catalog in section order, then item order.
func (x *Index) Items() []domain.Item {
	return cloneItems(x.items)
}

// Len returns the number of flat items.
func (x *Index) Len() int {
	return len(x.items)
}

// Categories returns the unique categories in first-seen order.
func (x *Index) Categories() []string {
	return cloneStrings(x.categories)
}

// DisplayCategories returns Categories with priority categories first.
func (x *Index) DisplayCategories() []string {
	return cloneStrings(x.displayCategories)
}

// ByID looks an item up by id or slug.
func (x *Index) ByID(idOrSlug string) (domain.Item, bool) {
	item, ok := x.byID[idOrSlug]
	return item, ok
}

func flatten(sections []domain.Section) []domain.Item {
	items := make([]domain.Item, 0)
	for _, section := range sections {
		for _, item := range section.Items {
			item.Category = section.Category
			items = append(items, item)
		}
	}
	return items
}

func uniqueCategories(sections []domain.Section) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(sections))
	for _, section := range sections {
		category := strings.TrimSpace(section.Category)
		key := strings.ToLower(category)
		if key == "" || key == "all" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, category)
	}
	return out
}

func pinPriorityCategories(categories []string) []string {
	pinned, rest := lo.FilterReject(categories, func(category string, _ int) bool {
		return isPriorityCategory(category)
	})
	return append(pinned, rest...)
}

func isPriorityCategory(category string) bool {
	_, ok := PriorityCategories[normalizeCategory(category)]
	return ok
}

func indexByKey(items []domain.Item) map[string]domain.Item {
	byID := make(map[string]domain.Item, len(items))
	for _, item := range items {
		key := item.Key()
		if key == "" {
			continue
		}
		// Duplicate keys overwrite: the last item wins.
		byID[key] = item
	}
	return byID
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneItems(items []domain.Item) []domain.Item {
	return append([]domain.Item(nil), items...)
}
