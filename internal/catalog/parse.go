package catalog

import (
	"encoding/json"
	"strings"

	"github.com/mekedron/cafe-menu/internal/domain"
)

// ParseSections decodes a catalog file leniently. A top level that is not an
// array yields no sections; sections without an items array yield no items;
// entries that are not objects are skipped. It never fails.
func ParseSections(data []byte) []domain.Section {
	var rawSections []json.RawMessage
	if err := json.Unmarshal(data, &rawSections); err != nil {
		return nil
	}
	sections := make([]domain.Section, 0, len(rawSections))
	for _, rawSection := range rawSections {
		fields := decodeObject(rawSection)
		if fields == nil {
			sections = append(sections, domain.Section{})
			continue
		}
		section := domain.Section{Category: decodeString(fields["category"])}
		var rawItems []json.RawMessage
		if err := json.Unmarshal(fields["items"], &rawItems); err == nil {
			for _, rawItem := range rawItems {
				item, ok := parseItem(rawItem)
				if !ok {
					continue
				}
				section.Items = append(section.Items, item)
			}
		}
		sections = append(sections, section)
	}
	return sections
}

func parseItem(data json.RawMessage) (domain.Item, bool) {
	fields := decodeObject(data)
	if fields == nil {
		return domain.Item{}, false
	}
	item := domain.Item{
		ID:    decodeID(fields["id"]),
		Slug:  decodeID(fields["slug"]),
		Image: decodeString(fields["image"]),
	}
	if raw, ok := fields["name"]; ok {
		_ = item.Name.UnmarshalJSON(raw)
	}
	if raw, ok := fields["desc"]; ok {
		_ = item.Description.UnmarshalJSON(raw)
	}
	if raw, ok := fields["price"]; ok {
		_ = item.Price.UnmarshalJSON(raw)
	}
	return item, true
}

func decodeObject(data json.RawMessage) map[string]json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func decodeString(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return ""
	}
	return value
}

func decodeID(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(domain.NormalizeID(value))
}
