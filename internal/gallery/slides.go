package gallery

import (
	"encoding/json"
	"path"
	"strings"
)

// Slide is one normalized gallery image.
type Slide struct {
	Src   string `json:"src" yaml:"src"`
	Quote string `json:"quote,omitempty" yaml:"quote,omitempty"`
	Alt   string `json:"alt" yaml:"alt"`
}

var (
	srcFields   = []string{"src", "image", "url", "link"}
	quoteFields = []string{"quote", "caption", "text"}
	altFields   = []string{"alt", "title"}
)

// ParseSlides normalizes a gallery file. Entries may be plain URL strings or
// objects; entries without an image source are dropped.
func ParseSlides(data []byte) []Slide {
	var entries []any
	if err := json.Unmarshal(data, &entries); err != nil {
		return []Slide{}
	}
	slides := make([]Slide, 0, len(entries))
	for _, entry := range entries {
		slide, ok := normalizeSlide(entry)
		if !ok {
			continue
		}
		slides = append(slides, slide)
	}
	return slides
}

func normalizeSlide(entry any) (Slide, bool) {
	switch v := entry.(type) {
	case string:
		if v == "" {
			return Slide{}, false
		}
		return Slide{Src: v, Alt: altFromFilename(v)}, true
	case map[string]any:
		src := firstString(v, srcFields)
		if src == "" {
			return Slide{}, false
		}
		alt := firstString(v, altFields)
		if alt == "" {
			alt = altFromFilename(src)
		}
		return Slide{Src: src, Quote: firstString(v, quoteFields), Alt: alt}, true
	default:
		return Slide{}, false
	}
}

func firstString(fields map[string]any, names []string) string {
	for _, name := range names {
		if value, ok := fields[name].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// altFromFilename turns ".../latte-art_01.jpg" into "latte art 01".
func altFromFilename(src string) string {
	name := path.Base(src)
	if name == "" || name == "." || name == "/" {
		name = "image"
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}
