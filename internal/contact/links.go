package contact

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mekedron/cafe-menu/internal/domain"
)

const (
	telegramBaseURL   = "https://t.me/"
	directionsBaseURL = "https://www.google.com/maps/dir/?api=1&destination="
	mapsSearchBaseURL = "https://www.google.com/maps/search/?api=1&query="
	embedWidthMarker  = `" width=`
	embedSrcMarker    = `src="`
)

var absoluteHTTPURL = regexp.MustCompile(`(?i)^https?://`)

// TelegramHref accepts "@handle", "handle" or a full URL. It reports false
// when val is empty.
func TelegramHref(val string) (string, bool) {
	if val == "" {
		return "", false
	}
	if absoluteHTTPURL.MatchString(val) {
		return val, true
	}
	return telegramBaseURL + strings.TrimPrefix(val, "@"), true
}

// DirectionsURL builds a maps directions link. A blank query still yields a
// valid URL with an empty destination.
func DirectionsURL(query string) string {
	destination := ""
	if strings.TrimSpace(query) != "" {
		destination = query
	}
	return directionsBaseURL + EncodeURIComponent(destination)
}

// MapsSearchURL returns the explicit map link of a branch, or a maps search
// for its directions query, address or name, in that order.
func MapsSearchURL(branch domain.Branch) (string, bool) {
	if branch.Map.URL != "" {
		return branch.Map.URL, true
	}
	for _, candidate := range []string{branch.Map.DirectionsQuery, branch.Address, branch.Name} {
		if candidate != "" {
			return mapsSearchBaseURL + EncodeURIComponent(candidate), true
		}
	}
	return "", false
}

// SafeEmbedSrc extracts the URL from a value that may have been pasted
// together with iframe attributes. The extraction is best effort: it cuts at
// the first `" width=` (or the first space) and strips quotes.
func SafeEmbedSrc(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if idx := strings.Index(s, embedSrcMarker); idx >= 0 {
		s = s[idx+len(embedSrcMarker):]
	}
	cut := strings.Index(s, embedWidthMarker)
	if cut < 0 {
		cut = strings.Index(s, " ")
	}
	if cut >= 0 {
		s = s[:cut]
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return "", false
	}
	return s, true
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes value like the browser function of the same
// name: everything except letters, digits and -_.!~*'() is percent-encoded.
func EncodeURIComponent(value string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(value))
}
