package domain

// MapInfo stores map links for the contact page or a branch.
type MapInfo struct {
	URL             string `json:"url,omitempty" yaml:"url,omitempty"`
	EmbedURL        string `json:"embedUrl,omitempty" yaml:"embedUrl,omitempty"`
	DirectionsQuery string `json:"directionsQuery,omitempty" yaml:"directionsQuery,omitempty"`
}

// Contact stores the contact block of the site variables.
type Contact struct {
	Phone    string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string  `json:"email,omitempty" yaml:"email,omitempty"`
	Address  string  `json:"address,omitempty" yaml:"address,omitempty"`
	Hours    string  `json:"hours,omitempty" yaml:"hours,omitempty"`
	Tagline  string  `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Telegram string  `json:"telegram,omitempty" yaml:"telegram,omitempty"`
	Facebook string  `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Map      MapInfo `json:"map" yaml:"map"`
}

// Social stores footer social links.
type Social struct {
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty" yaml:"telegram,omitempty"`
}

// Branch stores one shop location.
type Branch struct {
	Name    string  `json:"name" yaml:"name"`
	Address string  `json:"address,omitempty" yaml:"address,omitempty"`
	Hours   string  `json:"hours,omitempty" yaml:"hours,omitempty"`
	Phone   string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string  `json:"email,omitempty" yaml:"email,omitempty"`
	Image   string  `json:"image,omitempty" yaml:"image,omitempty"`
	Map     MapInfo `json:"map" yaml:"map"`
}

// SiteVariables is the shape of the site configuration file.
type SiteVariables struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Logo     string   `json:"logo,omitempty" yaml:"logo,omitempty"`
	Contact  Contact  `json:"contact" yaml:"contact"`
	Social   Social   `json:"social" yaml:"social"`
	Branches []Branch `json:"branches" yaml:"branches"`
}

// PhoneEntry is one dialable phone number.
type PhoneEntry struct {
	Display string `json:"display" yaml:"display"`
	Href    string `json:"href" yaml:"href"`
}
