package domain

// Preferences stores locally persisted user choices.
type Preferences struct {
	Language string `json:"language"`
}
