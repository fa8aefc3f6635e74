package model

// LanguageInfo holds the code and English name of a supported locale.
type LanguageInfo struct {
	Code string `json:"code"` // e.g., "de-DE"
	Name string `json:"name"` // e.g., "German"
}
