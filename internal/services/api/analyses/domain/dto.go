// Package domain holds DTOs for the analyses http and service contracts
package domain

// Summary is one row in the analyses listing
type Summary struct {
	Slug     string `json:"slug" example:"faillissementen"`
	Sections int    `json:"sections" example:"4"`
}

// DefaultsResponse carries the registry defaults for one analysis.
// Keys are the camelCase field names; a null value means "explicitly the
// aggregate" (distinct from an absent key, which means no opinion)
type DefaultsResponse struct {
	Slug     string         `json:"slug" example:"faillissementen"`
	Defaults map[string]any `json:"defaults"`
	Sectors  []string       `json:"sectors,omitempty" example:"ALL,F,F41,F42,F43"`
}

// Section is one embeddable section of an analysis
type Section struct {
	ID    string `json:"id" example:"evolutie"`
	Title string `json:"title" example:"Evolutie"`
}

// SectionsResponse lists the embeddable sections of one analysis
type SectionsResponse struct {
	Slug     string    `json:"slug" example:"faillissementen"`
	Sections []Section `json:"sections"`
}
