// Package domain holds DTOs for the embed http and service contracts
package domain

import (
	"analyses/internal/core/filters"
	"analyses/internal/core/registry"
)

// ResolveResponse is the fully-merged view state for one embedded section.
// Query is the canonical query string the merged state serializes to; an
// iframe loaded with exactly that string reproduces State
type ResolveResponse struct {
	Slug    string           `json:"slug" example:"faillissementen"`
	Section registry.Section `json:"section"`
	State   filters.State    `json:"state"`
	Query   string           `json:"query" example:"chartType=composed&range=yearly&sector=ALL&view=chart"`
}

// CodeResponse carries a ready-to-paste iframe snippet. ContainerID is unique
// per generation so multiple embeds can live on one host page
type CodeResponse struct {
	ContainerID string `json:"containerId" example:"analyses-embed-7b1c5c1e"`
	Src         string `json:"src" example:"https://www.embuild.be/embed/faillissementen/evolutie?range=yearly"`
	HTML        string `json:"html"`
	Query       string `json:"query"`
}

// FieldJudgment is one per-parameter validation verdict
type FieldJudgment struct {
	Param   string `json:"param" example:"province"`
	Message string `json:"message" example:"Ongeldige provinciecode: 99999"`
}

// ValidateResponse reports every invalid filter parameter in the query.
// Valid is true when Errors is empty
type ValidateResponse struct {
	Slug   string          `json:"slug" example:"faillissementen"`
	Valid  bool            `json:"valid"`
	Errors []FieldJudgment `json:"errors,omitempty"`
}
