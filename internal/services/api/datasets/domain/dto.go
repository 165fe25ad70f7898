// Package domain holds DTOs for the datasets http and service contracts
package domain

import "encoding/json"

// BatchInput names the precomputed result files to fetch in one call
type BatchInput struct {
	Names []string `json:"names" validate:"required,min=1,max=20,dive,min=1,max=200" example:"faillissementen/yearly,faillissementen/sectors"`
}

// BatchOutput maps each requested name to its raw JSON document
type BatchOutput struct {
	Datasets map[string]json.RawMessage `json:"datasets"`
}
