package module

import (
	"context"
	"encoding/json"

	"analyses/internal/services/api/datasets/domain"
)

// Reader is the cross-module view on dataset fetching
type Reader interface {
	Get(ctx context.Context, name string) (json.RawMessage, error)
	Batch(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error)
}

// Ports bundles the ports the datasets module exposes
type Ports struct {
	Reader Reader
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
