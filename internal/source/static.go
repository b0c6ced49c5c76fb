package source

import (
	"context"

	"github.com/euprime/leadscout/internal/catalog"
	"github.com/euprime/leadscout/internal/model"
)

// Static serves the built-in lead catalog. The query is ignored; the
// catalog is small and the pipeline's filters handle narrowing.
type Static struct{}

// NewStatic returns the catalog-backed source.
func NewStatic() Static {
	return Static{}
}

func (Static) Name() string {
	return "catalog"
}

func (Static) Fetch(_ context.Context, _ string, limit int) ([]model.Lead, error) {
	leads := catalog.All()
	if limit > 0 && len(leads) > limit {
		leads = leads[:limit]
	}
	return leads, nil
}
