// Package source defines where leads come from: the built-in catalog, live
// PubMed author searches, and user-supplied lead files. Sources produce raw
// leads; scoring and filtering happen downstream in the pipeline.
package source

import (
	"context"

	"github.com/euprime/leadscout/internal/model"
)

// Source produces candidate leads for a run. A limit <= 0 means no limit.
// Best-effort sources may return zero leads instead of an error when their
// upstream is unavailable.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]model.Lead, error)
}
