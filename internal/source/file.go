package source

import (
	"context"

	"github.com/euprime/leadscout/internal/catalog"
	"github.com/euprime/leadscout/internal/model"
)

// File reads leads from a user-supplied CSV or XLSX export.
type File struct {
	path string
}

// NewFile returns a source reading the given lead file.
func NewFile(path string) *File {
	return &File{path: path}
}

func (*File) Name() string {
	return "file"
}

func (f *File) Fetch(ctx context.Context, _ string, limit int) ([]model.Lead, error) {
	leads, err := catalog.LoadLeadsFile(ctx, f.path)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(leads) > limit {
		leads = leads[:limit]
	}
	return leads, nil
}
