// Package fetcher downloads and parses lead feed files: rate-limited HTTP
// downloads plus streaming CSV and XLSX readers.
package fetcher

import (
	"context"
	"io"
)

// Fetcher downloads remote feed data.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
