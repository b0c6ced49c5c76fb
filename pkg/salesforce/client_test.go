package salesforce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockClient implements Client for testing.
type mockClient struct {
	insertCollectionFn func(ctx context.Context, sObjectName string, records []map[string]any) ([]CollectionResult, error)
}

func (m *mockClient) InsertCollection(ctx context.Context, sObjectName string, records []map[string]any) ([]CollectionResult, error) {
	if m.insertCollectionFn != nil {
		return m.insertCollectionFn(ctx, sObjectName, records)
	}
	results := make([]CollectionResult, len(records))
	for i := range records {
		results[i] = CollectionResult{ID: "001" + string(rune('A'+i)), Success: true}
	}
	return results, nil
}

func TestMockClientImplementsInterface(t *testing.T) {
	t.Parallel()
	var _ Client = (*mockClient)(nil)
}

func TestNewClientReturnsClient(t *testing.T) {
	t.Parallel()
	var _ Client = (*sfClient)(nil)

	c := NewClient(nil)
	require.NotNil(t, c)

	// No limiter by default.
	assert.Nil(t, c.(*sfClient).limiter)
}

func TestWithRateLimit(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, WithRateLimit(5))
	limiter := c.(*sfClient).limiter
	require.NotNil(t, limiter)
	assert.Equal(t, rate.Limit(5), limiter.Limit())
	assert.Equal(t, 5, limiter.Burst())
}

func TestWithRateLimit_ZeroKeepsNoLimiter(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, WithRateLimit(0))
	assert.Nil(t, c.(*sfClient).limiter)
}

func TestMaxBatchSizeMatchesCollectionsLimit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 200, maxBatchSize)
}
