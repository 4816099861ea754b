package utils_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raja-Rajeswari-Javvadi/rentify-ai-connect/utils"
)

func TestGenerateQueryCacheKey(t *testing.T) {
	a := utils.GenerateQueryCacheKey("listings", map[string]string{"min_rent": "500", "location": "hill"})
	b := utils.GenerateQueryCacheKey("listings", map[string]string{"location": "hill", "min_rent": "500"})
	c := utils.GenerateQueryCacheKey("listings", map[string]string{"location": "beach", "min_rent": "500"})

	// Key is independent of map iteration order but sensitive to values.
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "listings:")
}

func TestCacheHelpersNoopWithoutRedis(t *testing.T) {
	// RedisClient stays nil in tests; every helper must degrade to a miss.
	ctx := context.Background()

	var dest []string
	hit, err := utils.GetCached(ctx, "listings:whatever", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, utils.SetCached(ctx, "listings:whatever", []string{"x"}, time.Minute))
	assert.NoError(t, utils.InvalidatePrefix(ctx, "listings"))
}
