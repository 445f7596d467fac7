package services

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jathow/careertrack/internal/entities"
)

type preparationSource interface {
	GetInterviewPreparation(ctx context.Context, companyName string) (entities.PreparationGuide, error)
}

// CachedPreparation memoizes per-company preparation guides: the backend
// regenerates them on every call, which is far too slow to sit behind a
// detail page.
type CachedPreparation struct {
	source preparationSource
	cache  *gocache.Cache
}

func NewCachedPreparation(source preparationSource) *CachedPreparation {
	return &CachedPreparation{source: source, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedPreparation) GetInterviewPreparation(ctx context.Context,
	companyName string) (entities.PreparationGuide, error) {

	key := strings.ToLower(strings.TrimSpace(companyName))
	if value, found := c.cache.Get(key); found {
		return value.(entities.PreparationGuide), nil
	}

	guide, err := c.source.GetInterviewPreparation(ctx, companyName)
	if err != nil {
		return entities.PreparationGuide{}, err
	}

	if err = c.cache.Add(key, guide, gocache.DefaultExpiration); err != nil {
		return guide, err
	}
	return guide, nil
}
