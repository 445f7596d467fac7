package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jathow/careertrack/internal/entities"
)

const templatesCacheKey = "templates"

type templateSource interface {
	ListResumeTemplates(ctx context.Context) ([]entities.ResumeTemplate, error)
}

// CachedTemplates caches the resume template catalog, which changes rarely
// and is requested on every visit to the resume builder.
type CachedTemplates struct {
	source templateSource
	cache  *gocache.Cache
}

func NewCachedTemplates(source templateSource) *CachedTemplates {
	return &CachedTemplates{source: source, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedTemplates) ListResumeTemplates(ctx context.Context) ([]entities.ResumeTemplate, error) {

	if value, found := c.cache.Get(templatesCacheKey); found {
		return value.([]entities.ResumeTemplate), nil
	}

	templates, err := c.source.ListResumeTemplates(ctx)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Add(templatesCacheKey, templates, gocache.DefaultExpiration); err != nil {
		return templates, err
	}
	return templates, nil
}
