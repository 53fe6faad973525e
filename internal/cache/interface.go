package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	ProductKeyPrefix = "product"
	CategoriesKey    = "categories:all"
	ActiveSlidesKey  = "slides:active"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}
