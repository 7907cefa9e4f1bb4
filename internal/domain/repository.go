package domain

import (
	"context"
	"time"
)

// FDCClient defines the interface for the USDA FoodData Central API.
type FDCClient interface {
	SearchFoods(ctx context.Context, query string, pageSize, pageNumber int) (*FDCSearchResponse, error)
	GetFood(ctx context.Context, fdcID string) (*FDCFood, error)
}

// ProfileStore defines opaque key-value storage for user profile blobs.
type ProfileStore interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
