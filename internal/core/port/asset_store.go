package port

import "context"

// AssetStore is content storage for campaign assets, keyed by
// {namespace}/{campaignID}.{kind}. Namespaces isolate deployment
// environments inside a shared bucket.
type AssetStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get returns the object bytes, or domain.ErrAssetNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error
}
