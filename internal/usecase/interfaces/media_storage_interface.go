package interfaces

import "context"

// IMediaStorage stores mechanic logos in object storage.
//
// Put returns the object key; URL resolves a key to a short-lived download URL.
type IMediaStorage interface {
	Put(ctx context.Context, ownerEmail string, media MediaUpload) (string, error)
	URL(ctx context.Context, key string) (string, error)
}
