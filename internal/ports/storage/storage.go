package storage

import "context"

// ImageStore persists an uploaded image and hands back a stable public URL.
// Type and size validation happen before Save is called.
type ImageStore interface {
	Save(ctx context.Context, ext string, data []byte) (string, error)
}
