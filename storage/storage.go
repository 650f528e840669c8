package storage

import "context"

// ImageStore persists uploaded profile images and hands back the public
// path stored on the employee record. The binary never lands in the store
// that owns the records.
type ImageStore interface {
	// Save writes the image under a uniquely-named key derived from
	// filename's extension and returns the path clients can fetch it from.
	Save(ctx context.Context, filename string, data []byte) (string, error)
	// Delete removes a previously saved image by its public path.
	Delete(ctx context.Context, publicPath string) error
}
