package service

import (
	"context"
	"io"
)

// BlobStorage is a path-addressed binary object store.
type BlobStorage interface {
	// Upload writes r at key and returns the object's download URL.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)

	// DeleteByURL removes the object behind a download URL previously returned by Upload.
	DeleteByURL(ctx context.Context, url string) error
}
