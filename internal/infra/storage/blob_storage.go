// Package storage stores uploaded files in a bucket and hands out download URLs.
package storage

import (
	"context"
	"io"
	"net/url"
	"strings"

	"petcare/config"
	"petcare/internal/domain/service"
	"petcare/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// ErrForeignURL is returned when a URL does not point into this bucket.
var ErrForeignURL = errors.New("url does not belong to the bucket")

// BlobStorage implements service.BlobStorage over a gocloud bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

var _ service.BlobStorage = (*BlobStorage)(nil)

// Open opens the bucket named by cfg.URL (gs://, file://, mem://).
func Open(ctx context.Context, cfg *config.BlobConfig) (*BlobStorage, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("blob bucket url is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.URL)
	}

	return New(bucket, cfg.PublicBaseURL), nil
}

// New wraps an open bucket. Download URLs are publicBaseURL followed by the
// escaped object key.
func New(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{bucket: bucket, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Upload implements service.BlobStorage.
func (s *BlobStorage) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.Upload(ctx, key, r, opts); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.DownloadURL(key), nil
}

// DeleteByURL implements service.BlobStorage. A missing object is not an error.
func (s *BlobStorage) DeleteByURL(ctx context.Context, downloadURL string) error {
	key, err := s.KeyFromURL(downloadURL)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// DownloadURL returns the public URL for key.
func (s *BlobStorage) DownloadURL(key string) string {
	return s.publicBaseURL + "/" + url.PathEscape(key) + "?alt=media"
}

// KeyFromURL recovers the object key from a download URL.
func (s *BlobStorage) KeyFromURL(downloadURL string) (string, error) {
	rest, ok := strings.CutPrefix(downloadURL, s.publicBaseURL+"/")
	if !ok {
		return "", errors.Wrap(ErrForeignURL, downloadURL)
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest = rest[:i]
	}

	key, err := url.PathUnescape(rest)
	if err != nil || key == "" {
		return "", errors.Wrap(ErrForeignURL, downloadURL)
	}

	return key, nil
}

// Exists reports whether key is stored.
func (s *BlobStorage) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)

	return ok, errors.WithStack(err)
}

// Close releases the bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
