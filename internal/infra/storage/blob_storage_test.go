package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const baseURL = "https://firebasestorage.googleapis.com/v0/b/petcare.appspot.com/o"

func newTestStorage(t *testing.T) *BlobStorage {
	t.Helper()

	s := New(memblob.OpenBucket(nil), baseURL+"/")
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestBlobStorage_UploadReturnsEscapedURL(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.Upload(context.Background(), "pets/u1/p1/gallery/1700000000000-luna.jpg", bytes.NewReader([]byte("img")), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, baseURL+"/pets%2Fu1%2Fp1%2Fgallery%2F1700000000000-luna.jpg?alt=media", got)
}

func TestBlobStorage_DeleteByURL(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	key := "pets/u1/p1/gallery/1-a b.png"

	u, err := s.Upload(ctx, key, bytes.NewReader([]byte("x")), "")
	require.NoError(t, err)

	require.NoError(t, s.DeleteByURL(ctx, u))

	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is not an error.
	assert.NoError(t, s.DeleteByURL(ctx, u))
}

func TestBlobStorage_KeyFromURL(t *testing.T) {
	s := newTestStorage(t)

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "download url", url: baseURL + "/a%2Fb.jpg?alt=media&token=x", want: "a/b.jpg"},
		{name: "no query", url: baseURL + "/a.jpg", want: "a.jpg"},
		{name: "other host", url: "https://example.com/a.jpg", wantErr: true},
		{name: "empty key", url: baseURL + "/?alt=media", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.KeyFromURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrForeignURL)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
