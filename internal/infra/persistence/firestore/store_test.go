package firestore

import (
	"testing"

	"petcare/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToUpdate(t *testing.T) {
	tests := []struct {
		name   string
		update repository.FieldUpdate
		want   firestore.Update
	}{
		{
			name:   "set",
			update: repository.Set("name", "Luna"),
			want:   firestore.Update{Path: "name", Value: "Luna"},
		},
		{
			name:   "delete uses the field sentinel",
			update: repository.DeleteField("performedAt"),
			want:   firestore.Update{Path: "performedAt", Value: firestore.Delete},
		},
		{
			name:   "array union",
			update: repository.ArrayUnion("gallery", "u1", "u2"),
			want:   firestore.Update{Path: "gallery", Value: firestore.ArrayUnion("u1", "u2")},
		},
		{
			name:   "array remove",
			update: repository.ArrayRemove("gallery", "u1"),
			want:   firestore.Update{Path: "gallery", Value: firestore.ArrayRemove("u1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toUpdate(tt.update))
		})
	}
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(status.Error(codes.NotFound, "no doc"), "update pets/x"), repository.ErrDocumentNotFound)
	assert.ErrorIs(t, mapError(status.Error(codes.Unavailable, "offline"), "create pets"), repository.ErrStoreUnavailable)

	err := mapError(status.Error(codes.PermissionDenied, "denied"), "create pets")
	assert.NotErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "denied")
}
