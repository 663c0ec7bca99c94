package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	apperrors "pc-build-tracker-backend/internal/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		maxBytes    int64
		wantErr     error
	}{
		{name: "png accepted", data: []byte("png"), contentType: "image/png", maxBytes: 10},
		{name: "gif rejected", data: []byte("gif"), contentType: "image/gif", maxBytes: 10, wantErr: apperrors.ErrUnsupportedImage},
		{name: "too large", data: bytes.Repeat([]byte("a"), 11), contentType: "image/jpeg", maxBytes: 10, wantErr: apperrors.ErrImageTooLarge},
		{name: "default limit", data: []byte("webp"), contentType: "image/webp", maxBytes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.data, tt.contentType, tt.maxBytes)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("empty data", func(t *testing.T) {
		assert.True(t, apperrors.IsValidation(ValidateImage(nil, "image/png", 10)))
	})
}

func TestMemoryImageStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryImageStore(1024)

	ref, err := store.StoreImage(ctx, []byte("image-bytes"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "builds/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	img, ok := store.Get(ref)
	require.True(t, ok)
	assert.Equal(t, []byte("image-bytes"), img.Data)
	assert.Equal(t, "image/png", img.ContentType)

	other, err := store.StoreImage(ctx, []byte("image-bytes"), "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
	assert.Equal(t, 2, store.Len())

	require.NoError(t, store.ReleaseImage(ctx, ref))
	_, ok = store.Get(ref)
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())

	assert.NoError(t, store.ReleaseImage(ctx, "unknown"))

	_, err = store.StoreImage(ctx, []byte("x"), "text/plain")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedImage)
}

type fakeS3 struct {
	s3iface.S3API
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3ImageStore(t *testing.T) {
	ctx := context.Background()

	t.Run("store and release", func(t *testing.T) {
		client := &fakeS3{}
		store := NewS3ImageStoreWithClient(client, "build-images", 1024)

		ref, err := store.StoreImage(ctx, []byte("jpeg-bytes"), "image/jpeg")
		require.NoError(t, err)
		require.Len(t, client.puts, 1)
		assert.Equal(t, "build-images", aws.StringValue(client.puts[0].Bucket))
		assert.Equal(t, ref, aws.StringValue(client.puts[0].Key))
		assert.Equal(t, "image/jpeg", aws.StringValue(client.puts[0].ContentType))
		body, err := io.ReadAll(client.puts[0].Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), body)

		require.NoError(t, store.ReleaseImage(ctx, ref))
		require.Len(t, client.deletes, 1)
		assert.Equal(t, ref, aws.StringValue(client.deletes[0].Key))
	})

	t.Run("empty reference is a no-op", func(t *testing.T) {
		client := &fakeS3{}
		store := NewS3ImageStoreWithClient(client, "build-images", 1024)
		require.NoError(t, store.ReleaseImage(ctx, ""))
		assert.Empty(t, client.deletes)
	})

	t.Run("validation happens before upload", func(t *testing.T) {
		client := &fakeS3{}
		store := NewS3ImageStoreWithClient(client, "build-images", 4)
		_, err := store.StoreImage(ctx, []byte("too-big"), "image/png")
		assert.ErrorIs(t, err, apperrors.ErrImageTooLarge)
		assert.Empty(t, client.puts)
	})

	t.Run("upload failure", func(t *testing.T) {
		client := &fakeS3{err: errors.New("boom")}
		store := NewS3ImageStoreWithClient(client, "build-images", 1024)
		_, err := store.StoreImage(ctx, []byte("png"), "image/png")
		assert.Error(t, err)
	})

	t.Run("bucket required", func(t *testing.T) {
		_, err := NewS3ImageStore(S3Config{})
		assert.Error(t, err)
	})
}

func TestNewImageStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := NewImageStore(KindMemory, S3Config{MaxBytes: 10})
		require.NoError(t, err)
		assert.IsType(t, &MemoryImageStore{}, store)
	})

	t.Run("s3", func(t *testing.T) {
		store, err := NewImageStore(KindS3, S3Config{
			Bucket:          "build-images",
			Region:          "us-east-1",
			Endpoint:        "http://localhost:9000",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
		})
		require.NoError(t, err)
		assert.IsType(t, &S3ImageStore{}, store)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		_, err := NewImageStore(KindS3, S3Config{Region: "us-east-1"})
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewImageStore("ftp", S3Config{})
		assert.Error(t, err)
	})
}
