package s3

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/npzgo/blobstore"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_Open(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("HeadObject", mock.Anything, mock.Anything).Return(nil, &types.NotFound{})

		store := NewStore(client, "bucket", "matrices")

		_, err := store.Open(context.Background(), "missing.npz")
		require.ErrorIs(t, err, blobstore.ErrNotFound)
		client.AssertExpectations(t)
	})

	t.Run("ranged reads", func(t *testing.T) {
		payload := []byte("hello, npz")

		client := new(MockS3Client)
		client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
			return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.Key) == "matrices/a.npz"
		})).Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(int64(len(payload))),
		}, nil)
		client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Range) == "bytes=7-9"
		})).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(bytes.NewReader(payload[7:])),
		}, nil)

		store := NewStore(client, "bucket", "matrices")

		blob, err := store.Open(context.Background(), "a.npz")
		require.NoError(t, err)
		defer blob.Close()

		require.Equal(t, int64(len(payload)), blob.Size())

		p := make([]byte, 3)
		n, err := blob.ReadAt(context.Background(), p, 7)
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, []byte("npz"), p)
		client.AssertExpectations(t)
	})

	t.Run("read past end", func(t *testing.T) {
		client := new(MockS3Client)
		client.On("HeadObject", mock.Anything, mock.Anything).Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(4),
		}, nil)

		store := NewStore(client, "bucket", "")

		blob, err := store.Open(context.Background(), "a.npz")
		require.NoError(t, err)

		_, err = blob.ReadAt(context.Background(), make([]byte, 1), 4)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestStore_Put(t *testing.T) {
	client := new(MockS3Client)
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		data, err := io.ReadAll(in.Body)
		return err == nil && string(data) == "payload" && aws.ToString(in.Key) == "matrices/a.npz"
	})).Return(&s3.PutObjectOutput{}, nil)

	store := NewStore(client, "bucket", "matrices")

	err := store.Put(context.Background(), "a.npz", []byte("payload"))
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestStore_Delete(t *testing.T) {
	client := new(MockS3Client)
	client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "matrices/a.npz"
	})).Return(&s3.DeleteObjectOutput{}, nil)

	store := NewStore(client, "bucket", "matrices")

	err := store.Delete(context.Background(), "a.npz")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestStore_List(t *testing.T) {
	client := new(MockS3Client)
	client.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.Prefix) == "matrices"
	})).Return(&s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("matrices/b.npz")},
			{Key: aws.String("matrices/a.npz")},
		},
	}, nil)

	store := NewStore(client, "bucket", "matrices")

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"a.npz", "b.npz"}, names)
	client.AssertExpectations(t)
}
