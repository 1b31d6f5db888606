package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"furnishing-helper/core/storage"
	"furnishing-helper/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "furnishings",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		for _, endpoint := range []string{"http://localhost:9000", "https://s3.amazonaws.com"} {
			client, err := storage.NewClient(storage.Config{Endpoint: endpoint, AccessKey: "k", SecretKey: "s"})
			assert.NoError(t, err, endpoint)
			assert.NotNil(t, client, endpoint)
		}
	})
}

func TestReadObject(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "b", "gamedata/Catalog.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`{"characters":[]}`))), nil)
	mockClient.On("GetObject", mock.Anything, "b", "missing.json", mock.Anything).
		Return(nil, errors.New("NoSuchKey"))

	data, err := storage.ReadObject(context.Background(), mockClient, "b", "gamedata/Catalog.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"characters":[]}`, string(data))

	_, err = storage.ReadObject(context.Background(), mockClient, "b", "missing.json")
	assert.ErrorContains(t, err, "NoSuchKey")
}

func TestWriteObject_CreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "b").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "b", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "b", "gamedata/Catalog.json", mock.Anything, int64(2), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := storage.WriteObject(context.Background(), mockClient, "b", "gamedata/Catalog.json", []byte("{}"), "application/json")
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestObjectExists(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "b", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			if opts.Prefix == "gamedata/Catalog.json" {
				ch <- minio.ObjectInfo{Key: "gamedata/Catalog.json"}
			}
			close(ch)
			return ch
		})

	found, err := storage.ObjectExists(context.Background(), mockClient, "b", "gamedata/Catalog.json")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = storage.ObjectExists(context.Background(), mockClient, "b", "gamedata/Other.json")
	require.NoError(t, err)
	assert.False(t, found)
}
