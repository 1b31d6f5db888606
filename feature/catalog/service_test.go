package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"furnishing-helper/core/cache"
	"furnishing-helper/core/reconcile"
	"furnishing-helper/core/storage"
	"furnishing-helper/core/storage/mocks"
	"furnishing-helper/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const documentJSON = `{
  "characters": ["Amber", "Kaeya", "Lisa", "Noelle"],
  "materials": ["Wood", "Fabric"],
  "furnishings": ["Lamp", "Bench"],
  "gift_sets": [
    {"name": "Lamp Set", "type": "Outdoor Gift Set", "characters": ["Amber", "Kaeya", "Noelle"],
     "materials": [{"name": "Lamp", "recipe": [{"name": "Wood", "quantity": 2}], "amount": 3}]},
    {"name": "Broken Set", "characters": [], "materials": []}
  ]
}`

var storageCfg = storage.Config{Bucket: "furnishings", CatalogObject: "gamedata/Catalog.json"}

func newDocumentClient(doc string) *mocks.Client {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "furnishings", "gamedata/Catalog.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(doc))), nil)
	return client
}

func TestService_Snapshot_Cached(t *testing.T) {
	store := newSeededStore(t)
	loader := cache.NewLoader(cache.NewMemory(), time.Minute)
	svc := NewService(store, nil, storageCfg, loader, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, first.Characters, 3)

	require.NoError(t, store.Insert(ctx, []models.Entry{{Kind: models.KindCharacter, Name: "Noelle"}}))

	cached, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, cached.Characters, 3, "snapshot should be served from cache")

	// FindSets bypasses the cache.
	sets, err := svc.FindSets(ctx, []string{"Lamp Set"})
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestService_Sync(t *testing.T) {
	t.Run("DryRun", func(t *testing.T) {
		store := newSeededStore(t)
		svc := NewService(store, newDocumentClient(documentJSON), storageCfg, nil, zap.NewNop())

		report, err := svc.Sync(context.Background(), reconcile.Options{DoSync: true, DoPurge: true, DryRun: true, Confirmed: true})
		require.NoError(t, err)

		assert.Equal(t, 0, report.Executed)
		require.Len(t, report.Invalid, 1)
		assert.Contains(t, report.Invalid[0], "Broken Set")

		assert.Equal(t, 1, report.Plan.Summary.InsertActions) // character/Noelle
		assert.Equal(t, 1, report.Plan.Summary.SyncActions)   // gift_set/Lamp Set
		assert.Equal(t, 1, report.Plan.Summary.PurgeActions)  // gift_set/Garden Set
	})

	t.Run("Apply", func(t *testing.T) {
		store := newSeededStore(t)
		loader := cache.NewLoader(cache.NewMemory(), time.Minute)
		svc := NewService(store, newDocumentClient(documentJSON), storageCfg, loader, zap.NewNop())
		ctx := context.Background()

		_, err := svc.Snapshot(ctx)
		require.NoError(t, err)

		report, err := svc.Sync(ctx, reconcile.Options{DoSync: true, DoPurge: true, Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, 3, report.Executed)

		cat, err := svc.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Amber", "Kaeya", "Lisa", "Noelle"}, cat.Characters)
		require.Len(t, cat.GiftSets, 1)
		assert.Equal(t, []string{"Amber", "Kaeya", "Noelle"}, cat.GiftSets[0].Characters)
	})

	t.Run("DocumentMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("NoSuchKey"))
		svc := NewService(newSeededStore(t), client, storageCfg, nil, zap.NewNop())

		_, err := svc.Sync(context.Background(), reconcile.Options{})
		assert.ErrorContains(t, err, "NoSuchKey")
	})
}

func TestService_Export(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "furnishings").Return(true, nil)
	client.On("PutObject", mock.Anything, "furnishings", "gamedata/Catalog.json", mock.Anything, mock.Anything,
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(newSeededStore(t), client, storageCfg, nil, zap.NewNop())
	require.NoError(t, svc.Export(context.Background()))
	client.AssertExpectations(t)

	_, err := NewService(newSeededStore(t), nil, storageCfg, nil, zap.NewNop()).LoadDocument(context.Background())
	assert.Error(t, err)
}
