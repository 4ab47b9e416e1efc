package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// EmbeddingRepository implements storage.EmbeddingRepository for BadgerDB.
type EmbeddingRepository struct {
	backend *Backend
}

var _ storage.EmbeddingRepository = (*EmbeddingRepository)(nil)

// NewEmbeddingRepository creates a new EmbeddingRepository.
func NewEmbeddingRepository(backend *Backend) *EmbeddingRepository {
	return &EmbeddingRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *EmbeddingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EmbeddingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutEmbedding inserts or replaces the embedding for a profile.
func (r *EmbeddingRepository) PutEmbedding(ctx context.Context, embedding *core.ProfileEmbedding) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if embedding.GeneratedAt.IsZero() {
			embedding.GeneratedAt = time.Now().UTC()
		}

		key := makeEmbeddingKey(embedding.ProfileId)
		if err := tx.Set(key, storage.MarshalEmbedding(embedding)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetEmbedding retrieves the embedding for a profile if its model version
// matches. A stale version reads the same as an absent embedding: similarity
// consumers must skip the profile either way.
func (r *EmbeddingRepository) GetEmbedding(ctx context.Context, profileId core.ID, modelVersion string) (*core.ProfileEmbedding, error) {
	var result *core.ProfileEmbedding
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(profileId))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		err = item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalEmbedding(val)
			return err
		})
		if err != nil {
			return err
		}

		if result.ModelVersion != modelVersion {
			result = nil
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}
