package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// ImpressionRepository implements storage.ImpressionRepository for BadgerDB.
type ImpressionRepository struct {
	backend *Backend
}

var _ storage.ImpressionRepository = (*ImpressionRepository)(nil)

// NewImpressionRepository creates a new ImpressionRepository.
func NewImpressionRepository(backend *Backend) *ImpressionRepository {
	return &ImpressionRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *ImpressionRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ImpressionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddImpressions stores surfaced-match records keyed by core.ImpressionKey.
func (r *ImpressionRepository) AddImpressions(ctx context.Context, impressions ...*core.MatchImpression) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, impression := range impressions {
			if err := core.ValidateMatchKind(impression.Kind); err != nil {
				return err
			}

			impression.Id = core.ImpressionKey(impression.RequesterId, impression.CandidateId, impression.Kind)
			if impression.ShownAt.IsZero() {
				impression.ShownAt = time.Now().UTC()
			}

			key := makeImpressionKey(impression.Id)
			if err := tx.Set(key, storage.MarshalImpression(impression)); err != nil {
				return err
			}

			reqKey := makeImpressionReqKey(impression.RequesterId, impression.Id)
			if err := tx.Set(reqKey, storage.MarshalID(impression.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// AllImpressions retrieves every stored impression record.
func (r *ImpressionRepository) AllImpressions(ctx context.Context) ([]*core.MatchImpression, error) {
	var results []*core.MatchImpression
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(impressionPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var impression *core.MatchImpression
			err := iter.Item().Value(func(val []byte) error {
				var err error
				impression, err = storage.UnmarshalImpression(val)
				return err
			})
			if err != nil {
				return err
			}
			if impression != nil {
				results = append(results, impression)
			}
		}
		return nil
	}, false)
	return results, err
}

// ImpressionsForRequester retrieves impressions surfaced to a requester profile.
func (r *ImpressionRepository) ImpressionsForRequester(ctx context.Context, requesterId core.ID) ([]*core.MatchImpression, error) {
	var results []*core.MatchImpression
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialImpressionReqKey(requesterId)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var impressionId core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				impressionId, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			item, err := tx.Get(makeImpressionKey(impressionId))
			if err != nil {
				if err == badger.ErrKeyNotFound {
					continue
				}
				return err
			}
			var impression *core.MatchImpression
			err = item.Value(func(val []byte) error {
				var err error
				impression, err = storage.UnmarshalImpression(val)
				return err
			})
			if err != nil {
				return err
			}
			if impression != nil {
				results = append(results, impression)
			}
		}
		return nil
	}, false)
	return results, err
}
