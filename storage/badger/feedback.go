package badger

import (
	"context"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// FeedbackRepository implements storage.FeedbackRepository for BadgerDB.
//
// The ledger is append/upsert only. Records are keyed by the deterministic
// core.FeedbackKey, so a second submission for the same (user, pair) lands on
// the same key inside one transaction and the store converges to a single
// record without any engine-side locking.
type FeedbackRepository struct {
	backend *Backend
}

var _ storage.FeedbackRepository = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(backend *Backend) *FeedbackRepository {
	return &FeedbackRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *FeedbackRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *FeedbackRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// UpsertFeedback stores feedback keyed by core.FeedbackKey.
func (r *FeedbackRepository) UpsertFeedback(ctx context.Context, feedback *core.MatchFeedback) (*core.MatchFeedback, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := core.ValidateFeedback(feedback); err != nil {
			return err
		}

		feedback.Id = core.FeedbackKey(feedback.UserId, feedback.RequesterId, feedback.CandidateId)
		key := makeFeedbackKey(feedback.Id)

		now := time.Now().UTC()
		feedback.UpdatedAt = now

		old, err := r.readFeedback(tx, key)
		if err != nil {
			return err
		}
		if old != nil {
			// Overwrite the opinion, preserve the first submission time
			feedback.InsertedAt = old.InsertedAt
		} else {
			feedback.InsertedAt = now
		}

		if err := tx.Set(key, storage.MarshalFeedback(feedback)); err != nil {
			return err
		}

		// Index keys are derived from the same deterministic ID, so an
		// overwrite leaves exactly one entry per index as well.
		userKey := makeFeedbackUserKey(feedback.UserId, feedback.Id)
		if err := tx.Set(userKey, storage.MarshalID(feedback.Id)); err != nil {
			return err
		}
		pairKey := makeFeedbackPairKey(feedback.RequesterId, feedback.CandidateId, feedback.Id)
		if err := tx.Set(pairKey, storage.MarshalID(feedback.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// GetFeedback retrieves a single feedback record by ID.
func (r *FeedbackRepository) GetFeedback(ctx context.Context, id core.ID) (*core.MatchFeedback, error) {
	var result *core.MatchFeedback
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readFeedback(tx, makeFeedbackKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetFeedbackByUser retrieves all feedback submitted by a user, newest first.
func (r *FeedbackRepository) GetFeedbackByUser(ctx context.Context, userId core.ID) ([]*core.MatchFeedback, error) {
	results, err := r.collectByIndex(makePartialFeedbackUserKey(userId))
	if err != nil {
		return nil, err
	}
	sortNewestFirst(results)
	return results, nil
}

// GetFeedbackForPair retrieves all feedback for a specific match pair, newest first.
func (r *FeedbackRepository) GetFeedbackForPair(ctx context.Context, requesterId, candidateId core.ID) ([]*core.MatchFeedback, error) {
	results, err := r.collectByIndex(makePartialFeedbackPairKey(requesterId, candidateId))
	if err != nil {
		return nil, err
	}
	sortNewestFirst(results)
	return results, nil
}

// AllFeedback retrieves every stored feedback record.
func (r *FeedbackRepository) AllFeedback(ctx context.Context) ([]*core.MatchFeedback, error) {
	var results []*core.MatchFeedback
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(feedbackPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var feedback *core.MatchFeedback
			err := iter.Item().Value(func(val []byte) error {
				var err error
				feedback, err = storage.UnmarshalFeedback(val)
				return err
			})
			if err != nil {
				return err
			}
			if feedback != nil {
				results = append(results, feedback)
			}
		}
		return nil
	}, false)
	return results, err
}

// collectByIndex resolves feedback records through an index prefix scan.
func (r *FeedbackRepository) collectByIndex(prefix []byte) ([]*core.MatchFeedback, error) {
	var results []*core.MatchFeedback
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var feedbackId core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				feedbackId, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			feedback, err := r.readFeedback(tx, makeFeedbackKey(feedbackId))
			if err != nil {
				return err
			}
			if feedback != nil {
				results = append(results, feedback)
			}
		}
		return nil
	}, false)
	return results, err
}

// readFeedback reads a feedback record by key, returning nil if not found.
func (r *FeedbackRepository) readFeedback(tx *badger.Txn, key []byte) (*core.MatchFeedback, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var feedback *core.MatchFeedback
	err = item.Value(func(val []byte) error {
		var err error
		feedback, err = storage.UnmarshalFeedback(val)
		return err
	})
	return feedback, err
}

func sortNewestFirst(records []*core.MatchFeedback) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
}
