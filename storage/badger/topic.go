package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// TopicRepository implements storage.TopicRepository for BadgerDB.
type TopicRepository struct {
	backend *Backend
}

var _ storage.TopicRepository = (*TopicRepository)(nil)

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(backend *Backend) *TopicRepository {
	return &TopicRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *TopicRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *TopicRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutTopics inserts or replaces topics.
// Uses content-based IDs (IDFromContent of the topic tuple) when ID=0.
func (r *TopicRepository) PutTopics(ctx context.Context, topics ...*core.Topic) ([]*core.Topic, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, topic := range topics {
			if err := core.ValidateTopic(topic); err != nil {
				return err
			}

			if topic.Id == 0 {
				topic.Id = core.IDFromContent(topic.Tuple())
			}
			if topic.InsertedAt.IsZero() {
				topic.InsertedAt = time.Now().UTC()
			}

			key := makeTopicKey(topic.Id)
			if err := tx.Set(key, storage.MarshalTopic(topic)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return topics, err
}

// GetTopic retrieves a single topic by ID.
func (r *TopicRepository) GetTopic(ctx context.Context, id core.ID) (*core.Topic, error) {
	var result *core.Topic
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readTopic(tx, makeTopicKey(id))
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

// GetTopics retrieves multiple topics by their IDs.
// Missing topics are skipped without error.
func (r *TopicRepository) GetTopics(ctx context.Context, ids ...core.ID) ([]*core.Topic, error) {
	results := make([]*core.Topic, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			topic, err := r.readTopic(tx, makeTopicKey(id))
			if err != nil {
				return err
			}
			if topic != nil {
				results = append(results, topic)
			}
		}
		return nil
	}, false)
	return results, err
}

// readTopic reads a topic by key, returning nil if not found.
func (r *TopicRepository) readTopic(tx *badger.Txn, key []byte) (*core.Topic, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var topic *core.Topic
	err = item.Value(func(val []byte) error {
		var err error
		topic, err = storage.UnmarshalTopic(val)
		return err
	})
	return topic, err
}
