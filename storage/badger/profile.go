package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/matchwire/core"
	"github.com/poiesic/matchwire/storage"
)

// ProfileRepository implements storage.ProfileRepository for BadgerDB.
type ProfileRepository struct {
	backend *Backend
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(backend *Backend) *ProfileRepository {
	return &ProfileRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *ProfileRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ProfileRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutProfiles inserts or replaces profiles keyed by their ID.
func (r *ProfileRepository) PutProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, profile := range profiles {
			if err := core.ValidateProfile(profile); err != nil {
				return err
			}

			if profile.Id == 0 {
				profile.Id = core.IDFromContent(fmt.Sprintf("(%d,%s)", profile.Role, profile.Name))
			}

			now := time.Now().UTC()
			if profile.InsertedAt.IsZero() {
				profile.InsertedAt = now
			}
			profile.UpdatedAt = now

			key := makeProfileKey(profile.Id)

			// Read old record to keep the role index consistent
			old, err := r.readProfile(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				profile.InsertedAt = old.InsertedAt
				if old.Eligible && (!profile.Eligible || old.Role != profile.Role) {
					if err := tx.Delete(makeProfileRoleKey(old.Role, old.Id)); err != nil {
						return err
					}
				}
			}

			value := storage.MarshalProfile(profile)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Eligible profiles are listed through the role index
			if profile.Eligible {
				roleKey := makeProfileRoleKey(profile.Role, profile.Id)
				if err := tx.Set(roleKey, storage.MarshalID(profile.Id)); err != nil {
					return err
				}
			}

			// Owner index
			if profile.UserId != 0 {
				userKey := makeProfileUserKey(profile.UserId, profile.Role)
				if err := tx.Set(userKey, storage.MarshalID(profile.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return profiles, err
}

// GetProfile retrieves a single profile by ID.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readProfile(tx, makeProfileKey(id))
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

// GetProfiles retrieves multiple profiles by their IDs.
// Missing profiles are skipped without error.
func (r *ProfileRepository) GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error) {
	results := make([]*core.Profile, 0, len(ids))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			profile, err := r.readProfile(tx, makeProfileKey(id))
			if err != nil {
				return err
			}
			if profile != nil {
				results = append(results, profile)
			}
		}
		return nil
	}, false)
	return results, err
}

// GetProfileByUser retrieves the profile owned by a user with the given role.
func (r *ProfileRepository) GetProfileByUser(ctx context.Context, userId core.ID, role core.Role) (*core.Profile, error) {
	var result *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileUserKey(userId, role))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var profileId core.ID
		err = item.Value(func(val []byte) error {
			var err error
			profileId, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = r.readProfile(tx, makeProfileKey(profileId))
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

// ListEligibleCandidates retrieves all eligible profiles of the given role,
// ordered by ID ascending. Ordering follows from the BigEndian index keys.
func (r *ProfileRepository) ListEligibleCandidates(ctx context.Context, role core.Role) ([]*core.Profile, error) {
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialProfileRoleKey(role)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var profileId core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				profileId, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			profile, err := r.readProfile(tx, makeProfileKey(profileId))
			if err != nil {
				return err
			}
			// Index may briefly outlive the record; skip dangling entries
			if profile == nil || !profile.Eligible {
				continue
			}
			results = append(results, profile)
		}
		return nil
	}, false)
	return results, err
}

// ListProfiles retrieves every stored profile, ordered by key.
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]*core.Profile, error) {
	var results []*core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profilePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var profile *core.Profile
			err := iter.Item().Value(func(val []byte) error {
				var err error
				profile, err = storage.UnmarshalProfile(val)
				return err
			})
			if err != nil {
				return err
			}
			if profile != nil {
				results = append(results, profile)
			}
		}
		return nil
	}, false)
	return results, err
}

// readProfile reads a profile by key, returning nil if not found.
func (r *ProfileRepository) readProfile(tx *badger.Txn, key []byte) (*core.Profile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var profile *core.Profile
	err = item.Value(func(val []byte) error {
		var err error
		profile, err = storage.UnmarshalProfile(val)
		return err
	})
	return profile, err
}
