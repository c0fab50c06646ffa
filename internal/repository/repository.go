package repository

import (
	"context"
	"errors"
	"fmt"
	"redactsync/internal/db"
	"redactsync/internal/storage"
	"time"
)

var TimeNow = time.Now

// KVRepository stores snapshots in the kv_entries table so several
// instances can share one state.
type KVRepository struct {
	db Storage
}

func NewKVRepository(db Storage) *KVRepository {
	return &KVRepository{
		db: db,
	}
}

func (r *KVRepository) Migrate() error {
	err := r.db.MigrateTable(&KVEntry{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry

	err := r.db.GetOneBy(ctx, "key", key, &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get entry %q: %w", key, err)
	}

	return entry.Value, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	entry := &KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: TimeNow().UTC(),
	}

	err := r.db.Upsert(ctx, entry, "key")
	if err != nil {
		return fmt.Errorf("put entry %q: %w", key, err)
	}

	return nil
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	err := r.db.DeleteBy(ctx, "key", key, &KVEntry{})
	if err != nil {
		return fmt.Errorf("delete entry %q: %w", key, err)
	}

	return nil
}

func (r *KVRepository) Close() error {
	return r.db.Close()
}
