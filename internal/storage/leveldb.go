package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var ErrNotFound = errors.New("key not found")

// LevelDB keeps snapshots in a local leveldb directory.
type LevelDB struct {
	db *leveldb.DB
}

func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %q: %w", path, err)
	}
	return &LevelDB{db: db}, nil
}

func (s *LevelDB) Get(_ context.Context, key string) ([]byte, error) {
	data, err := s.db.Get([]byte(key), &opt.ReadOptions{})
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return data, nil
}

func (s *LevelDB) Put(_ context.Context, key string, value []byte) error {
	if err := s.db.Put([]byte(key), value, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *LevelDB) Delete(_ context.Context, key string) error {
	if err := s.db.Delete([]byte(key), &opt.WriteOptions{}); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *LevelDB) Close() error {
	return s.db.Close()
}
