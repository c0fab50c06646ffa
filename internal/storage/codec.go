package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang/snappy"
)

// CodecVersion is bumped whenever a persisted layout changes incompatibly.
const CodecVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Encode wraps v in a versioned JSON envelope and snappy-compresses it.
// Big integers are written as JSON numbers so they decode back exactly.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	raw, err := json.Marshal(envelope{Version: CodecVersion, Data: data})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return snappy.Encode(nil, raw), nil
}

func Decode(encoded []byte, v any) error {
	raw, err := snappy.Decode(nil, encoded)
	if err != nil {
		return fmt.Errorf("decompress snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != CodecVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return nil
}

// Snapshots stores encoded values under fixed keys of a KV.
type Snapshots struct {
	kv KV
}

func NewSnapshots(kv KV) *Snapshots {
	return &Snapshots{kv: kv}
}

func (s *Snapshots) Save(ctx context.Context, key string, v any) error {
	encoded, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.kv.Put(ctx, key, encoded)
}

// Load decodes the value stored under key into v. It reports false when
// nothing was stored yet.
func (s *Snapshots) Load(ctx context.Context, key string, v any) (bool, error) {
	encoded, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := Decode(encoded, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *Snapshots) Close() error {
	return s.kv.Close()
}
