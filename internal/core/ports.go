package core

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Snapshots . Snapshots
type Snapshots interface {
	Save(ctx context.Context, key string, v any) error
	Load(ctx context.Context, key string, v any) (bool, error)
}
