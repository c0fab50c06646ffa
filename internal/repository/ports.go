package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Upsert(ctx context.Context, record any, keyColumn string) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	DeleteBy(ctx context.Context, column string, value any, model any) error
	Close() error
}
