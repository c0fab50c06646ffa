package scheduler

import (
	"context"
	"redactsync/internal/claim"
	"redactsync/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Syncer . Syncer
type Syncer interface {
	Session() core.Session
	RefreshPairs(ctx context.Context) error
	ConfidentialPairs() int
	RefreshBalances(ctx context.Context) error
	FetchClaims(ctx context.Context) error
	RefreshPendingClaims(ctx context.Context) (int, error)
	HasPendingClaims() bool
	OnPendingClaim(fn func()) func()
	ValidateClaims(ctx context.Context) (claim.PruneReport, error)
	Flush(ctx context.Context) (bool, error)
}
