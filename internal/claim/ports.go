package claim

import (
	"context"
	"redactsync/internal/ethereum"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Multicall(ctx context.Context, chain uint64, calls []ethereum.Call) ([]ethereum.Result, error)
}
