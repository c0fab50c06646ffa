package token

import (
	"context"
	"math/big"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Multicall(ctx context.Context, chain uint64, calls []ethereum.Call) ([]ethereum.Result, error)
	NativeBalance(ctx context.Context, chain uint64, account common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name Decrypter . Decrypter
type Decrypter interface {
	Dispatch(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address)
}

//counterfeiter:generate -o fake -fake-name Catalog . Catalog
type Catalog interface {
	Load(ctx context.Context, chain uint64) ([]Pair, error)
}
