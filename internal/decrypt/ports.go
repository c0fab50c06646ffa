package decrypt

import (
	"context"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Oracle . Oracle
type Oracle interface {
	Ready(account common.Address) bool
	Unseal(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address) (fhe.Plaintext, error)
}
