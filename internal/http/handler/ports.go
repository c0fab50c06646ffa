package handler

import (
	"context"
	"net/http"
	"redactsync/internal/core"
	"redactsync/internal/decrypt"
	"redactsync/internal/events"
	"redactsync/internal/fhe"
	"redactsync/internal/token"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SyncService . SyncService
type SyncService interface {
	Session() core.Session
	SetSession(s core.Session) bool
	Snapshot(chain uint64, account common.Address) core.AccountSnapshot
	RequestDecrypt(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address) (decrypt.Result, bool)
	SearchArbitrary(ctx context.Context, chain uint64, account common.Address, address common.Address) (token.PairWithBalances, error)
	AddArbitrary(chain uint64, account common.Address, found token.PairWithBalances)
	RemoveArbitrary(chain uint64, address common.Address)
}

//counterfeiter:generate -o fake -fake-name NoticeHandler . NoticeHandler
type NoticeHandler interface {
	Handle(ctx context.Context, n events.Notice) error
}

//counterfeiter:generate -o fake -fake-name PermitStore . PermitStore
type PermitStore interface {
	SetPermit(account common.Address, permit string)
	RemovePermit(account common.Address)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
