package events

import (
	"context"
	"redactsync/internal/core"

	"github.com/nats-io/nats.go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Engine . Engine
type Engine interface {
	OnTransactionConfirmed(ctx context.Context, c core.Confirmation) error
}

//counterfeiter:generate -o fake -fake-name Gate . Gate
type Gate interface {
	Hold(id string)
	Release(id string)
}

//counterfeiter:generate -o fake -fake-name Conn . Conn
type Conn interface {
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}
