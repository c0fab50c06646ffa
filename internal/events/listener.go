package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	DefaultSubject = "redactsync.transactions"

	handleTimeout  = 30 * time.Second
	connectTimeout = 10 * time.Second
	reconnectWait  = 5 * time.Second
)

// Listener applies transaction notices to the engine. Notices arrive from a
// NATS subject or through Handle directly.
type Listener struct {
	logs   *zap.SugaredLogger
	engine Engine
	gate   Gate
	subs   []*nats.Subscription
}

func NewListener(logger *zap.SugaredLogger, engine Engine, gate Gate) *Listener {
	return &Listener{
		logs:   logger,
		engine: engine,
		gate:   gate,
	}
}

// Connect dials NATS and keeps reconnecting for as long as the process runs.
func Connect(logger *zap.SugaredLogger, url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("redactsync"),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Errorw("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Infow("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return conn, nil
}

func (l *Listener) Handle(ctx context.Context, n Notice) error {
	switch n.Status {
	case StatusSubmitted:
		if n.TxHash == "" {
			return ErrMissingTxHash
		}
		l.gate.Hold(n.TxHash)
		l.logs.Debugw("awaiting confirmation", "tx", n.TxHash, "kind", n.Kind)
		return nil
	case StatusFailed:
		if n.TxHash != "" {
			l.gate.Release(n.TxHash)
		}
		l.logs.Infow("transaction failed", "tx", n.TxHash, "kind", n.Kind)
		return nil
	case StatusConfirmed:
		if n.TxHash != "" {
			l.gate.Release(n.TxHash)
		}
		if err := l.engine.OnTransactionConfirmed(ctx, n.Confirmation); err != nil {
			return fmt.Errorf("apply confirmation: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownStatus, n.Status)
}

// Subscribe starts consuming notices from subject. Handler errors are logged,
// the subscription stays up.
func (l *Listener) Subscribe(ctx context.Context, conn Conn, subject string) error {
	if subject == "" {
		subject = DefaultSubject
	}

	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		l.onMessage(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	if sub != nil {
		l.subs = append(l.subs, sub)
	}

	l.logs.Infow("listening for transaction notices", "subject", subject)
	return nil
}

func (l *Listener) onMessage(ctx context.Context, msg *nats.Msg) {
	var n Notice
	if err := json.Unmarshal(msg.Data, &n); err != nil {
		l.logs.Errorw("failed to decode transaction notice", "error", err, "subject", msg.Subject)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	if err := l.Handle(ctx, n); err != nil {
		l.logs.Errorw("failed to handle transaction notice",
			"error", err,
			"status", n.Status,
			"kind", n.Kind,
			"tx", n.TxHash,
		)
	}
}

func (l *Listener) Close() error {
	var errs error
	for _, sub := range l.subs {
		if err := sub.Unsubscribe(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("unsubscribe %s: %w", sub.Subject, err))
		}
	}
	l.subs = nil
	return errs
}
