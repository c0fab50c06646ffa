package events

import (
	"errors"
	"redactsync/internal/core"
)

var (
	ErrUnknownStatus = errors.New("unknown transaction status")
	ErrMissingTxHash = errors.New("submitted transaction has no hash")
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Notice is a transaction lifecycle update published by the wallet host.
// Only confirmed notices touch the caches; submitted and failed ones hold
// and release the balance gate.
type Notice struct {
	Status Status `json:"status"`
	core.Confirmation
}
