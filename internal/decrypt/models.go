package decrypt

import (
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

type State string

const (
	StatePending State = "pending"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Key scopes a result to an account, since unsealing is permit-bound.
type Key struct {
	Handle  fhe.Handle
	Account common.Address
}

type Result struct {
	Handle  fhe.Handle     `json:"handle"`
	Account common.Address `json:"account"`
	Type    fhe.ValueType  `json:"type"`
	Value   *fhe.Plaintext `json:"value,omitempty"`
	Error   string         `json:"error,omitempty"`
	State   State          `json:"state"`
}

func (r Result) Key() Key {
	return Key{Handle: r.Handle, Account: r.Account}
}
