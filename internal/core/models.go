package core

import (
	"errors"
	"redactsync/internal/claim"
	"redactsync/internal/decrypt"
	"redactsync/internal/fhe"
	"redactsync/internal/token"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnknownKind   = errors.New("unknown confirmation kind")
	ErrMissingToken  = errors.New("confirmation has no token")
	ErrMissingHandle = errors.New("claim confirmation has no ctHash")
	ErrNoSession     = errors.New("no chain or account to act on")
)

// Persisted keys.
const (
	KeyClaims      = "claims"
	KeyDecryptions = "decryptions"
	KeyTokens      = "tokens"
)

// Session is the chain and account the background jobs act on.
type Session struct {
	Chain   uint64         `json:"chain"`
	Account common.Address `json:"account"`
}

func (s Session) Valid() bool {
	return s.Chain != 0 && s.Account != (common.Address{})
}

type Kind string

const (
	KindEncrypt  Kind = "encrypt"
	KindApprove  Kind = "approve"
	KindDeploy   Kind = "deploy"
	KindSend     Kind = "send"
	KindDecrypt  Kind = "decrypt"
	KindClaim    Kind = "claim"
	KindClaimAll Kind = "claim_all"
)

func (k Kind) Valid() bool {
	switch k {
	case KindEncrypt, KindApprove, KindDeploy, KindSend, KindDecrypt, KindClaim, KindClaimAll:
		return true
	}
	return false
}

// Confirmation reports a mined transaction that changed token or claim
// state. Token is the public leg of the pair. Chain and Account fall back to
// the session when empty.
type Confirmation struct {
	Kind         Kind            `json:"kind"`
	Chain        uint64          `json:"chain"`
	Account      common.Address  `json:"account"`
	Token        common.Address  `json:"token"`
	Confidential *common.Address `json:"confidential,omitempty"`
	ClaimHandle  *fhe.Handle     `json:"ctHash,omitempty"`
	TxHash       string          `json:"txHash,omitempty"`
}

type PairView struct {
	Pair              token.Pair      `json:"pair"`
	Balances          *token.Balances `json:"balances,omitempty"`
	ConfidentialState string          `json:"confidentialState"`
	Decrypted         *decrypt.Result `json:"decryptedBalance,omitempty"`
	Claims            claim.Totals    `json:"claims"`
	Arbitrary         bool            `json:"arbitrary"`
}

// AccountSnapshot is the read model served to clients.
type AccountSnapshot struct {
	Chain   uint64         `json:"chain"`
	Account common.Address `json:"account"`
	Pairs   []PairView     `json:"pairs"`
	Claims  []claim.Claim  `json:"claims"`
}
