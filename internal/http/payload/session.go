package payload

import (
	"redactsync/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// SessionRequest switches the chain and account the background jobs follow.
// Permit authorizes unseal calls for the account and is optional.
type SessionRequest struct {
	Chain   uint64 `json:"chain"`
	Account string `json:"account"`
	Permit  string `json:"permit"`
}

func (s SessionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Chain, validation.Required),
		validation.Field(&s.Account, validation.Required, addressRule),
	)
}

func (s SessionRequest) ToSession() core.Session {
	return core.Session{
		Chain:   s.Chain,
		Account: common.HexToAddress(s.Account),
	}
}

type ArbitraryRequest struct {
	Chain   uint64 `json:"chain"`
	Account string `json:"account"`
	Token   string `json:"token"`
}

func (a ArbitraryRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Chain, validation.Required),
		validation.Field(&a.Account, validation.Required, addressRule),
		validation.Field(&a.Token, validation.Required, addressRule),
	)
}
