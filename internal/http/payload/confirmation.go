package payload

import (
	"redactsync/internal/core"
	"redactsync/internal/events"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

type ConfirmationRequest struct {
	Status       string `json:"status"`
	Kind         string `json:"kind"`
	Chain        uint64 `json:"chain"`
	Account      string `json:"account"`
	Token        string `json:"token"`
	Confidential string `json:"confidential"`
	CtHash       string `json:"ctHash"`
	TxHash       string `json:"txHash"`
}

func (c ConfirmationRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Status, validation.In(
			string(events.StatusSubmitted),
			string(events.StatusConfirmed),
			string(events.StatusFailed),
		)),
		validation.Field(&c.Kind, validation.Required, validation.In(
			string(core.KindEncrypt),
			string(core.KindApprove),
			string(core.KindDeploy),
			string(core.KindSend),
			string(core.KindDecrypt),
			string(core.KindClaim),
			string(core.KindClaimAll),
		)),
		validation.Field(&c.Account, addressRule),
		validation.Field(&c.Token, validation.Required, addressRule),
		validation.Field(&c.Confidential, addressRule),
		validation.Field(&c.CtHash, validation.When(c.Kind == string(core.KindClaim), validation.Required), handleRule),
		validation.Field(&c.TxHash, validation.When(c.Status == string(events.StatusSubmitted), validation.Required), txHashRule),
	)
}

// ToNotice converts a validated request. An empty status means confirmed.
func (c ConfirmationRequest) ToNotice() (events.Notice, error) {
	notice := events.Notice{
		Status: events.Status(c.Status),
		Confirmation: core.Confirmation{
			Kind:   core.Kind(c.Kind),
			Chain:  c.Chain,
			Token:  common.HexToAddress(c.Token),
			TxHash: c.TxHash,
		},
	}
	if notice.Status == "" {
		notice.Status = events.StatusConfirmed
	}
	if c.Account != "" {
		notice.Account = common.HexToAddress(c.Account)
	}
	if c.Confidential != "" {
		confidential := common.HexToAddress(c.Confidential)
		notice.Confidential = &confidential
	}
	if c.CtHash != "" {
		handle, err := fhe.ParseHandle(c.CtHash)
		if err != nil {
			return events.Notice{}, err
		}
		notice.ClaimHandle = &handle
	}
	return notice, nil
}
