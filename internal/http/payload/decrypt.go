package payload

import (
	"fmt"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

type DecryptRequest struct {
	CtHash  string `json:"ctHash"`
	Type    string `json:"type"`
	Account string `json:"account"`
}

func (d DecryptRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.CtHash, validation.Required, handleRule),
		validation.Field(&d.Type, validation.Required, validation.By(func(value any) error {
			_, err := fhe.ParseValueType(value.(string))
			return err
		})),
		validation.Field(&d.Account, validation.Required, addressRule),
	)
}

func (d DecryptRequest) Parse() (fhe.Handle, fhe.ValueType, common.Address, error) {
	handle, err := fhe.ParseHandle(d.CtHash)
	if err != nil {
		return fhe.Handle{}, 0, common.Address{}, fmt.Errorf("parse ctHash: %w", err)
	}
	valueType, err := fhe.ParseValueType(d.Type)
	if err != nil {
		return fhe.Handle{}, 0, common.Address{}, err
	}
	return handle, valueType, common.HexToAddress(d.Account), nil
}
