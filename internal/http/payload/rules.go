package payload

import (
	"regexp"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var (
	addressRule = validation.Match(regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)).Error("must be a 0x prefixed address")
	handleRule  = validation.Match(regexp.MustCompile(`^[0-9]{1,78}$`)).Error("must be a decimal handle")
	txHashRule  = validation.Match(regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)).Error("must be a transaction hash")
)

// Params holds the path and query values shared by the read endpoints.
type Params struct {
	Chain   string
	Account string
	Address string
}

func (p Params) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Chain, validation.Required, validation.Match(regexp.MustCompile(`^[1-9][0-9]*$`))),
		validation.Field(&p.Account, addressRule),
		validation.Field(&p.Address, addressRule),
	)
}

func (p Params) ChainID() uint64 {
	id, _ := strconv.ParseUint(p.Chain, 10, 64)
	return id
}

func (p Params) AccountAddress() common.Address {
	return common.HexToAddress(p.Account)
}

func (p Params) TokenAddress() common.Address {
	return common.HexToAddress(p.Address)
}
