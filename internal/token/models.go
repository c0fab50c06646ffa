package token

import (
	"math/big"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

// NativeTokenAddress stands in for the chain's native currency.
var NativeTokenAddress = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

type TokenMeta struct {
	Address  common.Address `json:"address"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
	Image    string         `json:"image,omitempty"`
	Error    string         `json:"error,omitempty"`
}

type Pair struct {
	PublicToken          TokenMeta       `json:"publicToken"`
	ConfidentialToken    *TokenMeta      `json:"confidentialToken,omitempty"`
	ConfidentialDeployed bool            `json:"confidentialTokenDeployed"`
	IsStablecoin         bool            `json:"isStablecoin"`
	IsWETH               bool            `json:"isWETH"`
	FragmentedPair       *common.Address `json:"fragmentedPair,omitempty"`
}

// HasMetadata is false for catalog or user entries that only carry an address.
func (p Pair) HasMetadata() bool {
	return p.PublicToken.Symbol != ""
}

func (p Pair) Addresses() AddressPair {
	ap := AddressPair{ERC20: p.PublicToken.Address}
	if p.ConfidentialToken != nil {
		addr := p.ConfidentialToken.Address
		ap.FHERC20 = &addr
	}
	return ap
}

// ConfidentialSymbol falls back to "e" + the public symbol when no wrapper
// metadata is known.
func (p Pair) ConfidentialSymbol() string {
	if p.ConfidentialToken != nil && p.ConfidentialToken.Symbol != "" {
		return p.ConfidentialToken.Symbol
	}
	return "e" + p.PublicToken.Symbol
}

type AddressPair struct {
	ERC20   common.Address
	FHERC20 *common.Address
}

func (a AddressPair) HasConfidential() bool {
	return a.FHERC20 != nil && *a.FHERC20 != (common.Address{})
}

func (a AddressPair) IsNative() bool {
	return a.ERC20 == NativeTokenAddress
}

// Balances is replaced as a whole on every fetch. A nil field was never
// fetched (or its read failed) and is distinct from a fetched zero.
type Balances struct {
	PublicBalance      *big.Int    `json:"publicBalance,omitempty"`
	ConfidentialHandle *fhe.Handle `json:"confidentialBalance,omitempty"`
	Allowance          *big.Int    `json:"fherc20Allowance,omitempty"`
}

type ConfidentialState int

const (
	ConfidentialUnknown ConfidentialState = iota
	ConfidentialZero
	ConfidentialSealed
)

func (s ConfidentialState) String() string {
	switch s {
	case ConfidentialZero:
		return "zero"
	case ConfidentialSealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// ConfidentialState is zero only once a fetch returned the sentinel handle.
func (b Balances) ConfidentialState() ConfidentialState {
	switch {
	case b.ConfidentialHandle == nil:
		return ConfidentialUnknown
	case b.ConfidentialHandle.IsZero():
		return ConfidentialZero
	default:
		return ConfidentialSealed
	}
}

type PairWithBalances struct {
	Pair     Pair     `json:"pair"`
	Balances Balances `json:"balances"`
}

type PairKey struct {
	Chain uint64
	Token common.Address
}

type BalanceKey struct {
	Chain   uint64
	Account common.Address
	Token   common.Address
}

// State is the persisted form: pairs[chain][token],
// balances[chain][account][token] and the user-added tokens per chain.
type State struct {
	Pairs     map[uint64]map[common.Address]Pair                         `json:"pairs"`
	Balances  map[uint64]map[common.Address]map[common.Address]Balances `json:"balances"`
	Arbitrary map[uint64][]common.Address                                `json:"arbitraryTokens"`
}
