package claim

import (
	"math/big"
	"redactsync/internal/ethereum"
	"redactsync/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

// Claim is a pending withdrawal from a confidential token into its public
// counterpart, created by a decrypt transaction.
type Claim struct {
	Handle          fhe.Handle     `json:"ctHash"`
	RequestedAmount *big.Int       `json:"requestedAmount"`
	DecryptedAmount *big.Int       `json:"decryptedAmount"`
	Decrypted       bool           `json:"decrypted"`
	To              common.Address `json:"to"`
	Claimed         bool           `json:"claimed"`
	ERC20           common.Address `json:"erc20Address"`
	FHERC20         common.Address `json:"fherc20Address"`
}

func (c Claim) Key(chain uint64) Key {
	return Key{Chain: chain, ERC20: c.ERC20, Handle: c.Handle}
}

// Claimable claims are decrypted and still waiting for the claim transaction.
func (c Claim) Claimable() bool {
	return c.Decrypted && !c.Claimed
}

// differs compares the fields the contract mutates after creation.
func (c Claim) differs(other Claim) bool {
	return c.Decrypted != other.Decrypted ||
		c.Claimed != other.Claimed ||
		amount(c.DecryptedAmount).Cmp(amount(other.DecryptedAmount)) != 0
}

type Key struct {
	Chain  uint64
	ERC20  common.Address
	Handle fhe.Handle
}

// Totals sums the unclaimed claims of one account for one pair.
type Totals struct {
	Requested *big.Int `json:"totalRequestedAmount"`
	Decrypted *big.Int `json:"totalDecryptedAmount"`
	Pending   *big.Int `json:"totalPendingAmount"`
}

// PruneReport summarizes one validation sweep.
type PruneReport struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
}

// State is the persisted form: claims[chain][erc20][ctHash].
type State map[uint64]map[common.Address]map[fhe.Handle]Claim

func fromTuple(t ethereum.ClaimTuple, erc20, fherc20 common.Address) (Claim, error) {
	handle, err := fhe.HandleFromBig(t.CtHash)
	if err != nil {
		return Claim{}, err
	}
	return Claim{
		Handle:          handle,
		RequestedAmount: amount(t.RequestedAmount),
		DecryptedAmount: amount(t.DecryptedAmount),
		Decrypted:       t.Decrypted,
		To:              t.To,
		Claimed:         t.Claimed,
		ERC20:           erc20,
		FHERC20:         fherc20,
	}, nil
}

func amount(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
