package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Readers routes reads to the Reader of the requested chain.
type Readers struct {
	byChain map[uint64]*Reader
}

func NewReaders(byChain map[uint64]*Reader) *Readers {
	return &Readers{byChain: byChain}
}

func (r *Readers) reader(chain uint64) (*Reader, error) {
	reader, ok := r.byChain[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChain, chain)
	}
	return reader, nil
}

func (r *Readers) Multicall(ctx context.Context, chain uint64, calls []Call) ([]Result, error) {
	reader, err := r.reader(chain)
	if err != nil {
		return nil, err
	}
	return reader.Multicall(ctx, calls)
}

func (r *Readers) NativeBalance(ctx context.Context, chain uint64, account common.Address) (*big.Int, error) {
	reader, err := r.reader(chain)
	if err != nil {
		return nil, err
	}
	return reader.NativeBalance(ctx, account)
}

func (r *Readers) Chains() []uint64 {
	chains := make([]uint64, 0, len(r.byChain))
	for chain := range r.byChain {
		chains = append(chains, chain)
	}
	return chains
}
