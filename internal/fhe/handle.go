package fhe

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var ErrHandleOverflow = errors.New("ciphertext handle exceeds 256 bits")

// Handle references a sealed on-chain value. The zero handle is the
// "uninitialized" sentinel and decrypts to the zero value of any type.
type Handle uint256.Int

func HandleFromBig(b *big.Int) (Handle, error) {
	if b == nil {
		return Handle{}, nil
	}
	if b.Sign() < 0 {
		return Handle{}, fmt.Errorf("negative handle %s", b)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Handle{}, ErrHandleOverflow
	}
	return Handle(*v), nil
}

func HandleFromUint64(v uint64) Handle {
	return Handle(*uint256.NewInt(v))
}

// ParseHandle parses the decimal text form of a handle.
func ParseHandle(s string) (Handle, error) {
	var v uint256.Int
	if err := v.SetFromDecimal(s); err != nil {
		return Handle{}, fmt.Errorf("parse handle %q: %w", s, err)
	}
	return Handle(v), nil
}

func (h Handle) IsZero() bool {
	v := uint256.Int(h)
	return v.IsZero()
}

func (h Handle) Big() *big.Int {
	v := uint256.Int(h)
	return v.ToBig()
}

func (h Handle) String() string {
	v := uint256.Int(h)
	return v.Dec()
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Handle) UnmarshalText(text []byte) error {
	parsed, err := ParseHandle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
