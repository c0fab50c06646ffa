package fhe

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ValueType is the plaintext type a handle decrypts into.
type ValueType uint8

const (
	Bool ValueType = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Uint256
	Address
)

var valueTypeNames = map[ValueType]string{
	Bool:    "bool",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint128: "uint128",
	Uint256: "uint256",
	Address: "address",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ValueType(%d)", uint8(t))
}

// Bits is the width of the plaintext domain.
func (t ValueType) Bits() int {
	switch t {
	case Bool:
		return 1
	case Uint8:
		return 8
	case Uint16:
		return 16
	case Uint32:
		return 32
	case Uint64:
		return 64
	case Uint128:
		return 128
	case Address:
		return 160
	default:
		return 256
	}
}

func ParseValueType(s string) (ValueType, error) {
	for t, name := range valueTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown value type %q", s)
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(text []byte) error {
	parsed, err := ParseValueType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Plaintext is an unsealed value. Every type is carried as an unsigned
// integer: bools as 0/1 and addresses as their 160-bit integer.
type Plaintext struct {
	Type ValueType
	raw  *big.Int
}

func NewPlaintext(t ValueType, v *big.Int) (Plaintext, error) {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.BitLen() > t.Bits() {
		return Plaintext{}, fmt.Errorf("value %s out of range for %s", v, t)
	}
	return Plaintext{Type: t, raw: new(big.Int).Set(v)}, nil
}

// ZeroValue is false, 0 or the zero address depending on t.
func ZeroValue(t ValueType) Plaintext {
	return Plaintext{Type: t, raw: new(big.Int)}
}

func (p Plaintext) Uint() *big.Int {
	if p.raw == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(p.raw)
}

func (p Plaintext) Bool() bool {
	return p.raw != nil && p.raw.Sign() != 0
}

func (p Plaintext) Address() common.Address {
	return common.BigToAddress(p.Uint())
}

func (p Plaintext) String() string {
	switch p.Type {
	case Bool:
		return fmt.Sprintf("%t", p.Bool())
	case Address:
		return p.Address().Hex()
	default:
		return p.Uint().String()
	}
}

type plaintextJSON struct {
	Type  ValueType `json:"type"`
	Value string    `json:"value"`
}

func (p Plaintext) MarshalJSON() ([]byte, error) {
	return json.Marshal(plaintextJSON{Type: p.Type, Value: p.Uint().String()})
}

func (p *Plaintext) UnmarshalJSON(data []byte) error {
	var aux plaintextJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v, ok := new(big.Int).SetString(aux.Value, 10)
	if !ok {
		return fmt.Errorf("invalid plaintext value %q", aux.Value)
	}
	parsed, err := NewPlaintext(aux.Type, v)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
