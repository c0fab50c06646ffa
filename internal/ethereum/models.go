package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrCallReverted = errors.New("call reverted")
	ErrEmptyResult  = errors.New("call returned no values")
	ErrDecode       = errors.New("decode call result")
	ErrUnknownChain = errors.New("no reader configured for chain")
)

// Call is one read inside a multicall batch.
type Call struct {
	Target common.Address
	ABI    *abi.ABI
	Method string
	Args   []any
}

func NewCall(target common.Address, contractABI *abi.ABI, method string, args ...any) Call {
	return Call{
		Target: target,
		ABI:    contractABI,
		Method: method,
		Args:   args,
	}
}

func (c Call) Pack() ([]byte, error) {
	data, err := c.ABI.Pack(c.Method, c.Args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", c.Method, err)
	}
	return data, nil
}

// Succeed builds a successful result for c. The chain reader uses it after
// unpacking; fakes use it to script responses.
func (c Call) Succeed(values ...any) Result {
	return Result{Success: true, Values: values}
}

func (c Call) Fail(err error) Result {
	return Result{Err: err}
}

// Result is the per-call outcome of a multicall, in request order.
type Result struct {
	Success bool
	Values  []any
	Err     error
}

// Decode copies the first returned value into out, which must be a pointer
// to a type matching the ABI output (structs are matched field by field).
func (r Result) Decode(out any) (err error) {
	if !r.Success {
		if r.Err != nil {
			return r.Err
		}
		return ErrCallReverted
	}
	if len(r.Values) == 0 {
		return ErrEmptyResult
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrDecode, rec)
		}
	}()
	abi.ConvertType(r.Values[0], out)
	return nil
}
