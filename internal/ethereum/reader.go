package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"redactsync/internal/metrics"
	"sync"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

const defaultBatchSize = 100

// Reader batches contract reads for one chain through Multicall3.
type Reader struct {
	client    EthClient
	multicall common.Address
	batchSize int
}

func NewReader(client EthClient, multicall common.Address, batchSize int) *Reader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if multicall == (common.Address{}) {
		multicall = DefaultMulticallAddress
	}
	return &Reader{
		client:    client,
		multicall: multicall,
		batchSize: batchSize,
	}
}

type batchResult struct {
	offset  int
	results []Result
	err     error
}

// Multicall returns exactly one Result per call, in order. Reverted or
// undecodable sub-calls only fail their own Result; the error is non-nil
// when a whole batch round trip failed.
func (r *Reader) Multicall(ctx context.Context, calls []Call) ([]Result, error) {
	if len(calls) == 0 {
		return nil, nil
	}

	resultsChan := make(chan *batchResult)

	var wg sync.WaitGroup
	for offset := 0; offset < len(calls); offset += r.batchSize {
		end := min(offset+r.batchSize, len(calls))
		wg.Add(1)
		go func(offset int, batch []Call) {
			defer wg.Done()
			results, err := r.aggregate(ctx, batch)
			if err != nil {
				err = fmt.Errorf("multicall batch at %d: %w", offset, err)
			}
			resultsChan <- &batchResult{offset: offset, results: results, err: err}
		}(offset, calls[offset:end])
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	out := make([]Result, len(calls))
	var aggrErr error
	for res := range resultsChan {
		if res.err != nil {
			aggrErr = errors.Join(aggrErr, res.err)
		}
		copy(out[res.offset:], res.results)
	}

	return out, aggrErr
}

func (r *Reader) aggregate(ctx context.Context, batch []Call) ([]Result, error) {
	results := make([]Result, len(batch))

	call3s := make([]Call3, 0, len(batch))
	index := make([]int, 0, len(batch))
	for i, c := range batch {
		data, err := c.Pack()
		if err != nil {
			results[i] = c.Fail(err)
			continue
		}
		call3s = append(call3s, Call3{Target: c.Target, AllowFailure: true, CallData: data})
		index = append(index, i)
	}

	if len(call3s) == 0 {
		return results, nil
	}

	input, err := Multicall3ABI.Pack("aggregate3", call3s)
	if err != nil {
		return failAll(results, index, err), fmt.Errorf("pack aggregate3: %w", err)
	}

	output, err := r.client.CallContract(ctx, geth.CallMsg{To: &r.multicall, Data: input}, nil)
	if err != nil {
		metrics.MulticallBatches.WithLabelValues("error").Inc()
		return failAll(results, index, err), fmt.Errorf("call aggregate3: %w", err)
	}

	var returned []Call3Result
	if err := Multicall3ABI.UnpackIntoInterface(&returned, "aggregate3", output); err != nil {
		metrics.MulticallBatches.WithLabelValues("error").Inc()
		return failAll(results, index, err), fmt.Errorf("unpack aggregate3: %w", err)
	}
	if len(returned) != len(call3s) {
		err := fmt.Errorf("aggregate3 returned %d results for %d calls", len(returned), len(call3s))
		return failAll(results, index, err), err
	}

	metrics.MulticallBatches.WithLabelValues("ok").Inc()
	for j, ret := range returned {
		i := index[j]
		c := batch[i]
		if !ret.Success {
			metrics.MulticallSubcallFailures.WithLabelValues(c.Method).Inc()
			results[i] = c.Fail(fmt.Errorf("%s on %s: %w", c.Method, c.Target.Hex(), ErrCallReverted))
			continue
		}
		values, err := c.ABI.Methods[c.Method].Outputs.Unpack(ret.ReturnData)
		if err != nil {
			metrics.MulticallSubcallFailures.WithLabelValues(c.Method).Inc()
			results[i] = c.Fail(fmt.Errorf("%w: %s: %w", ErrDecode, c.Method, err))
			continue
		}
		results[i] = c.Succeed(values...)
	}

	return results, nil
}

func (r *Reader) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := r.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", account.Hex(), err)
	}
	return balance, nil
}

func failAll(results []Result, index []int, err error) []Result {
	for _, i := range index {
		results[i] = Result{Err: err}
	}
	return results
}
