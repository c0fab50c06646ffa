package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"redactsync/internal/fhe"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNoPermit      = errors.New("no permit for account")
	ErrUnsealFailed  = errors.New("unseal failed")
	ErrInvalidAnswer = errors.New("invalid oracle response")
)

const unsealPath = "/unseal"

type unsealRequest struct {
	Handle  string `json:"ctHash"`
	Type    string `json:"utype"`
	Account string `json:"account"`
	Permit  string `json:"permit"`
}

type unsealResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
	Error   string `json:"error"`
}

// Client talks to the threshold decryption network. Unsealing requires a
// signed permit per account; permits are obtained outside this service and
// registered with SetPermit.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.RWMutex
	permits map[common.Address]string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		permits:    make(map[common.Address]string),
	}
}

func (c *Client) SetPermit(account common.Address, permit string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.permits[account] = permit
}

func (c *Client) RemovePermit(account common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.permits, account)
}

// Ready reports whether account can be unsealed for.
func (c *Client) Ready(account common.Address) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.permits[account]
	return ok
}

func (c *Client) Unseal(ctx context.Context, handle fhe.Handle, valueType fhe.ValueType, account common.Address) (fhe.Plaintext, error) {
	c.mu.RLock()
	permit, ok := c.permits[account]
	c.mu.RUnlock()
	if !ok {
		return fhe.Plaintext{}, fmt.Errorf("%w: %s", ErrNoPermit, account.Hex())
	}

	body, err := json.Marshal(unsealRequest{
		Handle:  handle.String(),
		Type:    valueType.String(),
		Account: account.Hex(),
		Permit:  permit,
	})
	if err != nil {
		return fhe.Plaintext{}, fmt.Errorf("marshal unseal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+unsealPath, bytes.NewReader(body))
	if err != nil {
		return fhe.Plaintext{}, fmt.Errorf("create unseal request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fhe.Plaintext{}, fmt.Errorf("send unseal request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fhe.Plaintext{}, fmt.Errorf("read unseal response: %w", err)
	}

	var out unsealResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fhe.Plaintext{}, fmt.Errorf("%w: status %d: %w", ErrInvalidAnswer, resp.StatusCode, err)
	}
	if !out.Success {
		return fhe.Plaintext{}, fmt.Errorf("%w: %s", ErrUnsealFailed, out.Error)
	}

	value, ok := new(big.Int).SetString(out.Data, 0)
	if !ok {
		return fhe.Plaintext{}, fmt.Errorf("%w: data %q", ErrInvalidAnswer, out.Data)
	}
	return fhe.NewPlaintext(valueType, value)
}
