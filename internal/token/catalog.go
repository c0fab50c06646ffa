package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var ErrCatalogStatus = errors.New("unexpected catalog response status")

type catalogDocument struct {
	Pairs map[string]map[string]Pair `json:"pairs"`
}

// HTTPCatalog loads the predefined token list published alongside the app.
type HTTPCatalog struct {
	url        string
	httpClient *http.Client
}

func NewHTTPCatalog(url string, timeout time.Duration) *HTTPCatalog {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPCatalog{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Load returns the chain's predefined pairs. Entries are keyed by public
// token address; the key wins over the address inside the entry.
func (c *HTTPCatalog) Load(ctx context.Context, chain uint64) ([]Pair, error) {
	if c.url == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrCatalogStatus, resp.StatusCode)
	}

	var doc catalogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	byAddress := doc.Pairs[strconv.FormatUint(chain, 10)]
	pairs := make([]Pair, 0, len(byAddress))
	for addr, p := range byAddress {
		if !common.IsHexAddress(addr) {
			continue
		}
		p.PublicToken.Address = common.HexToAddress(addr)
		pairs = append(pairs, p)
	}
	return pairs, nil
}
