package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoChains       = errors.New("no chain configured")
	ErrInvalidChain   = errors.New("invalid chain entry")
	ErrUnknownBackend = errors.New("unknown storage backend")
)

const (
	BackendLevelDB  = "leveldb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type App struct {
	Port     string `envconfig:"API_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// A single chain can be configured through the environment. ChainsFile
	// takes precedence when set.
	NodeURL          string `envconfig:"ETH_NODE_URL"`
	ChainID          uint64 `envconfig:"CHAIN_ID"`
	RegistryAddress  string `envconfig:"REGISTRY_ADDRESS"`
	MulticallAddress string `envconfig:"MULTICALL_ADDRESS"`
	ChainsFile       string `envconfig:"CHAINS_FILE"`
	BatchSize        int    `envconfig:"MULTICALL_BATCH_SIZE" default:"100"`

	OracleURL     string        `envconfig:"ORACLE_URL" required:"true"`
	OracleTimeout time.Duration `envconfig:"ORACLE_TIMEOUT" default:"30s"`
	DecryptWindow time.Duration `envconfig:"DECRYPT_RATE_WINDOW" default:"5s"`

	CatalogURL     string        `envconfig:"CATALOG_URL"`
	CatalogTimeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`

	BalanceInterval  time.Duration `envconfig:"BALANCE_INTERVAL" default:"5s"`
	ClaimInterval    time.Duration `envconfig:"CLAIM_INTERVAL" default:"10s"`
	ValidateInterval time.Duration `envconfig:"VALIDATE_INTERVAL" default:"60s"`
	ConfirmationTTL  time.Duration `envconfig:"CONFIRMATION_TTL" default:"2m"`

	StorageBackend  string `envconfig:"STORAGE_BACKEND" default:"leveldb"`
	LevelDBPath     string `envconfig:"LEVELDB_PATH" default:"data/redactsync"`
	DBConnectionURL string `envconfig:"DB_CONNECTION_URL"`

	NATSURL     string `envconfig:"NATS_URL"`
	NATSSubject string `envconfig:"NATS_SUBJECT" default:"redactsync.transactions"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

func NewApp() (App, error) {
	var app App
	if err := envconfig.Process("", &app); err != nil {
		return App{}, fmt.Errorf("process env: %w", err)
	}

	switch app.StorageBackend {
	case BackendLevelDB, BackendMemory:
	case BackendPostgres:
		if app.DBConnectionURL == "" {
			return App{}, fmt.Errorf("%w: %s needs DB_CONNECTION_URL", ErrUnknownBackend, app.StorageBackend)
		}
	default:
		return App{}, fmt.Errorf("%w: %q", ErrUnknownBackend, app.StorageBackend)
	}

	return app, nil
}

// Chain is one network the service reads from.
type Chain struct {
	ID        uint64
	Name      string
	RPCURL    string
	Registry  common.Address
	Multicall common.Address
}

type chainEntry struct {
	ID        uint64 `yaml:"id"`
	Name      string `yaml:"name"`
	RPCURL    string `yaml:"rpc_url"`
	Registry  string `yaml:"registry"`
	Multicall string `yaml:"multicall"`
}

type chainsFile struct {
	Chains []chainEntry `yaml:"chains"`
}

// Chains returns the configured networks, from ChainsFile when set and from
// the single chain environment variables otherwise.
func (a App) Chains() ([]Chain, error) {
	if a.ChainsFile != "" {
		return LoadChains(a.ChainsFile)
	}
	if a.NodeURL == "" {
		return nil, ErrNoChains
	}

	chain, err := chainEntry{
		ID:        a.ChainID,
		RPCURL:    a.NodeURL,
		Registry:  a.RegistryAddress,
		Multicall: a.MulticallAddress,
	}.parse()
	if err != nil {
		return nil, err
	}
	return []Chain{chain}, nil
}

func LoadChains(path string) ([]Chain, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chains file: %w", err)
	}

	var file chainsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse chains file %s: %w", path, err)
	}
	if len(file.Chains) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoChains, path)
	}

	seen := make(map[uint64]bool, len(file.Chains))
	chains := make([]Chain, 0, len(file.Chains))
	for _, entry := range file.Chains {
		chain, err := entry.parse()
		if err != nil {
			return nil, err
		}
		if seen[chain.ID] {
			return nil, fmt.Errorf("%w: chain %d listed twice", ErrInvalidChain, chain.ID)
		}
		seen[chain.ID] = true
		chains = append(chains, chain)
	}
	return chains, nil
}

func (e chainEntry) parse() (Chain, error) {
	if e.ID == 0 {
		return Chain{}, fmt.Errorf("%w: missing id", ErrInvalidChain)
	}
	if e.RPCURL == "" {
		return Chain{}, fmt.Errorf("%w: chain %d has no rpc_url", ErrInvalidChain, e.ID)
	}

	chain := Chain{ID: e.ID, Name: e.Name, RPCURL: e.RPCURL}
	if e.Registry != "" {
		if !common.IsHexAddress(e.Registry) {
			return Chain{}, fmt.Errorf("%w: chain %d registry %q", ErrInvalidChain, e.ID, e.Registry)
		}
		chain.Registry = common.HexToAddress(e.Registry)
	}
	if e.Multicall != "" {
		if !common.IsHexAddress(e.Multicall) {
			return Chain{}, fmt.Errorf("%w: chain %d multicall %q", ErrInvalidChain, e.ID, e.Multicall)
		}
		chain.Multicall = common.HexToAddress(e.Multicall)
	}
	return chain, nil
}
