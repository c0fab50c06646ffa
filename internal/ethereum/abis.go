package ethereum

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Multicall3 is deployed at the same address on every supported chain.
var DefaultMulticallAddress = common.HexToAddress("0xcA11bde05977b3631167028862bE2a173976CA11")

const erc20JSON = `[
{"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const claimComponents = `[
{"name":"ctHash","type":"uint256"},
{"name":"requestedAmount","type":"uint128"},
{"name":"decryptedAmount","type":"uint128"},
{"name":"decrypted","type":"bool"},
{"name":"to","type":"address"},
{"name":"claimed","type":"bool"}
]`

const confidentialJSON = `[
{"inputs":[{"name":"account","type":"address"}],"name":"encBalanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"user","type":"address"}],"name":"getUserClaims","outputs":[{"name":"","type":"tuple[]","components":` + claimComponents + `}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"ctHash","type":"uint256"}],"name":"getClaim","outputs":[{"name":"","type":"tuple","components":` + claimComponents + `}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"isFherc20","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"erc20","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const registryJSON = `[
{"inputs":[{"name":"erc20","type":"address"}],"name":"getFherc20","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"erc20","type":"address"}],"name":"getIsStablecoin","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"erc20","type":"address"}],"name":"getIsWETH","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"}
]`

const multicall3JSON = `[
{"inputs":[{"components":[{"name":"target","type":"address"},{"name":"allowFailure","type":"bool"},{"name":"callData","type":"bytes"}],"name":"calls","type":"tuple[]"}],
 "name":"aggregate3",
 "outputs":[{"components":[{"name":"success","type":"bool"},{"name":"returnData","type":"bytes"}],"name":"returnData","type":"tuple[]"}],
 "stateMutability":"payable","type":"function"}
]`

var (
	ERC20ABI        = mustParseABI(erc20JSON)
	ConfidentialABI = mustParseABI(confidentialJSON)
	RegistryABI     = mustParseABI(registryJSON)
	Multicall3ABI   = mustParseABI(multicall3JSON)
)

// ClaimTuple mirrors the on-chain Claim struct; field order matters.
type ClaimTuple struct {
	CtHash          *big.Int
	RequestedAmount *big.Int
	DecryptedAmount *big.Int
	Decrypted       bool
	To              common.Address
	Claimed         bool
}

// Call3 and Call3Result mirror the Multicall3 aggregate3 tuples.
type Call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

type Call3Result struct {
	Success    bool
	ReturnData []byte
}

func mustParseABI(def string) *abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return &parsed
}
