package solana

import "encoding/json"

// TokenProgramID is the SPL token program; token accounts are enumerated
// against it.
const TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

const lamportsPerSol = 1_000_000_000

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type balanceResult struct {
	Value uint64 `json:"value"`
}

type tokenAmount struct {
	UIAmount *float64 `json:"uiAmount"`
	Decimals int      `json:"decimals"`
	Amount   string   `json:"amount"`
}

type parsedTokenInfo struct {
	Mint        string      `json:"mint"`
	TokenAmount tokenAmount `json:"tokenAmount"`
}

type tokenAccountsResult struct {
	Value []struct {
		Pubkey  string `json:"pubkey"`
		Account struct {
			Data struct {
				Parsed struct {
					Info parsedTokenInfo `json:"info"`
					Type string          `json:"type"`
				} `json:"parsed"`
			} `json:"data"`
		} `json:"account"`
	} `json:"value"`
}

type signatureInfo struct {
	Signature string          `json:"signature"`
	Slot      uint64          `json:"slot"`
	Err       json.RawMessage `json:"err"`
	BlockTime *int64          `json:"blockTime"`
}
