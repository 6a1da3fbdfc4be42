package models

// TokenHolding is a single SPL token position owned by a wallet.
// Holdings with a zero uiBalance are filtered out at fetch time.
type TokenHolding struct {
	Mint      string  `json:"mint"`
	UIBalance float64 `json:"ui_balance"`
}

// WalletSnapshot is the point-in-time state of a wallet as reported by the
// chain RPC. It is fetched fresh per request and never mutated downstream.
type WalletSnapshot struct {
	Address       string         `json:"address"`
	SolBalance    float64        `json:"sol_balance"`
	TokenHoldings []TokenHolding `json:"token_holdings"`
}

// ActivityRecord is one confirmed signature from the wallet's history.
// Records arrive most-recent-first. BlockTime is nil when the node has not
// resolved a timestamp for the slot.
type ActivityRecord struct {
	Signature string `json:"signature"`
	BlockTime *int64 `json:"block_time,omitempty"`
	Failed    bool   `json:"failed"`
}
