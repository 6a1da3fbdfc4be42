package models

// PriceQuote is a reshaped oracle price update for a registered symbol.
type PriceQuote struct {
	Symbol      string  `json:"symbol"`
	FeedID      string  `json:"feed_id"`
	Price       float64 `json:"price"`
	Confidence  float64 `json:"confidence"`
	PublishTime int64   `json:"publish_time"`
}

// RouteStep is one hop of a swap route, labelled via the protocol registry.
type RouteStep struct {
	Protocol   string  `json:"protocol"`
	InputMint  string  `json:"input_mint"`
	OutputMint string  `json:"output_mint"`
	Percent    float64 `json:"percent"`
}

// SwapQuote is a reshaped aggregator quote for a token swap.
type SwapQuote struct {
	InputMint      string      `json:"input_mint"`
	OutputMint     string      `json:"output_mint"`
	InAmount       string      `json:"in_amount"`
	OutAmount      string      `json:"out_amount"`
	PriceImpactPct float64     `json:"price_impact_pct"`
	SlippageBps    int         `json:"slippage_bps"`
	Route          []RouteStep `json:"route"`
}

// TokenMetadata describes a mint, from the metadata provider or the static
// token registry when the provider has no entry.
type TokenMetadata struct {
	Mint     string `json:"mint"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logo_uri,omitempty"`
	Source   string `json:"source"`
}
