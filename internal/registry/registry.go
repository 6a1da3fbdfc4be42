// Package registry holds the static lookup tables for tokens, oracle price
// feeds, and swap protocols. The maps are populated once at init and must be
// treated as read-only afterwards.
package registry

// TokenInfo describes a well-known mint.
type TokenInfo struct {
	Symbol   string
	Name     string
	Decimals int
}

// tokens maps mint address to token info for the mints the API answers for
// without hitting the metadata provider.
var tokens = map[string]TokenInfo{
	"So11111111111111111111111111111111111111112":  {Symbol: "SOL", Name: "Wrapped SOL", Decimals: 9},
	"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v": {Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB": {Symbol: "USDT", Name: "Tether USD", Decimals: 6},
	"DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263": {Symbol: "BONK", Name: "Bonk", Decimals: 5},
	"JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN":  {Symbol: "JUP", Name: "Jupiter", Decimals: 6},
	"4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R": {Symbol: "RAY", Name: "Raydium", Decimals: 6},
	"mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So":  {Symbol: "mSOL", Name: "Marinade staked SOL", Decimals: 9},
}

// priceFeeds maps uppercase symbol to the oracle feed id used by the price
// provider.
var priceFeeds = map[string]string{
	"SOL":  "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d",
	"BTC":  "e62df6c8b4a85fe1a67db44dc12de5db330f7ac66b72dc658afedf0f4a415b43",
	"ETH":  "ff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace",
	"USDC": "eaa020c61cc479712813461ce153894a96a6c00b21ed0cfc2798d1f9a9e9c94a",
	"JUP":  "0a0408d619e9380abad35060f9192039ed5042fa6f82301d0e48bb52be830996",
}

// protocols maps on-chain program id to a human-readable protocol label for
// swap route annotation.
var protocols = map[string]string{
	"675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8": "Raydium",
	"whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc":  "Orca Whirlpool",
	"JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4":  "Jupiter",
	"PhoeNiXZ8ByJGLkxNfZRnkUfjvmuYqLR89jjFHGqdXY":  "Phoenix",
	"LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo":  "Meteora DLMM",
	"opnb2LAfJYbRMAHHvqjCwQxanZn7ReEHp1k81EohpZb":  "OpenBook",
}

// LookupToken returns registry info for a mint.
func LookupToken(mint string) (TokenInfo, bool) {
	info, ok := tokens[mint]
	return info, ok
}

// LookupPriceFeed returns the feed id for an uppercase symbol.
func LookupPriceFeed(symbol string) (string, bool) {
	id, ok := priceFeeds[symbol]
	return id, ok
}

// LookupProtocol returns the display name registered for a program id.
func LookupProtocol(programID string) (string, bool) {
	label, ok := protocols[programID]
	return label, ok
}

// PriceSymbols lists the symbols with a registered feed, for discovery
// endpoints. The slice is rebuilt per call so callers cannot mutate the table.
func PriceSymbols() []string {
	out := make([]string, 0, len(priceFeeds))
	for sym := range priceFeeds {
		out = append(out, sym)
	}
	return out
}
