// Package market wraps the third-party price, swap-quote, and token-metadata
// providers behind a single service that reshapes their responses into the
// API's schema and caches what it can.
package market

import (
	"context"
	"net/http"
	"strings"
	"time"

	"solsight/internal/models"
)

// Cache is the subset of the cache service the market clients use. A nil
// cache disables caching without changing behavior.
type Cache interface {
	GetPrice(ctx context.Context, symbol string) (*models.PriceQuote, bool)
	CachePrice(ctx context.Context, quote *models.PriceQuote) error
	GetTokenMetadata(ctx context.Context, mint string) (*models.TokenMetadata, bool)
	CacheTokenMetadata(ctx context.Context, meta *models.TokenMetadata) error
}

// Config holds the upstream base URLs.
type Config struct {
	PriceBaseURL string // oracle price feed service (Hermes)
	QuoteBaseURL string // swap aggregator quote API
	TokenBaseURL string // token metadata API
}

type Service struct {
	cfg   Config
	cache Cache
	hc    *http.Client
}

// NewService creates a market data service.
func NewService(cfg Config, cache Cache) *Service {
	cfg.PriceBaseURL = strings.TrimRight(cfg.PriceBaseURL, "/")
	cfg.QuoteBaseURL = strings.TrimRight(cfg.QuoteBaseURL, "/")
	cfg.TokenBaseURL = strings.TrimRight(cfg.TokenBaseURL, "/")
	return &Service{
		cfg:   cfg,
		cache: cache,
		hc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
