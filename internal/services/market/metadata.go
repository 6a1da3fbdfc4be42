package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"solsight/internal/errors"
	"solsight/internal/metrics"
	"solsight/internal/models"
	"solsight/internal/registry"
)

type tokenResponse struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoURI"`
}

// GetTokenMetadata resolves mint metadata from the provider, falling back to
// the static token registry when the provider has no entry.
func (s *Service) GetTokenMetadata(ctx context.Context, mint string) (*models.TokenMetadata, error) {
	if s.cache != nil {
		if meta, found := s.cache.GetTokenMetadata(ctx, mint); found {
			metrics.RecordCacheHit("token_metadata")
			return meta, nil
		}
		metrics.RecordCacheMiss("token_metadata")
	}

	meta, err := s.fetchTokenMetadata(ctx, mint)
	if err != nil {
		// Provider miss or outage: the registry still answers for the
		// well-known mints.
		if info, ok := registry.LookupToken(mint); ok {
			meta = &models.TokenMetadata{
				Mint:     mint,
				Symbol:   info.Symbol,
				Name:     info.Name,
				Decimals: info.Decimals,
				Source:   "registry",
			}
		} else {
			return nil, err
		}
	}

	if s.cache != nil {
		_ = s.cache.CacheTokenMetadata(ctx, meta)
	}
	return meta, nil
}

func (s *Service) fetchTokenMetadata(ctx context.Context, mint string) (*models.TokenMetadata, error) {
	endpoint := s.cfg.TokenBaseURL + "/token/" + mint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.hc.Do(req)
	metrics.ObserveUpstream("token_metadata", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("metadata provider: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.ErrTokenNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("metadata provider status=%d", resp.StatusCode)
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("metadata provider decode: %w", err)
	}

	return &models.TokenMetadata{
		Mint:     mint,
		Symbol:   parsed.Symbol,
		Name:     parsed.Name,
		Decimals: parsed.Decimals,
		LogoURI:  parsed.LogoURI,
		Source:   "provider",
	}, nil
}
