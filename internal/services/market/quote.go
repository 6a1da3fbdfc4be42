package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"solsight/internal/metrics"
	"solsight/internal/models"
	"solsight/internal/registry"
)

// QuoteRequest carries the validated parameters of a swap quote lookup.
type QuoteRequest struct {
	InputMint   string
	OutputMint  string
	Amount      uint64 // raw units of the input mint
	SlippageBps int
}

type quoteResponse struct {
	InputMint      string `json:"inputMint"`
	InAmount       string `json:"inAmount"`
	OutputMint     string `json:"outputMint"`
	OutAmount      string `json:"outAmount"`
	PriceImpactPct string `json:"priceImpactPct"`
	SlippageBps    int    `json:"slippageBps"`
	RoutePlan      []struct {
		SwapInfo struct {
			AmmKey     string `json:"ammKey"`
			Label      string `json:"label"`
			InputMint  string `json:"inputMint"`
			OutputMint string `json:"outputMint"`
		} `json:"swapInfo"`
		Percent float64 `json:"percent"`
	} `json:"routePlan"`
}

// GetQuote forwards a swap quote request to the aggregator and reshapes the
// response. Quotes are never cached: amounts and routes shift too fast.
func (s *Service) GetQuote(ctx context.Context, reqParams QuoteRequest) (*models.SwapQuote, error) {
	q := url.Values{}
	q.Set("inputMint", reqParams.InputMint)
	q.Set("outputMint", reqParams.OutputMint)
	q.Set("amount", strconv.FormatUint(reqParams.Amount, 10))
	q.Set("slippageBps", strconv.Itoa(reqParams.SlippageBps))
	endpoint := s.cfg.QuoteBaseURL + "/v6/quote?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.hc.Do(req)
	metrics.ObserveUpstream("quote", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("quote provider: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("quote provider status=%d", resp.StatusCode)
	}

	var parsed quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("quote provider decode: %w", err)
	}

	impact, _ := strconv.ParseFloat(parsed.PriceImpactPct, 64)

	route := make([]models.RouteStep, 0, len(parsed.RoutePlan))
	for _, hop := range parsed.RoutePlan {
		label, ok := registry.LookupProtocol(hop.SwapInfo.AmmKey)
		if !ok {
			// The aggregator's own label is the best fallback for venues the
			// registry does not track.
			label = hop.SwapInfo.Label
		}
		route = append(route, models.RouteStep{
			Protocol:   label,
			InputMint:  hop.SwapInfo.InputMint,
			OutputMint: hop.SwapInfo.OutputMint,
			Percent:    hop.Percent,
		})
	}

	return &models.SwapQuote{
		InputMint:      parsed.InputMint,
		OutputMint:     parsed.OutputMint,
		InAmount:       parsed.InAmount,
		OutAmount:      parsed.OutAmount,
		PriceImpactPct: impact,
		SlippageBps:    parsed.SlippageBps,
		Route:          route,
	}, nil
}
