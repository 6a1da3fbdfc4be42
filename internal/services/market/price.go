package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"solsight/internal/errors"
	"solsight/internal/metrics"
	"solsight/internal/models"
	"solsight/internal/registry"
)

type priceUpdate struct {
	ID    string `json:"id"`
	Price struct {
		Price       string `json:"price"`
		Conf        string `json:"conf"`
		Expo        int    `json:"expo"`
		PublishTime int64  `json:"publish_time"`
	} `json:"price"`
}

type priceResponse struct {
	Parsed []priceUpdate `json:"parsed"`
}

// GetPrice returns the latest oracle price for a registered symbol. Results
// are cached for a short window; a price older than the TTL is refetched.
func (s *Service) GetPrice(ctx context.Context, symbol string) (*models.PriceQuote, error) {
	symbol = strings.ToUpper(symbol)
	feedID, ok := registry.LookupPriceFeed(symbol)
	if !ok {
		return nil, errors.ErrUnknownSymbol
	}

	if s.cache != nil {
		if quote, found := s.cache.GetPrice(ctx, symbol); found {
			metrics.RecordCacheHit("price")
			return quote, nil
		}
		metrics.RecordCacheMiss("price")
	}

	q := url.Values{}
	q.Add("ids[]", feedID)
	endpoint := s.cfg.PriceBaseURL + "/v2/updates/price/latest?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.hc.Do(req)
	metrics.ObserveUpstream("price_feed", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("price feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("price feed status=%d", resp.StatusCode)
	}

	var parsed priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("price feed decode: %w", err)
	}
	if len(parsed.Parsed) == 0 {
		return nil, fmt.Errorf("price feed returned no update for %s", symbol)
	}

	update := parsed.Parsed[0]
	price, err := scaledFloat(update.Price.Price, update.Price.Expo)
	if err != nil {
		return nil, fmt.Errorf("price feed mantissa: %w", err)
	}
	conf, err := scaledFloat(update.Price.Conf, update.Price.Expo)
	if err != nil {
		return nil, fmt.Errorf("price feed confidence: %w", err)
	}

	quote := &models.PriceQuote{
		Symbol:      symbol,
		FeedID:      feedID,
		Price:       price,
		Confidence:  conf,
		PublishTime: update.Price.PublishTime,
	}

	if s.cache != nil {
		_ = s.cache.CachePrice(ctx, quote)
	}
	return quote, nil
}

// scaledFloat applies a decimal exponent to an integer mantissa string.
func scaledFloat(mantissa string, expo int) (float64, error) {
	v, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return 0, err
	}
	return v * math.Pow10(expo), nil
}
