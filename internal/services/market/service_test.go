package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"solsight/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrice_ScalesMantissa(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/updates/price/latest", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "ids")
		w.Write([]byte(`{"parsed":[{"id":"feed","price":{"price":"15234500000","conf":"12500000","expo":-8,"publish_time":1700000000}}]}`))
	}))
	defer srv.Close()

	svc := NewService(Config{PriceBaseURL: srv.URL}, nil)
	quote, err := svc.GetPrice(context.Background(), "sol")
	require.NoError(t, err)

	assert.Equal(t, "SOL", quote.Symbol)
	assert.InDelta(t, 152.345, quote.Price, 1e-9)
	assert.InDelta(t, 0.125, quote.Confidence, 1e-9)
	assert.Equal(t, int64(1700000000), quote.PublishTime)
}

func TestGetPrice_UnknownSymbol(t *testing.T) {
	svc := NewService(Config{PriceBaseURL: "http://unused"}, nil)
	_, err := svc.GetPrice(context.Background(), "DOGE")
	assert.ErrorIs(t, err, errors.ErrUnknownSymbol)
}

func TestGetQuote_ReshapesRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/quote", r.URL.Path)
		assert.Equal(t, "1000000", r.URL.Query().Get("amount"))
		assert.Equal(t, "50", r.URL.Query().Get("slippageBps"))
		w.Write([]byte(`{
			"inputMint":"MintIn","inAmount":"1000000",
			"outputMint":"MintOut","outAmount":"985000",
			"priceImpactPct":"0.0012","slippageBps":50,
			"routePlan":[
				{"swapInfo":{"ammKey":"675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8","label":"Raydium CLMM","inputMint":"MintIn","outputMint":"MintMid"},"percent":60},
				{"swapInfo":{"ammKey":"UnknownAmm1111","label":"Aldrin","inputMint":"MintMid","outputMint":"MintOut"},"percent":40}
			]}`))
	}))
	defer srv.Close()

	svc := NewService(Config{QuoteBaseURL: srv.URL}, nil)
	quote, err := svc.GetQuote(context.Background(), QuoteRequest{
		InputMint:   "MintIn",
		OutputMint:  "MintOut",
		Amount:      1_000_000,
		SlippageBps: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, "985000", quote.OutAmount)
	assert.InDelta(t, 0.0012, quote.PriceImpactPct, 1e-9)
	require.Len(t, quote.Route, 2)
	// Registered program id wins over the provider label.
	assert.Equal(t, "Raydium", quote.Route[0].Protocol)
	// Unregistered venue falls back to the provider label.
	assert.Equal(t, "Aldrin", quote.Route[1].Protocol)
	assert.Equal(t, float64(60), quote.Route[0].Percent)
}

func TestGetTokenMetadata_FromProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/SomeMint", r.URL.Path)
		w.Write([]byte(`{"address":"SomeMint","name":"Some Token","symbol":"SOME","decimals":6,"logoURI":"https://img.example/some.png"}`))
	}))
	defer srv.Close()

	svc := NewService(Config{TokenBaseURL: srv.URL}, nil)
	meta, err := svc.GetTokenMetadata(context.Background(), "SomeMint")
	require.NoError(t, err)

	assert.Equal(t, "SOME", meta.Symbol)
	assert.Equal(t, 6, meta.Decimals)
	assert.Equal(t, "provider", meta.Source)
}

func TestGetTokenMetadata_RegistryFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewService(Config{TokenBaseURL: srv.URL}, nil)
	meta, err := svc.GetTokenMetadata(context.Background(), "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	require.NoError(t, err)

	assert.Equal(t, "USDC", meta.Symbol)
	assert.Equal(t, "registry", meta.Source)
}

func TestGetTokenMetadata_UnknownMint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewService(Config{TokenBaseURL: srv.URL}, nil)
	_, err := svc.GetTokenMetadata(context.Background(), "NotARealMint")
	assert.ErrorIs(t, err, errors.ErrTokenNotFound)
}
