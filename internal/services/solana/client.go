// Package solana is the JSON-RPC client for the chain endpoint. It covers
// exactly the three lookups the analysis pipeline needs: native balance,
// token holdings, and signature history.
package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"solsight/internal/models"
)

// Reader is the chain capability consumed by the intel service. Split out so
// tests can substitute a fake chain.
type Reader interface {
	GetBalance(ctx context.Context, address string) (float64, error)
	GetTokenHoldings(ctx context.Context, address string) ([]models.TokenHolding, error)
	GetRecentActivity(ctx context.Context, address string, limit int) ([]models.ActivityRecord, error)
}

type Client struct {
	endpoint string
	hc       *http.Client
}

// NewClient creates a client for a Solana JSON-RPC endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		hc: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("rpc %s status=%d", method, resp.StatusCode)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("rpc %s decode: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("rpc %s: %s (code %d)", method, envelope.Error.Message, envelope.Error.Code)
	}
	return json.Unmarshal(envelope.Result, out)
}

// GetBalance returns the native balance in SOL.
func (c *Client) GetBalance(ctx context.Context, address string) (float64, error) {
	var result balanceResult
	if err := c.call(ctx, "getBalance", []interface{}{address}, &result); err != nil {
		return 0, err
	}
	return float64(result.Value) / lamportsPerSol, nil
}

// GetTokenHoldings returns the wallet's SPL token positions, RPC order
// preserved, filtered to positive balances.
func (c *Client) GetTokenHoldings(ctx context.Context, address string) ([]models.TokenHolding, error) {
	params := []interface{}{
		address,
		map[string]string{"programId": TokenProgramID},
		map[string]string{"encoding": "jsonParsed"},
	}
	var result tokenAccountsResult
	if err := c.call(ctx, "getTokenAccountsByOwner", params, &result); err != nil {
		return nil, err
	}

	holdings := make([]models.TokenHolding, 0, len(result.Value))
	for _, acct := range result.Value {
		info := acct.Account.Data.Parsed.Info
		if info.TokenAmount.UIAmount == nil || *info.TokenAmount.UIAmount <= 0 {
			continue
		}
		holdings = append(holdings, models.TokenHolding{
			Mint:      info.Mint,
			UIBalance: *info.TokenAmount.UIAmount,
		})
	}
	return holdings, nil
}

// GetRecentActivity returns up to limit confirmed signatures, newest first.
// Failed is derived from the err field; blockTime passes through as reported,
// including null.
func (c *Client) GetRecentActivity(ctx context.Context, address string, limit int) ([]models.ActivityRecord, error) {
	params := []interface{}{
		address,
		map[string]int{"limit": limit},
	}
	var sigs []signatureInfo
	if err := c.call(ctx, "getSignaturesForAddress", params, &sigs); err != nil {
		return nil, err
	}

	records := make([]models.ActivityRecord, 0, len(sigs))
	for _, sig := range sigs {
		records = append(records, models.ActivityRecord{
			Signature: sig.Signature,
			BlockTime: sig.BlockTime,
			Failed:    len(sig.Err) > 0 && string(sig.Err) != "null",
		})
	}
	return records, nil
}
