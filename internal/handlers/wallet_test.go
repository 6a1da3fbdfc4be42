package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"solsight/internal/models"
	"solsight/internal/services/intel"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChain serves fixed wallet state for handler tests.
type stubChain struct {
	balance  float64
	holdings []models.TokenHolding
	activity []models.ActivityRecord
}

func (s *stubChain) GetBalance(ctx context.Context, address string) (float64, error) {
	return s.balance, nil
}

func (s *stubChain) GetTokenHoldings(ctx context.Context, address string) ([]models.TokenHolding, error) {
	return s.holdings, nil
}

func (s *stubChain) GetRecentActivity(ctx context.Context, address string, limit int) ([]models.ActivityRecord, error) {
	if len(s.activity) > limit {
		return s.activity[:limit], nil
	}
	return s.activity, nil
}

func newWalletApp(chain *stubChain) *fiber.App {
	app := fiber.New()
	handler := NewWalletHandler(intel.NewService(chain, nil))
	app.Get("/api/wallet/:address/risk", handler.GetRisk)
	app.Get("/api/wallet/:address/activity", handler.GetActivity)
	return app
}

const testAddress = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

func TestGetRisk_DormantWallet(t *testing.T) {
	app := newWalletApp(&stubChain{balance: 0.05})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wallet/"+testAddress+"/risk", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Address string                `json:"address"`
			Risk    models.RiskAssessment `json:"risk"`
		} `json:"data"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, testAddress, body.Data.Address)
	assert.Equal(t, 60, body.Data.Risk.Score)
	assert.Equal(t, models.RiskHigh, body.Data.Risk.Level)
	assert.NotEmpty(t, body.Timestamp)
}

func TestGetRisk_InvalidAddress(t *testing.T) {
	app := newWalletApp(&stubChain{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wallet/notbase58!!/risk", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetActivity_ClampsLimit(t *testing.T) {
	// 150 records available; the handler must clamp the requested 500 to 100.
	activity := make([]models.ActivityRecord, 150)
	for i := range activity {
		activity[i] = models.ActivityRecord{Signature: "sig"}
	}
	app := newWalletApp(&stubChain{balance: 1, activity: activity})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wallet/"+testAddress+"/activity?limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Limit    int                     `json:"limit"`
			Activity []models.ActivityRecord `json:"activity"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 100, body.Data.Limit)
	assert.Len(t, body.Data.Activity, 100)
}

func TestGetActivity_DefaultLimit(t *testing.T) {
	activity := make([]models.ActivityRecord, 50)
	for i := range activity {
		activity[i] = models.ActivityRecord{Signature: "sig"}
	}
	app := newWalletApp(&stubChain{balance: 1, activity: activity})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/wallet/"+testAddress+"/activity", nil))
	require.NoError(t, err)

	var body struct {
		Data struct {
			Limit int `json:"limit"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 20, body.Data.Limit)
}
