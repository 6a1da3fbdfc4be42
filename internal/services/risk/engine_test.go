package risk

import (
	"fmt"
	"testing"

	"solsight/internal/models"

	"github.com/stretchr/testify/assert"
)

func ts(v int64) *int64 { return &v }

// activityAt builds n records spaced `step` seconds apart, newest first
// starting at `start`.
func activityAt(n int, start, step int64) []models.ActivityRecord {
	recs := make([]models.ActivityRecord, n)
	for i := 0; i < n; i++ {
		recs[i] = models.ActivityRecord{
			Signature: fmt.Sprintf("sig%02d-%dxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", i, i),
			BlockTime: ts(start - int64(i)*step),
		}
	}
	return recs
}

func TestScore_DormantEmptyWallet(t *testing.T) {
	wallet := models.WalletSnapshot{Address: "addr", SolBalance: 0.05}

	got := Score(wallet, nil)

	assert.Equal(t, 60, got.Score)
	assert.Equal(t, models.RiskHigh, got.Level)
	assert.Equal(t, []string{"low_sol_balance", "no_recent_activity", "no_token_holdings"}, got.Factors)
}

func TestScore_HighFrequencyOnly(t *testing.T) {
	wallet := models.WalletSnapshot{
		Address:       "addr",
		SolBalance:    5,
		TokenHoldings: []models.TokenHolding{{Mint: "m", UIBalance: 1}},
	}
	// 20 records spanning 500s total across the newest 15.
	activity := activityAt(20, 1_700_000_000, 25)

	got := Score(wallet, activity)

	assert.Equal(t, 15, got.Score)
	assert.Equal(t, models.RiskLow, got.Level)
	assert.Equal(t, []string{"high_frequency_activity"}, got.Factors)
}

func TestScore_Rules(t *testing.T) {
	holding := []models.TokenHolding{{Mint: "m", UIBalance: 2}}

	tests := []struct {
		name        string
		wallet      models.WalletSnapshot
		activity    []models.ActivityRecord
		wantScore   int
		wantLevel   models.RiskLevel
		wantFactors []string
	}{
		{
			name:        "healthy wallet scores zero",
			wallet:      models.WalletSnapshot{SolBalance: 12, TokenHoldings: holding},
			activity:    activityAt(5, 1_700_000_000, 7200),
			wantScore:   0,
			wantLevel:   models.RiskLow,
			wantFactors: []string{},
		},
		{
			name:        "balance just below threshold",
			wallet:      models.WalletSnapshot{SolBalance: 0.099, TokenHoldings: holding},
			activity:    activityAt(3, 1_700_000_000, 7200),
			wantScore:   20,
			wantLevel:   models.RiskMedium,
			wantFactors: []string{"low_sol_balance"},
		},
		{
			name:        "balance exactly at threshold does not flag",
			wallet:      models.WalletSnapshot{SolBalance: 0.1, TokenHoldings: holding},
			activity:    activityAt(3, 1_700_000_000, 7200),
			wantScore:   0,
			wantLevel:   models.RiskLow,
			wantFactors: []string{},
		},
		{
			name:        "no holdings",
			wallet:      models.WalletSnapshot{SolBalance: 3},
			activity:    activityAt(3, 1_700_000_000, 7200),
			wantScore:   10,
			wantLevel:   models.RiskLow,
			wantFactors: []string{"no_token_holdings"},
		},
		{
			name:        "span just inside one hour flags",
			wallet:      models.WalletSnapshot{SolBalance: 3, TokenHoldings: holding},
			activity:    activityAt(15, 1_700_000_000, 257), // span = 14*257 = 3598s
			wantScore:   15,
			wantLevel:   models.RiskLow,
			wantFactors: []string{"high_frequency_activity"},
		},
		{
			name:        "span at one hour or more not flagged",
			wallet:      models.WalletSnapshot{SolBalance: 3, TokenHoldings: holding},
			activity:    activityAt(15, 1_700_000_000, 258), // span = 14*258 = 3612s
			wantScore:   0,
			wantLevel:   models.RiskLow,
			wantFactors: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.wallet, tt.activity)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantFactors, got.Factors)
		})
	}
}

func TestScore_HighFrequencySkippedWithoutTimestamps(t *testing.T) {
	wallet := models.WalletSnapshot{SolBalance: 3, TokenHoldings: []models.TokenHolding{{Mint: "m", UIBalance: 1}}}

	activity := make([]models.ActivityRecord, 20)
	for i := range activity {
		activity[i] = models.ActivityRecord{Signature: fmt.Sprintf("sig%02d", i)}
	}
	// A single stamped record is not enough to form a span.
	activity[0].BlockTime = ts(1_700_000_000)

	got := Score(wallet, activity)
	assert.Equal(t, 0, got.Score)
	assert.Empty(t, got.Factors)
}

func TestScore_LevelBuckets(t *testing.T) {
	assert.Equal(t, models.RiskLow, levelFor(0))
	assert.Equal(t, models.RiskLow, levelFor(19))
	assert.Equal(t, models.RiskMedium, levelFor(20))
	assert.Equal(t, models.RiskMedium, levelFor(49))
	assert.Equal(t, models.RiskHigh, levelFor(50))
	assert.Equal(t, models.RiskHigh, levelFor(75))
}

func TestScore_Deterministic(t *testing.T) {
	wallet := models.WalletSnapshot{SolBalance: 0.05}
	activity := activityAt(20, 1_700_000_000, 10)

	first := Score(wallet, activity)
	second := Score(wallet, activity)

	assert.Equal(t, first, second)
	// Inputs must come back untouched.
	assert.Equal(t, int64(1_700_000_000), *activity[0].BlockTime)
	assert.Equal(t, 20, len(activity))
}
