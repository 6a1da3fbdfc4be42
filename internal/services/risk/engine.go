// Package risk implements the heuristic scoring core: a set of stateless,
// deterministic rules that turn a wallet snapshot and its recent activity
// into a risk assessment and an anomaly report. The functions here never
// block, never error, and never mutate their inputs; empty histories and
// missing block times are valid degenerate cases, not failures.
package risk

import "solsight/internal/models"

// Score evaluates the additive red-flag rules over a wallet snapshot and its
// recent activity (most-recent-first). Every rule is independent; none
// short-circuits another. Factors are appended in evaluation order.
func Score(wallet models.WalletSnapshot, activity []models.ActivityRecord) models.RiskAssessment {
	score := 0
	factors := []string{}

	if wallet.SolBalance < lowBalanceThreshold {
		score += lowBalancePoints
		factors = append(factors, "low_sol_balance")
	}

	if len(activity) == 0 {
		score += noActivityPoints
		factors = append(factors, "no_recent_activity")
	}

	if len(wallet.TokenHoldings) == 0 {
		score += noHoldingsPoints
		factors = append(factors, "no_token_holdings")
	}

	// High-frequency rule: span across the newest 15 records. Needs at least
	// two stamped records to form a span at all.
	if len(activity) >= highFrequencySample {
		times := blockTimes(activity[:highFrequencySample])
		if len(times) >= 2 {
			newest, oldest := times[0], times[0]
			for _, t := range times[1:] {
				if t > newest {
					newest = t
				}
				if t < oldest {
					oldest = t
				}
			}
			if newest-oldest < highFrequencyWindow {
				score += highFrequencyPoints
				factors = append(factors, "high_frequency_activity")
			}
		}
	}

	return models.RiskAssessment{
		Score:   score,
		Level:   levelFor(score),
		Factors: factors,
	}
}

// levelFor buckets a score. The score itself is unbounded above.
func levelFor(score int) models.RiskLevel {
	switch {
	case score >= highLevelFloor:
		return models.RiskHigh
	case score >= mediumLevelFloor:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// blockTimes extracts the defined block times of a slice of records,
// preserving record order (most-recent-first).
func blockTimes(activity []models.ActivityRecord) []int64 {
	times := make([]int64, 0, len(activity))
	for _, rec := range activity {
		if rec.BlockTime != nil {
			times = append(times, *rec.BlockTime)
		}
	}
	return times
}
