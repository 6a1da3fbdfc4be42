package risk

import (
	"fmt"
	"math"
	"sort"

	"solsight/internal/models"
)

// DetectAnomalies runs the six independent anomaly rules over a wallet
// snapshot and its recent activity (most-recent-first, 50 records at most
// from the standard call site). Each rule appends zero or one entry; all are
// evaluated regardless of earlier matches, so entry order is rule order.
func DetectAnomalies(wallet models.WalletSnapshot, activity []models.ActivityRecord) models.AnomalyReport {
	anomalies := []models.Anomaly{}

	// Rule 1: failure rate.
	if len(activity) > 0 {
		failed := 0
		for _, rec := range activity {
			if rec.Failed {
				failed++
			}
		}
		rate := float64(failed) / float64(len(activity))
		if rate > failureRateThreshold {
			anomalies = append(anomalies, models.Anomaly{
				Type:        "high_failure_rate",
				Severity:    models.SeverityMedium,
				Description: fmt.Sprintf("%.1f%% of recent transactions failed", rate*100),
			})
		}
	}

	// Rule 2: burst activity across the 10 most recent stamped records.
	if len(activity) >= burstMinRecords {
		times := blockTimes(activity)
		if len(times) >= burstSample {
			span := times[0] - times[burstSample-1]
			if span < burstWindow {
				anomalies = append(anomalies, models.Anomaly{
					Type:        "burst_activity",
					Severity:    models.SeverityHigh,
					Description: fmt.Sprintf("%d transactions within %d seconds", burstSample, span),
				})
			}
		}
	}

	// Rule 3: whale balance. Informational only.
	if wallet.SolBalance >= whaleBalanceThreshold {
		anomalies = append(anomalies, models.Anomaly{
			Type:        "whale_wallet",
			Severity:    models.SeverityInfo,
			Description: fmt.Sprintf("wallet holds %.2f SOL", wallet.SolBalance),
		})
	}

	// Rule 4: drained wallet.
	if wallet.SolBalance < drainedBalanceThreshold && len(activity) > drainedMinActivity {
		anomalies = append(anomalies, models.Anomaly{
			Type:        "drained_wallet",
			Severity:    models.SeverityHigh,
			Description: "near-zero balance despite recent transaction activity",
		})
	}

	// Rule 5: repeated signature prefixes. This groups by the first 10
	// characters of the signature, not by counterparty; signature prefixes
	// are effectively random, so the rule rarely fires. Kept as-is on
	// purpose: stored reports from the previous deployment must stay
	// comparable.
	groups := map[string]int{}
	for _, rec := range activity {
		prefix := rec.Signature
		if len(prefix) > circularPrefixLen {
			prefix = prefix[:circularPrefixLen]
		}
		groups[prefix]++
	}
	qualifying := 0
	for _, n := range groups {
		if n >= circularGroupSize {
			qualifying++
		}
	}
	if qualifying >= circularGroupsFloor {
		anomalies = append(anomalies, models.Anomaly{
			Type:        "circular_trading",
			Severity:    models.SeverityMedium,
			Description: fmt.Sprintf("%d repeated transaction patterns detected", qualifying),
		})
	}

	// Rule 6: automated timing. A near-constant inter-arrival interval over
	// the stamped records points at a bot.
	if len(activity) >= regularMinRecords {
		times := blockTimes(activity)
		if len(times) >= regularMinStamped {
			sort.Slice(times, func(i, j int) bool { return times[i] > times[j] })
			intervals := make([]float64, 0, len(times)-1)
			for i := 0; i < len(times)-1; i++ {
				intervals = append(intervals, float64(times[i]-times[i+1]))
			}
			mean := meanOf(intervals)
			if mean > 0 {
				cv := stddevOf(intervals, mean) / mean
				if cv < regularCVThreshold {
					anomalies = append(anomalies, models.Anomaly{
						Type:        "automated_timing",
						Severity:    models.SeverityMedium,
						Description: fmt.Sprintf("transaction intervals are unusually regular (cv=%.3f)", cv),
					})
				}
			}
		}
	}

	return models.AnomalyReport{
		Anomalies:   anomalies,
		OverallRisk: overallRisk(anomalies),
	}
}

// overallRisk is the highest severity present among high and medium entries.
// Info entries never elevate the report.
func overallRisk(anomalies []models.Anomaly) models.RiskLevel {
	risk := models.RiskLow
	for _, a := range anomalies {
		switch a.Severity {
		case models.SeverityHigh:
			return models.RiskHigh
		case models.SeverityMedium:
			risk = models.RiskMedium
		}
	}
	return risk
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddevOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}
