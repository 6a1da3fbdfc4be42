// Package intel orchestrates a wallet analysis: it fans the chain lookups
// out in parallel, waits for all of them, and only then hands the assembled
// snapshot to the pure scoring core. All scoring semantics live in
// services/risk; this package owns fetching, recording, and metrics.
package intel

import (
	"context"
	"log"

	"solsight/internal/metrics"
	"solsight/internal/models"
	"solsight/internal/services/risk"
	"solsight/internal/services/solana"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Activity limits per call site. The listing endpoint clamps caller input to
// MaxActivityLimit; the analysis paths use fixed depths.
const (
	DefaultActivityLimit  = 20
	MaxActivityLimit      = 100
	overviewActivityLimit = 10
	riskActivityLimit     = 20
	anomalyActivityLimit  = 50
)

// ScanRecorder persists completed analyses. Split out so tests can substitute
// a fake store.
type ScanRecorder interface {
	Create(record *models.ScanRecord) error
}

// WalletOverview is the combined snapshot + recent signatures payload.
type WalletOverview struct {
	Snapshot       models.WalletSnapshot   `json:"snapshot"`
	RecentActivity []models.ActivityRecord `json:"recent_activity"`
}

// WalletAnalysis is the full pipeline output for one wallet.
type WalletAnalysis struct {
	ScanID    string                `json:"scan_id,omitempty"`
	Snapshot  models.WalletSnapshot `json:"snapshot"`
	Risk      models.RiskAssessment `json:"risk"`
	Anomalies models.AnomalyReport  `json:"anomalies"`
}

type Service struct {
	chain solana.Reader
	scans ScanRecorder
}

// NewService creates the orchestrator. scans may be nil, which disables
// history recording without affecting analysis results.
func NewService(chain solana.Reader, scans ScanRecorder) *Service {
	return &Service{
		chain: chain,
		scans: scans,
	}
}

// fetch assembles a wallet snapshot plus activity in parallel. withHoldings
// skips the token-account scan for call sites that do not need it.
func (s *Service) fetch(ctx context.Context, address string, limit int, withHoldings bool) (models.WalletSnapshot, []models.ActivityRecord, error) {
	snapshot := models.WalletSnapshot{Address: address}
	var activity []models.ActivityRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := s.chain.GetBalance(gctx, address)
		if err != nil {
			return err
		}
		snapshot.SolBalance = balance
		return nil
	})
	if withHoldings {
		g.Go(func() error {
			holdings, err := s.chain.GetTokenHoldings(gctx, address)
			if err != nil {
				return err
			}
			snapshot.TokenHoldings = holdings
			return nil
		})
	}
	g.Go(func() error {
		records, err := s.chain.GetRecentActivity(gctx, address, limit)
		if err != nil {
			return err
		}
		activity = records
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.WalletSnapshot{}, nil, err
	}
	return snapshot, activity, nil
}

// Overview returns the wallet snapshot and its 10 most recent signatures.
func (s *Service) Overview(ctx context.Context, address string) (*WalletOverview, error) {
	snapshot, activity, err := s.fetch(ctx, address, overviewActivityLimit, true)
	if err != nil {
		return nil, err
	}
	return &WalletOverview{Snapshot: snapshot, RecentActivity: activity}, nil
}

// Activity lists recent signatures at the caller's (pre-clamped) limit.
func (s *Service) Activity(ctx context.Context, address string, limit int) ([]models.ActivityRecord, error) {
	return s.chain.GetRecentActivity(ctx, address, limit)
}

// AssessRisk runs the risk scorer over a fresh snapshot.
func (s *Service) AssessRisk(ctx context.Context, address string) (*models.RiskAssessment, error) {
	snapshot, activity, err := s.fetch(ctx, address, riskActivityLimit, true)
	if err != nil {
		return nil, err
	}
	assessment := risk.Score(snapshot, activity)
	return &assessment, nil
}

// ScanAnomalies runs the anomaly detector over a fresh snapshot. The detector
// never reads token holdings, so that lookup is skipped.
func (s *Service) ScanAnomalies(ctx context.Context, address string) (*models.AnomalyReport, error) {
	snapshot, activity, err := s.fetch(ctx, address, anomalyActivityLimit, false)
	if err != nil {
		return nil, err
	}
	report := risk.DetectAnomalies(snapshot, activity)
	for _, a := range report.Anomalies {
		metrics.RecordAnomaly(a.Type)
	}
	return &report, nil
}

// Analyze runs the full pipeline: one fetch at anomaly depth, scoring over
// the newest 20 records (the scorer's fixed call-site depth), anomaly
// detection over all 50, and a history record when a recorder is configured.
func (s *Service) Analyze(ctx context.Context, address string) (*WalletAnalysis, error) {
	snapshot, activity, err := s.fetch(ctx, address, anomalyActivityLimit, true)
	if err != nil {
		return nil, err
	}

	scoringWindow := activity
	if len(scoringWindow) > riskActivityLimit {
		scoringWindow = scoringWindow[:riskActivityLimit]
	}
	assessment := risk.Score(snapshot, scoringWindow)
	report := risk.DetectAnomalies(snapshot, activity)

	metrics.RecordScan(string(assessment.Level))
	for _, a := range report.Anomalies {
		metrics.RecordAnomaly(a.Type)
	}

	analysis := &WalletAnalysis{
		Snapshot:  snapshot,
		Risk:      assessment,
		Anomalies: report,
	}

	if s.scans != nil {
		record := &models.ScanRecord{
			ID:            uuid.NewString(),
			Address:       address,
			SolBalance:    snapshot.SolBalance,
			TokenCount:    len(snapshot.TokenHoldings),
			ActivityCount: len(activity),
			RiskScore:     assessment.Score,
			RiskLevel:     assessment.Level,
			Factors:       models.StringSlice(assessment.Factors),
			Anomalies:     models.AnomalySlice(report.Anomalies),
			OverallRisk:   report.OverallRisk,
		}
		if err := s.scans.Create(record); err != nil {
			// History is best-effort; the analysis itself already succeeded.
			log.Printf("failed to record scan for %s: %v", address, err)
		} else {
			analysis.ScanID = record.ID
		}
	}

	return analysis, nil
}
