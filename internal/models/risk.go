package models

// RiskLevel buckets an additive risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Severity grades a single anomaly. Info entries are advisory only and never
// raise the report's overall risk.
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskAssessment is the output of the risk scorer. Factors appear in rule
// evaluation order. Score is additive and has no upper bound.
type RiskAssessment struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// Anomaly is a single flagged pattern in wallet activity.
type Anomaly struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// AnomalyReport is the output of the anomaly detector. OverallRisk is the
// highest severity present among high and medium entries, else low.
type AnomalyReport struct {
	Anomalies   []Anomaly `json:"anomalies"`
	OverallRisk RiskLevel `json:"overall_risk"`
}
