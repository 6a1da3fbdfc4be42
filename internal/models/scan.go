package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AnomalySlice stores the ordered anomaly list of a scan as a JSON column.
type AnomalySlice []Anomaly

// Value implements the driver.Valuer interface
func (a AnomalySlice) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]Anomaly{})
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *AnomalySlice) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("unsupported scan source for AnomalySlice")
	}
	return json.Unmarshal(bytes, a)
}

// ScanRecord persists one completed wallet analysis for the history API.
// The scoring itself never reads these rows; they are write-once audit data.
type ScanRecord struct {
	ID            string       `gorm:"primarykey;size:36" json:"id"`
	Address       string       `gorm:"index;not null" json:"address"`
	SolBalance    float64      `json:"sol_balance"`
	TokenCount    int          `json:"token_count"`
	ActivityCount int          `json:"activity_count"`
	RiskScore     int          `json:"risk_score"`
	RiskLevel     RiskLevel    `gorm:"size:16" json:"risk_level"`
	Factors       StringSlice  `gorm:"type:jsonb" json:"factors"`
	Anomalies     AnomalySlice `gorm:"type:jsonb" json:"anomalies"`
	OverallRisk   RiskLevel    `gorm:"size:16" json:"overall_risk"`
	CreatedAt     time.Time    `json:"created_at"`
}
