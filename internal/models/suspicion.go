package models

// RiskLevel classifies a suspicion index against configured thresholds.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskNormal RiskLevel = "NORMAL"
)

// SuspiciousTransaction is one transaction annotated with its anomaly
// scores. AmountScore and TextScore are normalized to [0, 1];
// SuspicionIndex is their weighted combination.
type SuspiciousTransaction struct {
	Transaction    Transaction `json:"transaction" yaml:"transaction"`
	SuspicionIndex float64     `json:"suspicion_index" yaml:"suspicion_index"`
	AmountScore    float64     `json:"amount_score" yaml:"amount_score"`
	TextScore      float64     `json:"text_score" yaml:"text_score"`
	RiskLevel      RiskLevel   `json:"risk_level" yaml:"risk_level"`
}
