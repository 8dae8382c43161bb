package models

import "encoding/json"

// RiskLevel orders finding severity: Critical > High > Medium > Low > Info.
type RiskLevel int

const (
	RiskInfo RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

func (l RiskLevel) String() string {
	switch l {
	case RiskCritical:
		return "CRITICAL"
	case RiskHigh:
		return "HIGH"
	case RiskMedium:
		return "MEDIUM"
	case RiskLow:
		return "LOW"
	default:
		return "INFO"
	}
}

// MarshalJSON renders the level as its string name
func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// RiskFlag is a single finding produced by the risk classifier
type RiskFlag struct {
	Level          RiskLevel `json:"level"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Value          string    `json:"value,omitempty"`
	Recommendation string    `json:"recommendation,omitempty"`
}
