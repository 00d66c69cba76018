package models

// FactorStatus is the rollout state of a security factor.
type FactorStatus string

const (
	FactorEnabled  FactorStatus = "enabled"
	FactorDisabled FactorStatus = "disabled"
	FactorPartial  FactorStatus = "partial"
)

// SecurityFactor is one line of the security score table. Impact is the
// number of points the factor contributes when fully enabled.
type SecurityFactor struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Status         FactorStatus `json:"currentStatus"`
	Impact         int          `json:"impact"`
	Category       string       `json:"category"`
	Recommendation string       `json:"recommendation,omitempty"`
	ActionRequired string       `json:"actionRequired,omitempty"`
}

// SecurityAnalysis is the computed security report.
type SecurityAnalysis struct {
	CurrentScore    int              `json:"currentScore"`
	MaxScore        int              `json:"maxScore"`
	Factors         []SecurityFactor `json:"factors"`
	Recommendations []string         `json:"recommendations"`
	CriticalIssues  []SecurityFactor `json:"criticalIssues"`
	Improvements    []SecurityFactor `json:"improvements"`
}

// ScoreBreakdown splits the max score by factor status. Partial counts half
// of the partial factors' impact; Missing is what is left to gain.
type ScoreBreakdown struct {
	Enabled  float64 `json:"enabled"`
	Partial  float64 `json:"partial"`
	Disabled float64 `json:"disabled"`
	Missing  float64 `json:"missing"`
}
