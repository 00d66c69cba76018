package service

import (
	"testing"

	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityService_DefaultAnalysis(t *testing.T) {
	analysis := NewSecurityService(nil).Analysis()

	assert.Equal(t, 95, analysis.CurrentScore)
	assert.Equal(t, 100, analysis.MaxScore)
	assert.Len(t, analysis.Factors, 7)
	assert.Empty(t, analysis.CriticalIssues)

	require.Len(t, analysis.Improvements, 1)
	assert.Equal(t, "two-factor-auth", analysis.Improvements[0].ID)

	assert.Equal(t, []string{
		"Enable 2FA for all credential operations",
		"Complete 2FA setup to add an extra layer of security",
	}, analysis.Recommendations)
}

func TestSecurityService_DisabledFactors(t *testing.T) {
	factors := []models.SecurityFactor{
		{ID: "pin", Name: "PIN", Status: models.FactorEnabled, Impact: 40},
		{ID: "backup", Name: "Backup", Status: models.FactorDisabled, Impact: 20, Recommendation: "Turn on backups", ActionRequired: "Settings → Backup"},
		{ID: "alerts", Name: "Alerts", Status: models.FactorDisabled, Impact: 10},
		{ID: "2fa", Name: "2FA", Status: models.FactorPartial, Impact: 30},
	}
	svc := NewSecurityService(factors)

	analysis := svc.Analysis()
	assert.Equal(t, 55, analysis.CurrentScore)
	assert.Equal(t, 100, analysis.MaxScore)

	require.Len(t, analysis.CriticalIssues, 1)
	assert.Equal(t, "backup", analysis.CriticalIssues[0].ID)
	assert.Len(t, analysis.Improvements, 3)
	assert.Equal(t, []string{
		"Turn on backups",
		"Enable all available security features for maximum protection",
	}, analysis.Recommendations)

	assert.Equal(t, models.ScoreBreakdown{Enabled: 40, Partial: 15, Disabled: 30, Missing: 30}, svc.ScoreBreakdown())
	assert.Equal(t, []string{"Backup: Settings → Backup"}, svc.RecommendationsForPerfectScore())
}

func TestSecurityService_ScoreBreakdown_Default(t *testing.T) {
	got := NewSecurityService(nil).ScoreBreakdown()
	assert.Equal(t, models.ScoreBreakdown{Enabled: 90, Partial: 5, Disabled: 0, Missing: 0}, got)
}

func TestSecurityService_RecommendationsForPerfectScore(t *testing.T) {
	assert.Equal(t,
		[]string{"Two-Factor Authentication: Go to Security Settings → Enable 2FA"},
		NewSecurityService(nil).RecommendationsForPerfectScore(),
	)

	perfect := NewSecurityService([]models.SecurityFactor{{ID: "a", Status: models.FactorEnabled, Impact: 100}})
	got := perfect.RecommendationsForPerfectScore()
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "already at 100%")

	noActions := NewSecurityService([]models.SecurityFactor{
		{ID: "a", Status: models.FactorEnabled, Impact: 50},
		{ID: "b", Status: models.FactorDisabled, Impact: 50},
	})
	assert.Equal(t, []string{"Review all security settings and ensure they are properly configured"}, noActions.RecommendationsForPerfectScore())
}

func TestSecurityService_AnalysisReturnsCopy(t *testing.T) {
	svc := NewSecurityService(nil)

	analysis := svc.Analysis()
	analysis.Factors[0].Status = models.FactorDisabled

	assert.Equal(t, 95, svc.Analysis().CurrentScore)
}

func TestSecurityService_SecurityTips(t *testing.T) {
	assert.Len(t, NewSecurityService(nil).SecurityTips(), 7)
}
