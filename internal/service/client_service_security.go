// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"

	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	twoFactorFactorID = "two-factor-auth"
	criticalImpact    = 15
	perfectScore      = 100
)

// DefaultSecurityFactors is the factor table the wallet reports on.
func DefaultSecurityFactors() []models.SecurityFactor {
	return []models.SecurityFactor{
		{ID: "biometric-auth", Name: "Biometric Authentication", Description: "Fingerprint and face recognition enabled", Status: models.FactorEnabled, Impact: 25, Category: "authentication"},
		{ID: "pin-protection", Name: "PIN Protection", Description: "4-digit PIN for app access", Status: models.FactorEnabled, Impact: 15, Category: "authentication"},
		{
			ID:             twoFactorFactorID,
			Name:           "Two-Factor Authentication",
			Description:    "SMS/Email verification for sensitive operations",
			Status:         models.FactorPartial,
			Impact:         10,
			Category:       "authentication",
			Recommendation: "Enable 2FA for all credential operations",
			ActionRequired: "Go to Security Settings → Enable 2FA",
		},
		{ID: "end-to-end-encryption", Name: "End-to-End Encryption", Description: "AES-256 encryption for all stored documents", Status: models.FactorEnabled, Impact: 20, Category: "encryption"},
		{ID: "blockchain-backup", Name: "Blockchain Backup", Description: "Document hashes stored on blockchain", Status: models.FactorEnabled, Impact: 15, Category: "backup"},
		{ID: "secure-connection", Name: "Secure Connection", Description: "TLS 1.3 for all network communications", Status: models.FactorEnabled, Impact: 10, Category: "network"},
		{ID: "anomaly-detection", Name: "AI Anomaly Detection", Description: "Machine learning-based threat detection", Status: models.FactorEnabled, Impact: 5, Category: "monitoring"},
	}
}

type securityService struct {
	factors []models.SecurityFactor
}

// NewSecurityService scores factors, or DefaultSecurityFactors when nil.
func NewSecurityService(factors []models.SecurityFactor) SecurityService {
	if factors == nil {
		factors = DefaultSecurityFactors()
	}
	return &securityService{factors: factors}
}

func (s *securityService) byStatus(status models.FactorStatus) []models.SecurityFactor {
	var out []models.SecurityFactor
	for _, f := range s.factors {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out
}

func sumImpact(factors []models.SecurityFactor) int {
	total := 0
	for _, f := range factors {
		total += f.Impact
	}
	return total
}

// Analysis scores enabled factors in full and partial ones at half weight.
func (s *securityService) Analysis() models.SecurityAnalysis {
	enabled := s.byStatus(models.FactorEnabled)
	partial := s.byStatus(models.FactorPartial)
	disabled := s.byStatus(models.FactorDisabled)

	score := float64(sumImpact(enabled)) + 0.5*float64(sumImpact(partial))
	maxScore := sumImpact(s.factors)

	var recommendations []string
	for _, f := range append(append([]models.SecurityFactor{}, partial...), disabled...) {
		if f.Recommendation != "" {
			recommendations = append(recommendations, f.Recommendation)
		}
	}
	if score < float64(maxScore) {
		for _, f := range partial {
			if f.ID == twoFactorFactorID {
				recommendations = append(recommendations, "Complete 2FA setup to add an extra layer of security")
				break
			}
		}
		if len(disabled) > 0 {
			recommendations = append(recommendations, "Enable all available security features for maximum protection")
		}
	}

	var critical []models.SecurityFactor
	for _, f := range disabled {
		if f.Impact >= criticalImpact {
			critical = append(critical, f)
		}
	}

	factors := make([]models.SecurityFactor, len(s.factors))
	copy(factors, s.factors)

	return models.SecurityAnalysis{
		CurrentScore:    int(math.Round(score)),
		MaxScore:        maxScore,
		Factors:         factors,
		Recommendations: recommendations,
		CriticalIssues:  critical,
		Improvements:    append(append([]models.SecurityFactor{}, partial...), disabled...),
	}
}

// ScoreBreakdown reports Partial at half weight; Missing is what neither
// enabled factors nor the full impact of partial ones cover.
func (s *securityService) ScoreBreakdown() models.ScoreBreakdown {
	enabled := float64(sumImpact(s.byStatus(models.FactorEnabled)))
	partial := 0.5 * float64(sumImpact(s.byStatus(models.FactorPartial)))
	disabled := float64(sumImpact(s.byStatus(models.FactorDisabled)))
	maxScore := float64(sumImpact(s.factors))

	return models.ScoreBreakdown{
		Enabled:  enabled,
		Partial:  partial,
		Disabled: disabled,
		Missing:  maxScore - enabled - 2*partial,
	}
}

func (s *securityService) RecommendationsForPerfectScore() []string {
	analysis := s.Analysis()
	if analysis.CurrentScore == perfectScore {
		return []string{"🎉 Perfect! Your security score is already at 100%"}
	}

	var out []string
	for _, f := range analysis.Improvements {
		if f.ActionRequired != "" {
			out = append(out, f.Name+": "+f.ActionRequired)
		}
	}
	if len(out) == 0 && analysis.CurrentScore < perfectScore {
		out = append(out, "Review all security settings and ensure they are properly configured")
	}
	return out
}

func (s *securityService) SecurityTips() []string {
	return []string{
		"🔐 Use strong, unique passwords for all accounts",
		"📱 Keep your device updated with latest security patches",
		"🚫 Never share your credentials via email or SMS",
		"🔍 Regularly review your security settings and activity logs",
		"💾 Enable automatic backups for your important documents",
		"🌐 Only use secure networks for sensitive operations",
		"⚠️ Report any suspicious activity immediately",
	}
}
