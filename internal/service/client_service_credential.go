package service

import (
	"github.com/MKhiriev/go-id-wallet/models"
)

const sampleHolderName = "Rahul Kumar Sharma"

type credentialService struct {
	credentials []models.Credential
}

// NewCredentialService serves creds, or the built-in samples when creds is nil.
func NewCredentialService(creds []models.Credential) CredentialService {
	if creds == nil {
		creds = models.SampleCredentials()
	}
	return &credentialService{credentials: creds}
}

// Credentials returns a copy in display order.
func (s *credentialService) Credentials() []models.Credential {
	out := make([]models.Credential, len(s.credentials))
	copy(out, s.credentials)
	return out
}

func (s *credentialService) Find(credentialID string) (models.Credential, bool) {
	for _, c := range s.credentials {
		if c.CredentialID == credentialID {
			return c, true
		}
	}
	return models.Credential{}, false
}

func (s *credentialService) Stats(creds []models.Credential) models.CredentialStats {
	stats := models.CredentialStats{Total: len(creds)}
	for _, c := range creds {
		switch c.Status {
		case models.StatusVerified:
			stats.Verified++
		case models.StatusPending:
			stats.Pending++
		case models.StatusExpired:
			stats.Expired++
		}
	}
	return stats
}

func (s *credentialService) DocumentDetails(kind models.CredentialKind) models.DocumentDetails {
	switch kind {
	case models.KindGovernmentID:
		return models.DocumentDetails{
			DocumentNumber: "1234 5678 9012",
			PersonalInfo: []models.Field{
				{Label: "Name", Value: sampleHolderName},
				{Label: "Father's Name", Value: "Suresh Kumar Sharma"},
				{Label: "Date of Birth", Value: "15/08/1995"},
				{Label: "Gender", Value: "Male"},
				{Label: "Address", Value: "123, MG Road, Sector 14, Gurgaon, Haryana - 122001"},
				{Label: "Phone", Value: "+91 98765 43210"},
				{Label: "Email", Value: "rahul.sharma@email.com"},
			},
			VerificationDetails: []models.Field{
				{Label: "Biometric Match", Value: "99.7%"},
				{Label: "Last Verified", Value: "2024-01-15 10:30 AM"},
				{Label: "Verification Count", Value: "23 times"},
			},
		}
	case models.KindEducation:
		return models.DocumentDetails{
			DocumentNumber: "DEG/2023/CSE/1247",
			PersonalInfo: []models.Field{
				{Label: "Name", Value: sampleHolderName},
				{Label: "Student ID", Value: "2019CSE1247"},
				{Label: "Course", Value: "Bachelor of Technology"},
				{Label: "Specialization", Value: "Computer Science and Engineering"},
				{Label: "University", Value: "Indian Institute of Technology Delhi"},
				{Label: "CGPA", Value: "8.9/10.0"},
				{Label: "Year of Passing", Value: "2023"},
			},
			VerificationDetails: []models.Field{
				{Label: "Digital Signature", Value: "Verified"},
				{Label: "Last Verified", Value: "2023-05-22 02:15 PM"},
				{Label: "Verification Count", Value: "5 times"},
			},
		}
	case models.KindFinancial:
		return models.DocumentDetails{
			DocumentNumber: "KYC/SBI/2024/789456",
			PersonalInfo: []models.Field{
				{Label: "Name", Value: sampleHolderName},
				{Label: "Account Number", Value: "****1234"},
				{Label: "PAN Number", Value: "ABCDE****F"},
				{Label: "Bank Branch", Value: "MG Road, Gurgaon"},
				{Label: "IFSC Code", Value: "SBIN0001234"},
				{Label: "Account Type", Value: "Savings Account"},
				{Label: "KYC Level", Value: "Full KYC Compliant"},
			},
			VerificationDetails: []models.Field{
				{Label: "Risk Profile", Value: "Low Risk"},
				{Label: "Last Verified", Value: "2024-03-10 09:45 AM"},
				{Label: "Verification Count", Value: "12 times"},
			},
		}
	case models.KindProfessional:
		return models.DocumentDetails{
			DocumentNumber: "DOC/2024/PROF/456",
			PersonalInfo: []models.Field{
				{Label: "Name", Value: sampleHolderName},
				{Label: "License Number", Value: "BAR/2024/DEL/1234"},
				{Label: "Profession", Value: "Advocate"},
				{Label: "Registration Date", Value: "28/02/2024"},
				{Label: "Valid Until", Value: "28/02/2027"},
				{Label: "Authority", Value: "Bar Council of India"},
			},
			VerificationDetails: []models.Field{
				{Label: "Status", Value: "Pending Verification"},
				{Label: "Last Verified", Value: "Processing..."},
				{Label: "Verification Count", Value: "0 times"},
			},
		}
	default:
		return s.DocumentDetails(models.KindProfessional)
	}
}
