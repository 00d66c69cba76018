// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CredentialStatus is the verification state shown on a credential card.
type CredentialStatus string

const (
	StatusVerified CredentialStatus = "verified"
	StatusPending  CredentialStatus = "pending"
	StatusExpired  CredentialStatus = "expired"
)

// CredentialKind selects the sample document layout for a credential.
type CredentialKind int

const (
	KindGovernmentID CredentialKind = iota
	KindEducation
	KindFinancial
	KindProfessional
)

// Credential type labels as displayed on the cards.
const (
	TypeGovernmentID = "Government ID"
	TypeEducation    = "Education"
	TypeFinancial    = "Financial"
	TypeProfessional = "Professional"
)

// Credential is a read-only sample credential.
// ExpiryDate is empty when the credential has no expiry shown.
type Credential struct {
	Title        string           `json:"title" xml:"title"`
	Issuer       string           `json:"issuer" xml:"issuer"`
	Type         string           `json:"type" xml:"type"`
	Status       CredentialStatus `json:"status" xml:"status"`
	IssueDate    string           `json:"issueDate" xml:"issueDate"`
	ExpiryDate   string           `json:"expiryDate,omitempty" xml:"expiryDate,omitempty"`
	CredentialID string           `json:"credentialId" xml:"credentialId"`
}

// Kind maps the display type to a CredentialKind. Any type without its own
// layout is shown with the professional layout.
func (c Credential) Kind() CredentialKind {
	switch c.Type {
	case TypeGovernmentID:
		return KindGovernmentID
	case TypeEducation:
		return KindEducation
	case TypeFinancial:
		return KindFinancial
	default:
		return KindProfessional
	}
}

// CredentialStats counts credentials by status.
type CredentialStats struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Pending  int `json:"pending"`
	Expired  int `json:"expired"`
}

// Field is one labelled value on a document detail view.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DocumentDetails is the sample field set shown when a credential is opened.
type DocumentDetails struct {
	DocumentNumber      string  `json:"documentNumber"`
	PersonalInfo        []Field `json:"personalInfo"`
	VerificationDetails []Field `json:"verificationDetails"`
}

// SampleCredentials returns the fixed credential fixtures in display order.
// Each call returns a fresh slice.
func SampleCredentials() []Credential {
	return []Credential{
		{
			Title:        "Aadhaar Identity",
			Issuer:       "UIDAI",
			Type:         TypeGovernmentID,
			Status:       StatusVerified,
			IssueDate:    "15 Jan 2024",
			CredentialID: "did:bharat:a1b2c3d4",
		},
		{
			Title:        "Digital University Degree",
			Issuer:       "IIT Delhi",
			Type:         TypeEducation,
			Status:       StatusVerified,
			IssueDate:    "22 May 2023",
			ExpiryDate:   "Never",
			CredentialID: "did:bharat:e5f6g7h8",
		},
		{
			Title:        "Bank KYC Certificate",
			Issuer:       "State Bank of India",
			Type:         TypeFinancial,
			Status:       StatusVerified,
			IssueDate:    "10 Mar 2024",
			ExpiryDate:   "10 Mar 2025",
			CredentialID: "did:bharat:i9j0k1l2",
		},
		{
			Title:        "Professional License",
			Issuer:       "Bar Council of India",
			Type:         TypeProfessional,
			Status:       StatusPending,
			IssueDate:    "28 Feb 2024",
			ExpiryDate:   "28 Feb 2027",
			CredentialID: "did:bharat:m3n4o5p6",
		},
	}
}

// ExportFormat is a supported export serialization.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatXML  ExportFormat = "xml"
)

// ExportFormatInfo describes an export format for selection lists.
type ExportFormatInfo struct {
	Value       ExportFormat
	Label       string
	Description string
}
