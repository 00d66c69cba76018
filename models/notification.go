package models

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationUrgent  NotificationType = "urgent"
	NotificationUpdate  NotificationType = "update"
)

type NotificationCategory string

const (
	CategoryAadhaar      NotificationCategory = "aadhaar"
	CategoryDigitalIndia NotificationCategory = "digital-india"
	CategorySecurity     NotificationCategory = "security"
	CategoryPolicy       NotificationCategory = "policy"
	CategorySystem       NotificationCategory = "system"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Notification is a government notice shown in the notifications list.
type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Type      NotificationType     `json:"type"`
	Category  NotificationCategory `json:"category"`
	Date      time.Time            `json:"date"`
	IsRead    bool                 `json:"isRead"`
	ActionURL string               `json:"actionUrl,omitempty"`
	Priority  Priority             `json:"priority"`
	Source    string               `json:"source"`
}

func mustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleNotifications returns the notices seeded on first use.
func SampleNotifications() []Notification {
	return []Notification{
		{
			ID:        "not-001",
			Title:     "New Aadhaar Security Update Available",
			Message:   "Enhanced biometric authentication features have been rolled out. Update your security preferences to enable advanced protection.",
			Type:      NotificationUpdate,
			Category:  CategoryAadhaar,
			Date:      mustParseTime("2024-01-15T10:30:00Z"),
			Priority:  PriorityHigh,
			Source:    "UIDAI",
			ActionURL: "/security",
		},
		{
			ID:        "not-002",
			Title:     "Digital India Initiative: New Services",
			Message:   "Access to 15+ new government services now available through your digital identity. Explore healthcare, education, and financial services.",
			Type:      NotificationInfo,
			Category:  CategoryDigitalIndia,
			Date:      mustParseTime("2024-01-14T14:20:00Z"),
			Priority:  PriorityMedium,
			Source:    "Ministry of Electronics & IT",
			ActionURL: "/services",
		},
		{
			ID:        "not-003",
			Title:     "Security Alert: Phishing Attempts Detected",
			Message:   "We have detected increased phishing attempts targeting digital identity users. Never share your credentials via email or SMS.",
			Type:      NotificationWarning,
			Category:  CategorySecurity,
			Date:      mustParseTime("2024-01-13T09:15:00Z"),
			IsRead:    true,
			Priority:  PriorityHigh,
			Source:    "Cyber Security Division",
			ActionURL: "/security-tips",
		},
		{
			ID:       "not-004",
			Title:    "Policy Update: Data Privacy Enhancement",
			Message:  "New data privacy regulations are now in effect. Your personal data is now protected with additional encryption layers.",
			Type:     NotificationInfo,
			Category: CategoryPolicy,
			Date:     mustParseTime("2024-01-12T16:45:00Z"),
			IsRead:   true,
			Priority: PriorityMedium,
			Source:   "Data Protection Authority",
		},
		{
			ID:       "not-005",
			Title:    "System Maintenance Scheduled",
			Message:  "Scheduled maintenance on Jan 20, 2024 from 2:00 AM to 4:00 AM IST. Some services may be temporarily unavailable.",
			Type:     NotificationInfo,
			Category: CategorySystem,
			Date:     mustParseTime("2024-01-11T11:00:00Z"),
			Priority: PriorityLow,
			Source:   "Technical Operations",
		},
		{
			ID:        "not-006",
			Title:     "Urgent: Verify Your Mobile Number",
			Message:   "Your registered mobile number needs verification within 7 days to maintain account security. Click to verify now.",
			Type:      NotificationUrgent,
			Category:  CategoryAadhaar,
			Date:      mustParseTime("2024-01-10T08:30:00Z"),
			Priority:  PriorityHigh,
			Source:    "UIDAI",
			ActionURL: "/verify-mobile",
		},
		{
			ID:        "not-007",
			Title:     "New Education Certificates Available",
			Message:   "Digital education certificates from recognized institutions can now be added to your credential wallet.",
			Type:      NotificationInfo,
			Category:  CategoryDigitalIndia,
			Date:      mustParseTime("2024-01-09T13:20:00Z"),
			IsRead:    true,
			Priority:  PriorityMedium,
			Source:    "Ministry of Education",
			ActionURL: "/add-credential",
		},
	}
}
