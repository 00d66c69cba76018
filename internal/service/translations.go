package service

import "github.com/MKhiriev/go-id-wallet/models"

// UI string keys.
const (
	KeyAppTitle            = "appTitle"
	KeyAppSubtitle         = "appSubtitle"
	KeyVerifiedIdentity    = "verifiedIdentity"
	KeyLanguage            = "language"
	KeyProfile             = "profile"
	KeySettings            = "settings"
	KeySecurity            = "security"
	KeyHelpSupport         = "helpSupport"
	KeySignOut             = "signOut"
	KeyMyCredentials       = "myCredentials"
	KeyManageCredentials   = "manageCredentials"
	KeyExport              = "export"
	KeyTotalCredentials    = "totalCredentials"
	KeyVerifiedCredentials = "verifiedCredentials"
	KeyPending             = "pendingVerifications"
	KeySecurityScore       = "securityScore"
	KeySecurityCenter      = "securityCenter"
	KeyGovernmentID        = "governmentId"
	KeyEducation           = "education"
	KeyFinancial           = "financial"
	KeyProfessional        = "professional"
	KeyStatusVerified      = "verified"
	KeyStatusPending       = "pending"
	KeyStatusExpired       = "expired"
	KeyDocumentNumber      = "documentNumber"
	KeyIssueDate           = "issueDate"
	KeyExpiryDate          = "expiryDate"
	KeyBack                = "back"
	KeySwitchedToEnglish   = "switchedToEnglish"
	KeySwitchedToHindi     = "switchedToHindi"
	KeySignedOut           = "signedOut"
	KeySignedOutDesc       = "signedOutDesc"
	KeyNotifications       = "notifications"
	KeyAssistant           = "assistant"
	KeySignIn              = "signIn"
	KeySignUp              = "signUp"
	KeyEnterPhone          = "enterPhone"
	KeyEnterOTP            = "enterOtp"
	KeyEnterPIN            = "enterPin"
	KeyOTPSentTo           = "otpSentTo"
)

var translations = map[models.Language]map[string]string{
	models.LanguageEnglish: {
		KeyAppTitle:            "Bharat-ID Shield",
		KeyAppSubtitle:         "Decentralized Identity",
		KeyVerifiedIdentity:    "Verified Identity",
		KeyLanguage:            "Language",
		KeyProfile:             "Profile",
		KeySettings:            "Settings",
		KeySecurity:            "Security",
		KeyHelpSupport:         "Help & Support",
		KeySignOut:             "Sign out",
		KeyMyCredentials:       "My Credentials",
		KeyManageCredentials:   "Manage your verified digital identity credentials",
		KeyExport:              "Export",
		KeyTotalCredentials:    "Total Credentials",
		KeyVerifiedCredentials: "Verified",
		KeyPending:             "Pending",
		KeySecurityScore:       "Security Score",
		KeySecurityCenter:      "Security Center",
		KeyGovernmentID:        "Government ID",
		KeyEducation:           "Education",
		KeyFinancial:           "Financial",
		KeyProfessional:        "Professional",
		KeyStatusVerified:      "Verified",
		KeyStatusPending:       "Pending",
		KeyStatusExpired:       "Expired",
		KeyDocumentNumber:      "Document Number",
		KeyIssueDate:           "Issue Date",
		KeyExpiryDate:          "Expiry Date",
		KeyBack:                "Back",
		KeySwitchedToEnglish:   "Switched to English",
		KeySwitchedToHindi:     "Switched to Hindi",
		KeySignedOut:           "Signed out",
		KeySignedOutDesc:       "You have been signed out.",
		KeyNotifications:       "Notifications",
		KeyAssistant:           "Document Assistant",
		KeySignIn:              "Sign in",
		KeySignUp:              "Create account",
		KeyEnterPhone:          "Enter your 10-digit mobile number",
		KeyEnterOTP:            "Enter the 6-digit OTP",
		KeyEnterPIN:            "Enter your 4-digit PIN",
		KeyOTPSentTo:           "OTP sent to",
	},
	models.LanguageHindi: {
		KeyAppTitle:            "भारत-आईडी शील्ड",
		KeyAppSubtitle:         "विकेंद्रीकृत पहचान",
		KeyVerifiedIdentity:    "सत्यापित पहचान",
		KeyLanguage:            "भाषा",
		KeyProfile:             "प्रोफाइल",
		KeySettings:            "सेटिंग्स",
		KeySecurity:            "सुरक्षा",
		KeyHelpSupport:         "सहायता और समर्थन",
		KeySignOut:             "साइन आउट",
		KeyMyCredentials:       "मेरे प्रमाण पत्र",
		KeyManageCredentials:   "अपने सत्यापित डिजिटल पहचान प्रमाण पत्रों का प्रबंधन करें",
		KeyExport:              "निर्यात",
		KeyTotalCredentials:    "कुल प्रमाण पत्र",
		KeyVerifiedCredentials: "सत्यापित",
		KeyPending:             "लंबित",
		KeySecurityScore:       "सुरक्षा स्कोर",
		KeySecurityCenter:      "सुरक्षा केंद्र",
		KeyGovernmentID:        "सरकारी पहचान",
		KeyEducation:           "शिक्षा",
		KeyFinancial:           "वित्तीय",
		KeyProfessional:        "व्यावसायिक",
		KeyStatusVerified:      "सत्यापित",
		KeyStatusPending:       "लंबित",
		KeyStatusExpired:       "समाप्त",
		KeyDocumentNumber:      "दस्तावेज़ संख्या",
		KeyIssueDate:           "जारी करने की तारीख",
		KeyExpiryDate:          "समाप्ति तिथि",
		KeyBack:                "वापस",
		KeySwitchedToEnglish:   "अंग्रेजी में बदल गया",
		KeySwitchedToHindi:     "हिन्दी चुनी गई",
		KeySignedOut:           "साइन आउट हो गया",
		KeySignedOutDesc:       "आप साइन आउट हो गए हैं।",
		KeyNotifications:       "सूचनाएं",
		KeyAssistant:           "दस्तावेज़ सहायक",
		KeySignIn:              "साइन इन करें",
		KeySignUp:              "खाता बनाएं",
		KeyEnterPhone:          "अपना 10 अंकों का मोबाइल नंबर दर्ज करें",
		KeyEnterOTP:            "6 अंकों का OTP दर्ज करें",
		KeyEnterPIN:            "अपना 4 अंकों का PIN दर्ज करें",
		KeyOTPSentTo:           "OTP भेजा गया",
	},
}
