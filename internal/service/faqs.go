package service

import "github.com/MKhiriev/go-id-wallet/models"

// DefaultFAQs is the canned assistant knowledge base.
func DefaultFAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "How do I verify my Aadhaar document?",
			Answer:   "Your Aadhaar document is automatically verified through UIDAI's secure API when you upload it. The verification process checks the QR code, validates the digital signature, and confirms the document authenticity. You'll see a 'Verified' status once the process is complete.",
			Category: "aadhaar",
			Keywords: []string{"verify", "aadhaar", "validation", "authentic"},
		},
		{
			Question: "What if my Aadhaar shows as expired?",
			Answer:   "Aadhaar cards don't expire, but if you're seeing an expired status, it might be due to outdated biometric data. Visit your nearest Aadhaar center for biometric updates, or use the online update service through UIDAI portal.",
			Category: "aadhaar",
			Keywords: []string{"expired", "aadhaar", "biometric", "update"},
		},
		{
			Question: "Can I use Aadhaar for international verification?",
			Answer:   "Aadhaar is primarily for domestic use within India. For international purposes, you'll need additional documents like passport. However, some Indian embassies accept Aadhaar for specific consular services.",
			Category: "aadhaar",
			Keywords: []string{"international", "aadhaar", "passport", "embassy"},
		},
		{
			Question: "How do I add my degree certificate?",
			Answer:   "Click 'Add Credential' → Select 'Education Certificate' → Upload your degree certificate. Ensure it's from a UGC-recognized institution. The system will verify it through the National Academic Depository (NAD) if available.",
			Category: "education",
			Keywords: []string{"degree", "certificate", "education", "UGC", "NAD"},
		},
		{
			Question: "My university isn't recognized. What should I do?",
			Answer:   "If your university isn't in our verification database, you can still add the certificate. It will be marked as 'Pending Verification' until manual review. Contact support with university accreditation details for faster processing.",
			Category: "education",
			Keywords: []string{"university", "recognized", "accreditation", "verification"},
		},
		{
			Question: "Can I add multiple degrees?",
			Answer:   "Yes! You can add multiple education credentials - school certificates, diplomas, undergraduate degrees, postgraduate degrees, and professional certifications. Each will be verified independently.",
			Category: "education",
			Keywords: []string{"multiple", "degrees", "certificates", "diploma"},
		},
		{
			Question: "How secure is my bank KYC information?",
			Answer:   "Your financial documents are encrypted with AES-256 encryption and stored on secure servers. Only you can access them, and banks can only view verification status, not the actual documents. We comply with RBI data protection guidelines.",
			Category: "financial",
			Keywords: []string{"secure", "bank", "KYC", "encryption", "RBI"},
		},
		{
			Question: "Which banks support direct KYC verification?",
			Answer:   "We support direct verification with major banks including SBI, HDFC, ICICI, Axis Bank, and 50+ other banks. If your bank isn't listed, you can upload KYC documents for manual verification.",
			Category: "financial",
			Keywords: []string{"banks", "KYC", "verification", "SBI", "HDFC"},
		},
		{
			Question: "How often should I update my financial documents?",
			Answer:   "Update your KYC documents when they expire or when your bank requests updated information. Most KYC documents are valid for 2-10 years depending on the document type and bank policies.",
			Category: "financial",
			Keywords: []string{"update", "financial", "KYC", "expire", "validity"},
		},
		{
			Question: "How do I add professional licenses?",
			Answer:   "Go to Add Credential → Professional License → Select your profession (Doctor, Lawyer, Engineer, etc.) → Upload license document. We verify with respective professional councils like MCI, BCI, etc.",
			Category: "professional",
			Keywords: []string{"professional", "license", "doctor", "lawyer", "engineer"},
		},
		{
			Question: "My professional license is from another state. Will it work?",
			Answer:   "Yes, professional licenses from any Indian state are accepted. Our system recognizes licenses from all state professional councils and national bodies. Interstate practice permissions are also supported.",
			Category: "professional",
			Keywords: []string{"state", "professional", "license", "interstate", "council"},
		},
		{
			Question: "How long does document verification take?",
			Answer:   "Automatic verification (Aadhaar, PAN) takes 2-5 minutes. Educational documents take 1-3 business days. Professional licenses take 3-7 business days. Financial KYC is usually instant with supported banks.",
			Category: "general",
			Keywords: []string{"verification", "time", "duration", "processing"},
		},
		{
			Question: "Can I delete a document after uploading?",
			Answer:   "Yes, you can delete documents from your wallet anytime. However, if the document is linked to active verifications or services, you'll need to replace it with an alternative document first.",
			Category: "general",
			Keywords: []string{"delete", "remove", "document", "wallet"},
		},
		{
			Question: "What happens if my document is rejected?",
			Answer:   "If a document is rejected, you'll receive a notification with the reason. Common reasons include poor image quality, expired documents, or unsupported formats. You can re-upload after addressing the issues.",
			Category: "general",
			Keywords: []string{"rejected", "document", "notification", "re-upload"},
		},
		{
			Question: "Is my data shared with third parties?",
			Answer:   "No, your documents are never shared without your explicit consent. When you use services, only verification status is shared, not the actual documents. You control what information is shared and with whom.",
			Category: "general",
			Keywords: []string{"data", "privacy", "sharing", "third party", "consent"},
		},
		{
			Question: "How do I backup my documents?",
			Answer:   "Use the Export feature to download your documents in various formats (JSON, CSV, XML). We recommend regular backups. Your documents are also automatically backed up on our secure servers.",
			Category: "general",
			Keywords: []string{"backup", "export", "download", "secure"},
		},
	}
}
