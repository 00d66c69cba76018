package service

import (
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	historyLimit      = 50
	keywordScore      = 2
	questionScore     = 3
	questionPrefixLen = 10
	minMatchScore     = 1

	categoryGeneral = "general"
)

const defaultAnswer = `I'm here to help with your document questions! While I don't have a specific answer for that query, here are some helpful tips:

🔍 Document Upload Guidelines:
• Ensure documents are clear, well-lit, and readable
• Use supported formats: PDF, JPG, PNG (max 10MB)
• Make sure documents are not expired or damaged
• Avoid blurry or cropped images

📋 Common Solutions:
• For Aadhaar issues: Check UIDAI official website
• For education certificates: Verify with issuing institution
• For bank KYC: Contact your bank's customer service
• For technical problems: Try refreshing and re-uploading

💡 Quick Help: Try asking about specific document types like "Aadhaar verification", "education certificates", "bank KYC", or "professional licenses" for more targeted assistance.

Is there a specific document type or process you'd like help with?`

type assistantService struct {
	faqs []models.FAQ
	ids  IDGenerator
	now  Clock

	mu      sync.RWMutex
	history []models.AssistantQuery
}

// NewAssistantService answers from faqs, or DefaultFAQs when nil.
func NewAssistantService(faqs []models.FAQ, ids IDGenerator) AssistantService {
	if faqs == nil {
		faqs = DefaultFAQs()
	}
	return &assistantService{faqs: faqs, ids: ids, now: time.Now}
}

// bestMatch scores every FAQ against the lowercased question. The first FAQ
// with the highest score wins; ok is false when nothing scored above
// minMatchScore.
func (s *assistantService) bestMatch(question string) (models.FAQ, bool) {
	q := strings.ToLower(question)

	var (
		best      models.FAQ
		bestScore int
	)
	for _, faq := range s.faqs {
		score := 0
		for _, kw := range faq.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				score += keywordScore
			}
		}

		prefix := []rune(strings.ToLower(faq.Question))
		if len(prefix) > questionPrefixLen {
			prefix = prefix[:questionPrefixLen]
		}
		if strings.Contains(q, string(prefix)) {
			score += questionScore
		}

		if score > bestScore {
			best, bestScore = faq, score
		}
	}

	return best, bestScore > minMatchScore
}

func (s *assistantService) FindAnswer(question string) string {
	if faq, ok := s.bestMatch(question); ok {
		return faq.Answer
	}
	return defaultAnswer
}

func (s *assistantService) Ask(question string) models.AssistantQuery {
	query := models.AssistantQuery{
		ID:        s.ids.Generate(),
		Question:  question,
		Answer:    defaultAnswer,
		Category:  categoryGeneral,
		Timestamp: s.now().UTC(),
	}
	if faq, ok := s.bestMatch(question); ok {
		query.Answer = faq.Answer
		query.Category = faq.Category
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]models.AssistantQuery{query}, s.history...)
	if len(s.history) > historyLimit {
		s.history = s.history[:historyLimit]
	}
	return query
}

// History is newest first.
func (s *assistantService) History() []models.AssistantQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AssistantQuery, len(s.history))
	copy(out, s.history)
	return out
}

func (s *assistantService) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *assistantService) QuickQuestions() []string {
	return []string{
		"How do I verify my Aadhaar document?",
		"How to add my degree certificate?",
		"How secure is my bank KYC information?",
		"How long does document verification take?",
		"Can I delete documents after uploading?",
		"How do I export and backup my documents?",
		"What if my document is rejected?",
		"Which banks support direct KYC verification?",
	}
}

func (s *assistantService) CategoryQuestions(category string) []models.FAQ {
	var out []models.FAQ
	for _, faq := range s.faqs {
		if faq.Category == category {
			out = append(out, faq)
		}
	}
	return out
}
