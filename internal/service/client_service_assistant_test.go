package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(faqs []models.FAQ) *assistantService {
	svc := NewAssistantService(faqs, &sequenceIDs{}).(*assistantService)
	svc.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestAssistantService_FindAnswer(t *testing.T) {
	svc := newTestAssistant(nil)
	faqs := DefaultFAQs()

	assert.Equal(t, faqs[0].Answer, svc.FindAnswer("How do I verify my Aadhaar document?"))
	assert.Equal(t, defaultAnswer, svc.FindAnswer("what is the weather today"))
}

func TestAssistantService_KeywordMatch(t *testing.T) {
	svc := newTestAssistant([]models.FAQ{
		{Question: "Zzzzzzzzzzzz?", Answer: "one", Category: "c", Keywords: []string{"alpha", "beta"}},
	})

	assert.Equal(t, "one", svc.FindAnswer("alpha"))
	assert.Equal(t, defaultAnswer, svc.FindAnswer("gamma"))
}

func TestAssistantService_FirstBestMatchWins(t *testing.T) {
	svc := newTestAssistant([]models.FAQ{
		{Question: "First question", Answer: "first", Category: "a", Keywords: []string{"kyc"}},
		{Question: "Second question", Answer: "second", Category: "b", Keywords: []string{"kyc"}},
	})

	assert.Equal(t, "first", svc.FindAnswer("bank kyc"))
}

func TestAssistantService_Ask_RecordsHistory(t *testing.T) {
	svc := newTestAssistant(nil)

	first := svc.Ask("How do I verify my Aadhaar document?")
	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "aadhaar", first.Category)

	second := svc.Ask("tell me a joke")
	assert.Equal(t, "general", second.Category)
	assert.Equal(t, defaultAnswer, second.Answer)

	history := svc.History()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	svc.ClearHistory()
	assert.Empty(t, svc.History())
}

func TestAssistantService_HistoryIsCapped(t *testing.T) {
	svc := newTestAssistant(nil)

	for i := 0; i < historyLimit+5; i++ {
		svc.Ask(fmt.Sprintf("question %d", i))
	}

	history := svc.History()
	require.Len(t, history, historyLimit)
	assert.Equal(t, fmt.Sprintf("question %d", historyLimit+4), history[0].Question)
}

func TestAssistantService_QuickAndCategoryQuestions(t *testing.T) {
	svc := newTestAssistant(nil)

	assert.Len(t, svc.QuickQuestions(), 8)
	assert.Len(t, svc.CategoryQuestions("aadhaar"), 3)
	assert.Len(t, svc.CategoryQuestions("general"), 5)
	assert.Empty(t, svc.CategoryQuestions("medical"))
}
