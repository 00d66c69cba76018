package models

import "time"

// FAQ is a canned assistant answer matched by keywords.
type FAQ struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// AssistantQuery is one question and answer in the assistant history.
type AssistantQuery struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// Language is a supported UI language tag.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)
