package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
)

type translationService struct {
	kv store.KeyValueStore

	mu      sync.RWMutex
	current models.Language
	loaded  bool

	logger *logger.Logger
}

// NewTranslationService reads the language preference lazily from kv.
// defaultLang is used when nothing usable is stored.
func NewTranslationService(kv store.KeyValueStore, defaultLang string, logger *logger.Logger) TranslationService {
	lang := models.Language(defaultLang)
	if !supportedLanguage(lang) {
		lang = models.LanguageEnglish
	}
	return &translationService{kv: kv, current: lang, logger: logger}
}

func supportedLanguage(lang models.Language) bool {
	_, ok := translations[lang]
	return ok
}

func (s *translationService) Language(ctx context.Context) models.Language {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.current
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, store.KeyLanguage)
	switch {
	case err == nil && supportedLanguage(models.Language(raw)):
		s.current = models.Language(raw)
	case err != nil && !errors.Is(err, store.ErrKeyNotFound):
		s.logger.Err(err).Str("func", "*translationService.Language").Msg("reading language preference failed")
	}
	s.loaded = true
	return s.current
}

func (s *translationService) SetLanguage(ctx context.Context, lang models.Language) error {
	if !supportedLanguage(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := s.kv.Set(ctx, store.KeyLanguage, string(lang)); err != nil {
		return fmt.Errorf("save language: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current, s.loaded = lang, true
	return nil
}

func (s *translationService) T(key string) string {
	s.mu.RLock()
	lang := s.current
	s.mu.RUnlock()

	if v, ok := translations[lang][key]; ok {
		return v
	}
	if v, ok := translations[models.LanguageEnglish][key]; ok {
		return v
	}
	return key
}
