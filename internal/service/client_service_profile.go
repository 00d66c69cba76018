package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
)

type profileService struct {
	profiles store.ProfileRepository
	kv       store.KeyValueStore

	logger *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, kv store.KeyValueStore, logger *logger.Logger) ProfileService {
	return &profileService{profiles: profiles, kv: kv, logger: logger}
}

func (s *profileService) Profile(ctx context.Context) (models.UserProfile, error) {
	state, err := readAuthState(ctx, s.kv)
	if err != nil || !state.IsAuthenticated {
		return models.UserProfile{}, ErrNotAuthenticated
	}

	profile, err := s.profiles.GetUserByPhone(ctx, state.Phone)
	if err == nil {
		return profile, nil
	}
	s.logger.Warn().Err(err).Str("func", "*profileService.Profile").Msg("profile lookup failed, using stored snapshot")

	snapshot, snapErr := s.snapshot(ctx)
	if snapErr != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", err, snapErr)
	}
	return snapshot, nil
}

func (s *profileService) snapshot(ctx context.Context) (models.UserProfile, error) {
	raw, err := s.kv.Get(ctx, store.KeyProfileData)
	if err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = json.Unmarshal([]byte(raw), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode profile snapshot: %w", err)
	}
	return profile, nil
}

func (s *profileService) ImportProfile(ctx context.Context, raw []byte) (models.UserProfile, error) {
	raw = bytes.TrimSpace(raw)

	var profile models.UserProfile
	if len(raw) == 0 || raw[0] != '{' || json.Unmarshal(raw, &profile) != nil {
		return models.UserProfile{}, ErrInvalidProfileJSON
	}

	if err := s.kv.Set(ctx, store.KeyProfileData, string(raw)); err != nil {
		return models.UserProfile{}, fmt.Errorf("save profile snapshot: %w", err)
	}

	s.logger.Info().Msg("profile imported")
	return profile, nil
}

func (s *profileService) ImportProfileFile(ctx context.Context, path string) (models.UserProfile, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.UserProfile{}, fmt.Errorf("profile file %q does not exist", path)
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("read profile file: %w", err)
	}
	return s.ImportProfile(ctx, raw)
}
