package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/crypto"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/validators"
	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	// ProfileDocumentID is the document key the signup profile is saved under.
	ProfileDocumentID = "documents/profile.json"
	// ProfileDownloadName is the file written to the export directory at signup.
	ProfileDownloadName = "profile.json"
)

// clientAuthService is the concrete implementation of ClientAuthService.
type clientAuthService struct {
	profiles  store.ProfileRepository
	documents store.DocumentRepository
	pins      store.PinRepository
	kv        store.KeyValueStore
	exporter  store.Exporter

	otp       ClientOTPService
	hasher    crypto.PinHasher
	validator validators.Validator
	session   *Session

	now    Clock
	logger *logger.Logger
}

// NewClientAuthService wires the auth flow to the local stores. session may
// be nil when no per-user caches are needed.
func NewClientAuthService(
	storages *store.ClientStorages,
	otp ClientOTPService,
	hasher crypto.PinHasher,
	validator validators.Validator,
	session *Session,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		profiles:  storages.Profiles,
		documents: storages.Documents,
		pins:      storages.Pins,
		kv:        storages.KV,
		exporter:  storages.Exporter,
		otp:       otp,
		hasher:    hasher,
		validator: validator,
		session:   session,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) StartLogin() *LoginFlow {
	return &LoginFlow{auth: a, step: StepPhoneEntry}
}

func (a *clientAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.UserProfile, error) {
	log := a.logger.With().Str("func", "*clientAuthService.Signup").Logger()

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserProfile{}, err
	}
	phone, err := validators.NormalizePhone(req.Phone)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile := models.NewUserProfile(req.FirstName, req.LastName, req.Email, phone, a.now())
	if err = a.profiles.SaveUser(ctx, profile); err != nil {
		log.Err(err).Str("phone", phone).Msg("saving profile failed")
		return models.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile: %w", err)
	}
	if err = a.documents.SaveDocument(ctx, ProfileDocumentID, data); err != nil {
		log.Err(err).Msg("saving profile document failed")
		return models.UserProfile{}, fmt.Errorf("save profile document: %w", err)
	}
	if err = a.kv.Set(ctx, store.KeyProfileData, string(data)); err != nil {
		log.Err(err).Msg("saving profile snapshot failed")
		return models.UserProfile{}, fmt.Errorf("save profile snapshot: %w", err)
	}
	if _, err = a.exporter.DownloadJSON(ProfileDownloadName, profile); err != nil {
		log.Err(err).Msg("profile download failed")
		return models.UserProfile{}, fmt.Errorf("download profile: %w", err)
	}

	if err = a.pins.SavePinHash(ctx, phone, a.hasher.Hash(req.PIN)); err != nil {
		log.Err(err).Msg("saving pin hash failed")
		return models.UserProfile{}, fmt.Errorf("save pin: %w", err)
	}

	if err = a.signIn(ctx, phone); err != nil {
		return models.UserProfile{}, err
	}

	log.Info().Str("id", profile.ID).Msg("user signed up")
	return profile, nil
}

func (a *clientAuthService) VerifyPIN(ctx context.Context, phone, pin string) error {
	digest, err := a.pins.GetPinHash(ctx, phone)
	if errors.Is(err, store.ErrPinNotFound) {
		a.logger.Warn().Str("func", "*clientAuthService.VerifyPIN").Str("phone", phone).Msg("no pin stored for phone")
		return ErrWrongPIN
	}
	if err != nil {
		return fmt.Errorf("read pin: %w", err)
	}

	if !a.hasher.Compare(pin, digest) {
		return ErrWrongPIN
	}
	return nil
}

// signIn persists {true, phone} and loads the session.
func (a *clientAuthService) signIn(ctx context.Context, phone string) error {
	state := models.AuthState{IsAuthenticated: true, Phone: phone}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode auth state: %w", err)
	}
	if err = a.kv.Set(ctx, store.KeyAuthState, string(raw)); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.signIn").Msg("saving auth state failed")
		return fmt.Errorf("save auth state: %w", err)
	}

	if a.session != nil {
		a.session.Load(ctx, state)
	}
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) models.AuthState {
	state, err := readAuthState(ctx, a.kv)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.RestoreSession").Msg("treating session as signed out")
		return models.AuthState{}
	}

	if a.session != nil {
		a.session.Load(ctx, state)
	}
	return state
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if err := a.kv.Delete(ctx, store.KeyAuthState); err != nil {
		return fmt.Errorf("clear auth state: %w", err)
	}

	if a.session != nil {
		a.session.Teardown()
	}
	a.logger.Info().Msg("signed out")
	return nil
}

// readAuthState returns the persisted state. Absence is a signed-out state,
// not an error.
func readAuthState(ctx context.Context, kv store.KeyValueStore) (models.AuthState, error) {
	raw, err := kv.Get(ctx, store.KeyAuthState)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.AuthState{}, nil
	}
	if err != nil {
		return models.AuthState{}, err
	}

	var state models.AuthState
	if err = json.Unmarshal([]byte(raw), &state); err != nil {
		return models.AuthState{}, fmt.Errorf("decode auth state: %w", err)
	}
	if state.Phone == "" {
		state.IsAuthenticated = false
	}
	return state, nil
}
