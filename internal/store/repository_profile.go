package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

// profileRepository is the SQLite-backed [ProfileRepository] over the
// "profiles" table.
type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] on db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{db: db, logger: logger}
}

// SaveUser upserts the profile keyed by its ID.
//
// Error handling:
//   - UNIQUE(phone) violation → [ErrPhoneAlreadyExists].
//   - Any other driver error → wrapped [ErrExecutingStatement].
func (r *profileRepository) SaveUser(ctx context.Context, profile models.UserProfile) error {
	query, args, err := saveUserQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*profileRepository.SaveUser").
			Bool("retryable", r.db.retryable(err)).
			Msg("error saving profile")
		if isUniqueViolation(err) {
			return ErrPhoneAlreadyExists
		}
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// GetUserByPhone looks the profile up through the unique phone column.
func (r *profileRepository) GetUserByPhone(ctx context.Context, phone string) (models.UserProfile, error) {
	query, args, err := getUserByPhoneQuery(phone)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var p models.UserProfile
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.UserProfile{}, ErrProfileNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*profileRepository.GetUserByPhone").Msg("error reading profile")
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return p, nil
}
