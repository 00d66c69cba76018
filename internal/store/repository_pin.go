package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

type pinRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPinRepository constructs a [PinRepository] on db.
func NewPinRepository(db *DB, logger *logger.Logger) PinRepository {
	logger.Debug().Msg("creating pin repository")
	return &pinRepository{db: db, logger: logger}
}

func (r *pinRepository) SavePinHash(ctx context.Context, phone, pinHash string) error {
	query, args, err := savePinHashQuery(phone, pinHash)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*pinRepository.SavePinHash").Msg("error saving pin hash")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *pinRepository) GetPinHash(ctx context.Context, phone string) (string, error) {
	query, args, err := getPinHashQuery(phone)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var hash string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&hash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrPinNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*pinRepository.GetPinHash").Msg("error reading pin hash")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return hash, nil
}
