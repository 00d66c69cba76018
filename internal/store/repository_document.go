package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

type documentRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDocumentRepository constructs a [DocumentRepository] on db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{db: db, logger: logger, now: time.Now}
}

// SaveDocument upserts data under id and stamps it with the write time.
// data must be valid JSON.
func (r *documentRepository) SaveDocument(ctx context.Context, id string, data json.RawMessage) error {
	if !json.Valid(data) {
		return fmt.Errorf("%w: document %q is not valid json", ErrExecutingStatement, id)
	}

	query, args, err := saveDocumentQuery(id, data, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*documentRepository.SaveDocument").Str("id", id).Msg("error saving document")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *documentRepository) GetDocument(ctx context.Context, id string) (models.Document, error) {
	query, args, err := getDocumentQuery(id)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var (
		doc  models.Document
		data string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&doc.ID, &data, &doc.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, ErrDocumentNotFound
	case err != nil:
		return models.Document{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	doc.Data = json.RawMessage(data)

	return doc, nil
}
