package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

// ClientStorages groups the wallet's local stores so they can be handed to
// the service layer as one value.
type ClientStorages struct {
	Profiles  ProfileRepository
	Documents DocumentRepository
	Pins      PinRepository
	KV        KeyValueStore
	Sessions  SessionStore
	Exporter  Exporter

	db *DB
}

// NewClientStorages opens (and creates if needed) the SQLite file named by
// cfg.DSN, applies migrations and wires every repository to it.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	exporter, err := NewFileExporter(cfg.ExportDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClientStorages{
		Profiles:  NewProfileRepository(db, logger),
		Documents: NewDocumentRepository(db, logger),
		Pins:      NewPinRepository(db, logger),
		KV:        NewKeyValueStore(db, logger),
		Sessions:  NewMemorySessionStore(),
		Exporter:  exporter,
		db:        db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
