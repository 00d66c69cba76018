package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

// fileExporter writes downloads into a single directory. Each file is
// written to a temp file first and renamed into place, so a reader never
// sees a partial export.
type fileExporter struct {
	dir    string
	logger *logger.Logger
}

// NewFileExporter constructs an [Exporter] rooted at dir, creating it if
// needed.
func NewFileExporter(dir string, logger *logger.Logger) (Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create export dir: %v", ErrWritingFile, err)
	}
	return &fileExporter{dir: dir, logger: logger}, nil
}

// DownloadJSON marshals v with two-space indentation.
func (e *fileExporter) DownloadJSON(filename string, v any) (string, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %v", ErrWritingFile, filename, err)
	}
	return e.WriteFile(filename, payload)
}

// WriteFile stores content under the base name of filename, so a name can
// never escape the export directory.
func (e *fileExporter) WriteFile(filename string, content []byte) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) || name == "" {
		return "", ErrInvalidFileName
	}

	tmp, err := os.CreateTemp(e.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritingFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %v", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritingFile, err)
	}

	target := filepath.Join(e.dir, name)
	if err = os.Rename(tmp.Name(), target); err != nil {
		e.logger.Err(err).Str("func", "*fileExporter.WriteFile").Str("file", target).Msg("error moving export into place")
		return "", fmt.Errorf("%w: %v", ErrWritingFile, err)
	}
	e.logger.Info().Str("func", "*fileExporter.WriteFile").Str("file", target).Int("bytes", len(content)).Msg("file exported")

	return target, nil
}
