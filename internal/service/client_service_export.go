package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
)

const exportDateLayout = "2006-01-02"

var exportFormats = []models.ExportFormatInfo{
	{Value: models.FormatJSON, Label: "JSON", Description: "Machine-readable format for developers"},
	{Value: models.FormatCSV, Label: "CSV", Description: "Spreadsheet compatible format"},
	{Value: models.FormatXML, Label: "XML", Description: "Structured markup format"},
}

var csvHeader = []string{"Title", "Issuer", "Type", "Status", "Issue Date", "Expiry Date", "Credential ID"}

// exportEnvelope is the JSON export document.
type exportEnvelope struct {
	ExportedAt  time.Time           `json:"exportedAt"`
	Total       int                 `json:"totalCredentials"`
	Credentials []models.Credential `json:"credentials"`
}

// xmlExport is the XML export document.
type xmlExport struct {
	XMLName     xml.Name            `xml:"credentials"`
	ExportedAt  string              `xml:"exportedAt,attr"`
	Total       int                 `xml:"total,attr"`
	Credentials []models.Credential `xml:"credential"`
}

type exportService struct {
	exporter store.Exporter

	now    Clock
	logger *logger.Logger
}

func NewExportService(exporter store.Exporter, logger *logger.Logger) ExportService {
	return &exportService{exporter: exporter, now: time.Now, logger: logger}
}

func (s *exportService) Formats() []models.ExportFormatInfo {
	out := make([]models.ExportFormatInfo, len(exportFormats))
	copy(out, exportFormats)
	return out
}

func (s *exportService) Export(_ context.Context, creds []models.Credential, format models.ExportFormat, filename string) (string, error) {
	if len(creds) == 0 {
		return "", ErrNothingToExport
	}

	now := s.now()
	if filename == "" {
		filename = fmt.Sprintf("credentials-%s.%s", now.Format(exportDateLayout), format)
	}

	var (
		path string
		err  error
	)
	switch format {
	case models.FormatJSON:
		path, err = s.exporter.DownloadJSON(filename, exportEnvelope{ExportedAt: now.UTC(), Total: len(creds), Credentials: creds})
	case models.FormatCSV:
		var content []byte
		if content, err = encodeCSV(creds); err == nil {
			path, err = s.exporter.WriteFile(filename, content)
		}
	case models.FormatXML:
		var content []byte
		if content, err = encodeXML(creds, now); err == nil {
			path, err = s.exporter.WriteFile(filename, content)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*exportService.Export").Str("format", string(format)).Msg("export failed")
		return "", err
	}

	s.logger.Info().Str("path", path).Int("count", len(creds)).Msg("credentials exported")
	return path, nil
}

func encodeCSV(creds []models.Credential) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportSerializing, err)
	}
	for _, c := range creds {
		record := []string{c.Title, c.Issuer, c.Type, string(c.Status), c.IssueDate, c.ExpiryDate, c.CredentialID}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExportSerializing, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportSerializing, err)
	}
	return buf.Bytes(), nil
}

func encodeXML(creds []models.Credential, now time.Time) ([]byte, error) {
	doc := xmlExport{ExportedAt: now.UTC().Format(time.RFC3339), Total: len(creds), Credentials: creds}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportSerializing, err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

