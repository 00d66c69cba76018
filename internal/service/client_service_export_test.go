package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/mock"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var exportNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestExportSvc(ctrl *gomock.Controller) (*exportService, *mock.MockExporter) {
	exporter := mock.NewMockExporter(ctrl)
	svc := NewExportService(exporter, logger.Nop()).(*exportService)
	svc.now = func() time.Time { return exportNow }
	return svc, exporter
}

func TestExportService_Formats(t *testing.T) {
	svc, _ := newTestExportSvc(gomock.NewController(t))

	formats := svc.Formats()
	require.Len(t, formats, 3)
	assert.Equal(t, models.FormatJSON, formats[0].Value)

	formats[0].Label = "changed"
	assert.Equal(t, "JSON", svc.Formats()[0].Label)
}

func TestExportService_Export_Empty(t *testing.T) {
	svc, _ := newTestExportSvc(gomock.NewController(t))

	_, err := svc.Export(context.Background(), nil, models.FormatJSON, "")
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportService_Export_UnsupportedFormat(t *testing.T) {
	svc, _ := newTestExportSvc(gomock.NewController(t))

	_, err := svc.Export(context.Background(), models.SampleCredentials(), "pdf", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExportService_Export_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, exporter := newTestExportSvc(ctrl)

	exporter.EXPECT().WriteFile("credentials-2024-03-10.csv", gomock.Any()).DoAndReturn(
		func(name string, content []byte) (string, error) {
			records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, 5)

			assert.Equal(t, csvHeader, records[0])
			assert.Equal(t, []string{"Aadhaar Identity", "UIDAI", "Government ID", "verified", "15 Jan 2024", "", "did:bharat:a1b2c3d4"}, records[1])
			return "/exports/" + name, nil
		},
	)

	path, err := svc.Export(context.Background(), models.SampleCredentials(), models.FormatCSV, "")
	require.NoError(t, err)
	assert.Equal(t, "/exports/credentials-2024-03-10.csv", path)
}

func TestExportService_Export_XML(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, exporter := newTestExportSvc(ctrl)

	exporter.EXPECT().WriteFile("wallet.xml", gomock.Any()).DoAndReturn(
		func(_ string, content []byte) (string, error) {
			assert.True(t, strings.HasPrefix(string(content), "<?xml"))

			var doc xmlExport
			require.NoError(t, xml.Unmarshal(content, &doc))
			assert.Equal(t, 4, doc.Total)
			assert.Equal(t, "2024-03-10T09:30:00Z", doc.ExportedAt)
			require.Len(t, doc.Credentials, 4)
			assert.Equal(t, "did:bharat:m3n4o5p6", doc.Credentials[3].CredentialID)
			return "wallet.xml", nil
		},
	)

	_, err := svc.Export(context.Background(), models.SampleCredentials(), models.FormatXML, "wallet.xml")
	require.NoError(t, err)
}

func TestExportService_Export_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, exporter := newTestExportSvc(ctrl)
	creds := models.SampleCredentials()[:2]

	exporter.EXPECT().DownloadJSON("credentials-2024-03-10.json", gomock.Any()).DoAndReturn(
		func(_ string, v any) (string, error) {
			env, ok := v.(exportEnvelope)
			require.True(t, ok)
			assert.Equal(t, 2, env.Total)
			assert.Equal(t, exportNow, env.ExportedAt)
			assert.Equal(t, creds, env.Credentials)
			return "credentials-2024-03-10.json", nil
		},
	)

	_, err := svc.Export(context.Background(), creds, models.FormatJSON, "")
	require.NoError(t, err)
}

func TestExportService_Export_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, exporter := newTestExportSvc(ctrl)
	writeErr := errors.New("read-only file system")

	exporter.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Return("", writeErr)

	_, err := svc.Export(context.Background(), models.SampleCredentials(), models.FormatCSV, "")
	assert.ErrorIs(t, err, writeErr)
}
