package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/client"
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/tui"
	"github.com/MKhiriev/go-id-wallet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("bharat-id-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fatal(log, err, "error getting configs")
	}

	// An empty base URL keeps the OTP flow offline.
	var otpAdapter adapter.OTPAdapter
	if cfg.Adapter.OTPBaseURL != "" {
		otpAdapter, err = adapter.NewHTTPOTPAdapter(cfg.Adapter, log)
		if err != nil {
			fatal(log, err, "create otp adapter")
		}
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		fatal(log, err, "create local storage")
	}

	services := service.NewClientServices(storages, otpAdapter, cfg, log)

	ui, err := tui.New(services, tui.Options{
		BuildInfo:   buildInfo,
		MockOTPCode: cfg.App.MockOTPCode,
		PhonePrefix: cfg.App.PhonePrefix,
	}, log)
	if err != nil {
		fatal(log, err, "error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		fatal(log, err, "client run error")
	}
}

// fatal reports to the terminal as well, since the client logs to a file.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
