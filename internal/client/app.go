package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	closer   io.Closer

	logger *logger.Logger
}

// NewApp builds the runtime. closer, when not nil, is closed once Run returns.
func NewApp(services *service.ClientServices, ui UI, closer io.Closer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, closer: closer, logger: logger}, nil
}

// Run restores the previous session and runs the UI. Quitting the UI is a
// normal exit.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.closer == nil {
			return
		}
		if closeErr := a.closer.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "*App.Run").Msg("closing storages failed")
			err = errors.Join(err, closeErr)
		}
	}()

	state := a.services.AuthService.RestoreSession(ctx)
	a.logger.Info().Bool("signed_in", state.IsAuthenticated).Msg("session restored")

	if err = a.ui.Run(ctx, state.IsAuthenticated); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
