package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Options tunes what the UI shows that the services do not know about.
type Options struct {
	BuildInfo   models.AppBuildInfo
	MockOTPCode string
	PhonePrefix string
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, opts: opts, logger: logger}, nil
}

// Run blocks until the user quits. A wallet that is already signed in opens on
// the dashboard, otherwise on the welcome menu.
func (t *TUI) Run(ctx context.Context, signedIn bool) error {
	root := t.newRoot(ctx, signedIn)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, signedIn bool) RootModel {
	s := t.services

	pages := map[string]tea.Model{
		pageMenu:          NewMenuModel(s.TranslationService),
		pageLogin:         NewLoginModel(ctx, s.AuthService, s.TranslationService, t.opts),
		pageSignup:        NewSignupModel(ctx, s.AuthService, s.TranslationService),
		pageDashboard:     NewDashboardModel(ctx, s, t.logger),
		pageDetail:        NewDetailModel(s.CredentialService, s.TranslationService),
		pageExport:        NewExportModel(ctx, s.ExportService, s.CredentialService),
		pageNotifications: NewNotificationsModel(ctx, s.NotificationService),
		pageAssistant:     NewAssistantModel(s.AssistantService),
		pageSecurity:      NewSecurityModel(s.SecurityService, s.TranslationService),
		pageProfile:       NewProfileModel(ctx, s.ProfileService, s.TranslationService),
	}

	start := pageMenu
	if signedIn {
		start = pageDashboard
	}
	return NewRootModel(pages, start, t.opts.BuildInfo)
}
