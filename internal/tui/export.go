package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ExportModel picks a format and an optional file name and writes every
// credential to the export directory.
type ExportModel struct {
	ctx         context.Context
	export      service.ExportService
	credentials service.CredentialService

	formats    []models.ExportFormatInfo
	idx        int
	filename   textinput.Model
	editing    bool
	submitting bool
	path       string
	errMsg     string
}

func NewExportModel(ctx context.Context, export service.ExportService, credentials service.CredentialService) *ExportModel {
	filename := textinput.New()
	filename.Placeholder = "credentials-YYYY-MM-DD (optional)"
	filename.CharLimit = 128
	filename.Width = 40

	return &ExportModel{
		ctx:         ctx,
		export:      export,
		credentials: credentials,
		formats:     export.Formats(),
		filename:    filename,
	}
}

func (m *ExportModel) Init() tea.Cmd {
	m.filename.Reset()
	m.filename.Blur()
	m.editing = false
	m.submitting = false
	m.path = ""
	m.errMsg = ""
	return nil
}

// Update handles format selection with ↑/↓, tab to edit the file name and
// enter to export.
func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.path = result.path
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.filename, cmd = m.filename.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.submitting {
			return m, nil
		}
		return m, navigate(pageDashboard, nil)
	case "tab":
		m.editing = !m.editing
		if m.editing {
			m.filename.Focus()
			return m, textinput.Blink
		}
		m.filename.Blur()
		return m, nil
	case "enter":
		if m.submitting || len(m.formats) == 0 {
			return m, nil
		}
		m.submitting = true
		m.path = ""
		return m, m.cmdExport(m.formats[m.idx].Value, strings.TrimSpace(m.filename.Value()))
	}

	if m.editing {
		var cmd tea.Cmd
		m.filename, cmd = m.filename.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "up", "k":
		m.idx = moveIndex(m.idx, -1, len(m.formats))
	case "down", "j":
		m.idx = moveIndex(m.idx, 1, len(m.formats))
	}
	return m, nil
}

func (m *ExportModel) cmdExport(format models.ExportFormat, filename string) tea.Cmd {
	ctx := m.ctx
	export := m.export
	creds := m.credentials.Credentials()

	if filename != "" && filepath.Ext(filename) == "" {
		filename += "." + string(format)
	}

	return func() tea.Msg {
		path, err := export.Export(ctx, creds, format, filename)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *ExportModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%d credentials will be exported\n\n", len(m.credentials.Credentials())))
	for i, f := range m.formats {
		b.WriteString(fmt.Sprintf("%s %-5s %s\n", cursor(i == m.idx && !m.editing), f.Label, helpStyle.Render(f.Description)))
	}

	b.WriteString("\nFile name │ [")
	b.WriteString(m.filename.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Exporting...]\n")
	}
	status := ""
	if m.path != "" {
		status = "Saved to " + m.path
	}
	renderStatus(&b, status, m.errMsg)

	return renderPage("EXPORT CREDENTIALS", strings.TrimRight(b.String(), "\n"), "↑/↓: format │ tab: file name │ enter: export │ esc: back")
}
