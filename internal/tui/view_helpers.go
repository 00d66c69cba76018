package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	uiDivider     = "──────────────────────────────────────────────────────"
	statusTimeout = 3 * time.Second
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

// renderStatus prints the transient status line, or nothing.
func renderStatus(b *strings.Builder, status, errMsg string) {
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(status))
		b.WriteString("\n")
	}
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func statusBadge(status models.CredentialStatus) string {
	switch status {
	case models.StatusVerified:
		return "[✓ verified]"
	case models.StatusPending:
		return "[… pending]"
	case models.StatusExpired:
		return "[✗ expired]"
	default:
		return fmt.Sprintf("[%s]", status)
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func moveIndex(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	idx += delta
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
