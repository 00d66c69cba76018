package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// notificationFilters are cycled with f. The empty filter shows everything.
var notificationFilters = []models.NotificationCategory{
	"",
	models.CategoryAadhaar,
	models.CategoryDigitalIndia,
	models.CategorySecurity,
	models.CategoryPolicy,
	models.CategorySystem,
}

type NotificationsModel struct {
	ctx           context.Context
	notifications service.NotificationService
	now           func() time.Time

	items   []models.Notification
	unread  int
	idx     int
	filter  int
	loading bool
	errMsg  string
}

func NewNotificationsModel(ctx context.Context, notifications service.NotificationService) *NotificationsModel {
	return &NotificationsModel{ctx: ctx, notifications: notifications, now: time.Now}
}

func (m *NotificationsModel) Init() tea.Cmd {
	m.filter = 0
	m.idx = 0
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *NotificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.unread = msg.unread
		m.idx = moveIndex(m.idx, 0, len(m.items))
		return m, nil
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(msg, keys.up):
			m.idx = moveIndex(m.idx, -1, len(m.items))
		case key.Matches(msg, keys.down):
			m.idx = moveIndex(m.idx, 1, len(m.items))
		case key.Matches(msg, keys.filter):
			m.filter = (m.filter + 1) % len(notificationFilters)
			m.idx = 0
			return m, m.cmdLoad()
		case key.Matches(msg, keys.markAll):
			return m, m.cmdMutate(m.notifications.MarkAllAsRead)
		case key.Matches(msg, keys.enter):
			if n, ok := m.selected(); ok {
				return m, m.cmdMutate(func(ctx context.Context) error { return m.notifications.MarkAsRead(ctx, n.ID) })
			}
		case key.Matches(msg, keys.delete):
			if n, ok := m.selected(); ok {
				return m, m.cmdMutate(func(ctx context.Context) error { return m.notifications.Delete(ctx, n.ID) })
			}
		}
	}
	return m, nil
}

func (m *NotificationsModel) selected() (models.Notification, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Notification{}, false
	}
	return m.items[m.idx], true
}

func (m *NotificationsModel) cmdLoad() tea.Cmd {
	m.loading = true
	return m.cmdMutate(nil)
}

// cmdMutate runs fn, if any, and then reloads the filtered list.
func (m *NotificationsModel) cmdMutate(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	svc := m.notifications
	category := notificationFilters[m.filter]

	return func() tea.Msg {
		if fn != nil {
			if err := fn(ctx); err != nil {
				return notificationsLoadedMsg{err: err}
			}
		}

		var (
			items []models.Notification
			err   error
		)
		if category == "" {
			items, err = svc.Notifications(ctx)
		} else {
			items, err = svc.ByCategory(ctx, category)
		}
		if err != nil {
			return notificationsLoadedMsg{err: err}
		}

		unread, err := svc.UnreadCount(ctx)
		return notificationsLoadedMsg{items: items, unread: unread, err: err}
	}
}

func (m *NotificationsModel) View() string {
	var b strings.Builder

	filter := "all"
	if c := notificationFilters[m.filter]; c != "" {
		filter = string(c)
	}
	b.WriteString(fmt.Sprintf("Unread: %d │ Filter: %s\n\n", m.unread, filter))

	if m.loading {
		b.WriteString("Loading...\n")
	}
	if !m.loading && len(m.items) == 0 {
		b.WriteString("No notifications\n")
	}

	now := m.now()
	for i, n := range m.items {
		marker := " "
		if !n.IsRead {
			marker = "●"
		}
		line := fmt.Sprintf("%s %s %-44s %-6s %s", cursor(i == m.idx), marker, fitText(n.Title, 44), n.Priority, service.FormatRelativeTime(n.Date, now))
		if !n.IsRead {
			line = unreadStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if n, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(n.Source + "\n" + n.Message))
		b.WriteString("\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage("NOTIFICATIONS", strings.TrimRight(b.String(), "\n"), "enter: mark read │ m: mark all │ d: delete │ f: filter │ esc: back")
}
