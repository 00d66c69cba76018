package tui

import (
	"github.com/MKhiriev/go-id-wallet/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo and the sign-in/sign-out transitions
// 4) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.acceptsHotkeys() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Page, msg.Payload)
	case AuthenticatedMsg:
		return r.navigate(pageDashboard, nil)
	case SignedOutMsg:
		if msg.Err == nil {
			return r.navigate(pageMenu, msg)
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("BHARAT-ID SHIELD", "", "")
	}
	return r.current.View()
}

// navigate makes page current and runs its Init. A payload is handed to the
// new page right away so it sees it after the reset.
func (r RootModel) navigate(page string, payload any) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = page

	initCmd := r.current.Init()
	if payload == nil {
		return r, initCmd
	}

	updated, cmd := r.current.Update(payload)
	r.current = updated
	return r, tea.Batch(initCmd, cmd)
}

// acceptsHotkeys reports whether the current page has no text input that
// would swallow letter keys.
func (r RootModel) acceptsHotkeys() bool {
	return r.currentName == pageMenu || r.currentName == pageDashboard
}
