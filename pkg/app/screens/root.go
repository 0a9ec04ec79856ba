package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/data"
	"github.com/rpaes/tankobon/pkg/services"
)

type screenType int

const (
	storeView screenType = iota
	cartView
	accountView
	detailsView
)

// SwitchScreenMsg asks the root screen to change the active view. Data
// carries per-screen payload, e.g. the manga to show in the details view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// Notice is a toast emitted by the stores (added to cart, order confirmed,
// profile saved). The root screen renders the latest one in the status line.
type Notice struct {
	Title   string
	Message string
}

type RootScreen struct {
	controller *services.Controller
	notices    <-chan Notice

	currentView screenType
	store       *StoreScreen
	cart        *CartScreen
	account     *AccountScreen
	details     *DetailsScreen

	lastNotice *Notice

	width  int
	height int
}

func NewRootScreen(controller *services.Controller, notices <-chan Notice) *RootScreen {
	return &RootScreen{
		controller:  controller,
		notices:     notices,
		currentView: storeView,
		store:       NewStoreScreen(controller),
		cart:        NewCartScreen(controller.Cart),
		account:     NewAccountScreen(controller.Auth),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.store.Init(), r.listenForNotices)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Every screen tracks its own size; fan the resize out so a tab
		// switch never lands on a zero-width view.
		r.store.Update(msg)
		r.cart.Update(msg)
		r.account.Update(msg)
		if r.details != nil {
			r.details.Update(msg)
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !r.capturing() {
				return r, tea.Quit
			}
		case "tab":
			if r.currentView == detailsView || r.capturing() {
				break
			}
			r.currentView = (r.currentView + 1) % 3
			switch r.currentView {
			case storeView:
				cmd = r.store.Init()
			case cartView:
				cmd = r.cart.Init()
			case accountView:
				cmd = r.account.Init()
			}
			return r, cmd
		}

	case Notice:
		r.lastNotice = &msg
		return r, r.listenForNotices

	case SwitchScreenMsg:
		switch msg.Screen {
		case "store":
			r.currentView = storeView
			cmd = r.store.Init()
		case "cart":
			r.currentView = cartView
			cmd = r.cart.Init()
		case "account":
			r.currentView = accountView
			cmd = r.account.Init()
		case "details":
			if manga, ok := msg.Data.(data.Manga); ok {
				r.details = NewDetailsScreen(r.controller.Cart, manga)
				r.details.width = r.width
				r.details.height = r.height
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case storeView:
		newModel, newCmd := r.store.Update(msg)
		r.store = newModel.(*StoreScreen)
		return r, newCmd
	case cartView:
		newModel, newCmd := r.cart.Update(msg)
		r.cart = newModel.(*CartScreen)
		return r, newCmd
	case accountView:
		newModel, newCmd := r.account.Update(msg)
		r.account = newModel.(*AccountScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case storeView:
		content = r.store.View()
	case cartView:
		content = r.cart.View()
	case accountView:
		content = r.account.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	status := r.renderStatus()

	return fmt.Sprintf("%s\n\n%s\n%s", tabs, content, status)
}

// capturing reports whether the active screen currently routes keystrokes
// into a text input, which suspends the global q/tab bindings.
func (r *RootScreen) capturing() bool {
	switch r.currentView {
	case storeView:
		return r.store.Capturing()
	case accountView:
		return r.account.Capturing()
	}
	return false
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		return ""
	}

	labels := []string{"Loja", "Carrinho", "Conta"}
	if count := r.controller.Cart.Count(); count > 0 {
		labels[1] = fmt.Sprintf("Carrinho (%d)", count)
	}

	rendered := make([]string, len(labels))
	for i, label := range labels {
		if screenType(i) == r.currentView {
			rendered[i] = styles.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (r *RootScreen) renderStatus() string {
	if r.lastNotice == nil {
		return ""
	}
	return styles.StatusSuccess.Render(r.lastNotice.Title) + " " +
		styles.TextStyle.Render(r.lastNotice.Message)
}

func (r *RootScreen) listenForNotices() tea.Msg {
	return <-r.notices
}
