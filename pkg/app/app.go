package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpaes/tankobon/pkg/app/screens"
	"github.com/rpaes/tankobon/pkg/services"
)

type App struct {
	controller *services.Controller
	notices    chan screens.Notice
}

func NewApp() (*App, error) {
	notices := make(chan screens.Notice, 16)

	// Store notifications run inside tea commands; dropping on a full
	// buffer keeps them from ever blocking a store mutation.
	controller, err := services.NewController(func(title, message string) {
		select {
		case notices <- screens.Notice{Title: title, Message: message}:
		default:
		}
	})
	if err != nil {
		return nil, err
	}

	return &App{controller: controller, notices: notices}, nil
}

func (a *App) Run() error {
	defer a.controller.Close()

	model := screens.NewRootScreen(a.controller, a.notices)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
