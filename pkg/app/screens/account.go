package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/services"
	"github.com/rpaes/tankobon/pkg/sources"
)

type accountMode int

const (
	loginMode accountMode = iota
	registerMode
	profileMode
	editMode
)

type AccountScreen struct {
	auth *services.AuthStore

	mode    accountMode
	inputs  []textinput.Model
	focused int

	submitting bool
	width      int
	height     int
	err        error
}

func NewAccountScreen(auth *services.AuthStore) *AccountScreen {
	s := &AccountScreen{auth: auth}
	s.enterMode(loginMode)
	return s
}

func (s *AccountScreen) Init() tea.Cmd {
	if s.auth.LoggedIn() {
		if s.mode == loginMode || s.mode == registerMode {
			s.enterMode(profileMode)
		}
	} else if s.mode == profileMode || s.mode == editMode {
		s.enterMode(loginMode)
	}

	if len(s.inputs) > 0 {
		return textinput.Blink
	}
	return nil
}

func (s *AccountScreen) Capturing() bool {
	for i := range s.inputs {
		if s.inputs[i].Focused() {
			return true
		}
	}
	return false
}

// enterMode rebuilds the input set for the given mode.
func (s *AccountScreen) enterMode(mode accountMode) {
	s.mode = mode
	s.focused = 0
	s.err = nil

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 120
		ti.Width = 40
		return ti
	}

	switch mode {
	case loginMode:
		email := newInput("Email")
		password := newInput("Senha")
		password.EchoMode = textinput.EchoPassword
		s.inputs = []textinput.Model{email, password}

	case registerMode:
		name := newInput("Nome completo")
		email := newInput("Email")
		password := newInput("Senha")
		password.EchoMode = textinput.EchoPassword
		confirm := newInput("Confirmar senha")
		confirm.EchoMode = textinput.EchoPassword
		birth := newInput("Data de nascimento (AAAA-MM-DD)")
		gender := newInput("Sexo (M/F)")
		cpf := newInput("CPF")
		phone := newInput("Celular")
		s.inputs = []textinput.Model{name, email, password, confirm, birth, gender, cpf, phone}

	case editMode:
		name := newInput("Nome completo")
		phone := newInput("Celular")
		address := newInput("Endereço")
		genre := newInput("Gênero favorito")
		if user := s.auth.User(); user != nil {
			name.SetValue(user.Name)
			phone.SetValue(user.Phone)
			address.SetValue(user.Address)
			genre.SetValue(user.FavoriteGenre)
		}
		s.inputs = []textinput.Model{name, phone, address, genre}

	case profileMode:
		s.inputs = nil
	}

	if len(s.inputs) > 0 {
		s.inputs[0].Focus()
	}
}

func (s *AccountScreen) focusInput(index int) {
	if len(s.inputs) == 0 {
		return
	}
	s.inputs[s.focused].Blur()
	s.focused = (index + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focused].Focus()
}

func (s *AccountScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}

		switch s.mode {
		case profileMode:
			switch msg.String() {
			case "e":
				s.enterMode(editMode)
				return s, textinput.Blink
			case "s":
				auth := s.auth
				return s, func() tea.Msg {
					auth.Logout()
					return SwitchScreenMsg{Screen: "account"}
				}
			}
			return s, nil

		case loginMode, registerMode, editMode:
			if !s.Capturing() {
				switch msg.String() {
				case "enter", "i":
					s.inputs[s.focused].Focus()
					return s, textinput.Blink
				case "ctrl+r":
					if s.mode == loginMode {
						s.enterMode(registerMode)
					} else if s.mode == registerMode {
						s.enterMode(loginMode)
					}
					return s, textinput.Blink
				}
				return s, nil
			}

			switch msg.String() {
			case "tab", "down":
				s.focusInput(s.focused + 1)
				return s, textinput.Blink
			case "shift+tab", "up":
				s.focusInput(s.focused - 1)
				return s, textinput.Blink
			case "enter":
				if s.focused < len(s.inputs)-1 {
					s.focusInput(s.focused + 1)
					return s, textinput.Blink
				}
				return s, s.submit()
			case "ctrl+r":
				if s.mode == loginMode {
					s.enterMode(registerMode)
				} else if s.mode == registerMode {
					s.enterMode(loginMode)
				}
				return s, textinput.Blink
			case "esc":
				if s.mode == editMode {
					s.enterMode(profileMode)
					return s, nil
				}
				// Release the form so the global tab/q bindings work again.
				s.inputs[s.focused].Blur()
				return s, nil
			}

			s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
			return s, cmd
		}

	case authResultMsg:
		s.submitting = false
		s.err = msg.err
		if msg.err == nil {
			s.enterMode(profileMode)
		}
	}

	return s, cmd
}

func (s *AccountScreen) submit() tea.Cmd {
	s.submitting = true
	auth := s.auth

	switch s.mode {
	case loginMode:
		email := s.inputs[0].Value()
		password := s.inputs[1].Value()
		return func() tea.Msg {
			return authResultMsg{err: auth.Login(context.Background(), email, password)}
		}

	case registerMode:
		reg := sources.Registration{
			Name:            s.inputs[0].Value(),
			Email:           s.inputs[1].Value(),
			Password:        s.inputs[2].Value(),
			ConfirmPassword: s.inputs[3].Value(),
			BirthDate:       s.inputs[4].Value(),
			Gender:          s.inputs[5].Value(),
			CPF:             s.inputs[6].Value(),
			Phone:           s.inputs[7].Value(),
		}
		return func() tea.Msg {
			return authResultMsg{err: auth.Register(context.Background(), reg)}
		}

	case editMode:
		name := s.inputs[0].Value()
		phone := s.inputs[1].Value()
		address := s.inputs[2].Value()
		genre := s.inputs[3].Value()
		return func() tea.Msg {
			err := auth.UpdateProfile(services.ProfileUpdate{
				Name:          &name,
				Phone:         &phone,
				Address:       &address,
				FavoriteGenre: &genre,
			})
			return authResultMsg{err: err}
		}
	}

	s.submitting = false
	return nil
}

func (s *AccountScreen) View() string {
	if s.width == 0 {
		return "Carregando..."
	}

	switch s.mode {
	case profileMode:
		return s.viewProfile()
	case loginMode:
		return s.viewForm("👤 Entrar",
			[]string{"Email", "Senha"},
			"enter: entrar • ctrl+r: criar conta • tab: próximo campo • esc: liberar abas")
	case registerMode:
		return s.viewForm("👤 Criar conta",
			[]string{"Nome completo", "Email", "Senha", "Confirmar senha", "Data de nascimento", "Sexo", "CPF", "Celular"},
			"enter: cadastrar • ctrl+r: já tenho conta • tab: próximo campo • esc: liberar abas")
	case editMode:
		return s.viewForm("👤 Editar perfil",
			[]string{"Nome completo", "Celular", "Endereço", "Gênero favorito"},
			"enter: salvar • esc: cancelar • tab: próximo campo")
	}
	return ""
}

func (s *AccountScreen) viewForm(title string, labels []string, help string) string {
	header := styles.TitleStyle.Render(title)

	rows := make([]string, 0, len(s.inputs)*2)
	for i, input := range s.inputs {
		inputStyle := styles.InputStyle
		if i == s.focused {
			inputStyle = styles.FocusedInputStyle
		}
		rows = append(rows,
			styles.MutedStyle.Render(labels[i]),
			inputStyle.Render(input.View()),
		)
	}
	form := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var status string
	if s.submitting {
		status = "\n" + styles.StatusLoading.Render("Enviando...")
	} else if s.err != nil {
		status = "\n" + styles.StatusError.Render(s.err.Error())
	}

	return fmt.Sprintf("%s\n\n%s%s\n\n%s",
		header, form, status, styles.HelpStyle.Render(help))
}

func (s *AccountScreen) viewProfile() string {
	user := s.auth.User()
	if user == nil {
		return styles.MutedStyle.Render("Sessão encerrada.")
	}

	header := styles.TitleStyle.Render("👤 Minha conta")

	field := func(label, value string) string {
		if value == "" {
			value = "—"
		}
		return styles.MutedStyle.Render(label+": ") + styles.TextStyle.Render(value)
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		field("Nome", user.Name),
		field("Email", user.Email),
		field("Celular", user.Phone),
		field("Endereço", user.Address),
		field("Gênero favorito", user.FavoriteGenre),
		field("Cliente desde", user.CreatedAt),
	)
	card := styles.CardStyle.Width(s.width - 4).Render(info)

	help := styles.HelpStyle.Render("e: editar perfil • s: sair da conta • tab: trocar aba • q: sair")

	return fmt.Sprintf("%s\n\n%s\n%s", header, card, help)
}

// Messages
type authResultMsg struct {
	err error
}
