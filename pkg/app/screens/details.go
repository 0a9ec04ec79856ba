package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/data"
	"github.com/rpaes/tankobon/pkg/services"
)

type DetailsScreen struct {
	cart  *services.CartStore
	manga data.Manga

	width  int
	height int
}

func NewDetailsScreen(cart *services.CartStore, manga data.Manga) *DetailsScreen {
	return &DetailsScreen{cart: cart, manga: manga}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "a", "enter":
			manga := s.manga
			return s, func() tea.Msg {
				s.cart.AddToCart(manga)
				return nil
			}
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "store"}
			}
		}
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Carregando..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("📖 %s", s.manga.Title))

	var badges []string
	if s.manga.IsNew {
		badges = append(badges, styles.NewBadgeStyle.Render("NOVO"))
	}
	if s.manga.OnSale() {
		badges = append(badges, styles.SaleBadgeStyle.Render("OFERTA"))
	}

	price := styles.PriceStyle.Render(fmt.Sprintf("R$ %.2f", s.manga.Price))
	if s.manga.OnSale() {
		price = fmt.Sprintf("%s %s",
			styles.OldPriceStyle.Render(fmt.Sprintf("R$ %.2f", *s.manga.OriginalPrice)),
			price,
		)
	}

	rows := []string{}
	if len(badges) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, badges...), "")
	}
	rows = append(rows,
		styles.TextStyle.Render(s.manga.Description),
		"",
		styles.MutedStyle.Render(fmt.Sprintf("Autor: %s", s.manga.Author)),
		styles.MutedStyle.Render(fmt.Sprintf("Gênero: %s", s.manga.Genre)),
		"",
		price,
	)

	info := lipgloss.JoinVertical(lipgloss.Left, rows...)
	card := styles.CardStyle.Width(s.width - 4).Render(info)

	help := styles.HelpStyle.Render(
		"a/enter: adicionar ao carrinho • esc: voltar • q: sair",
	)

	return fmt.Sprintf("%s\n\n%s\n%s", header, card, help)
}
