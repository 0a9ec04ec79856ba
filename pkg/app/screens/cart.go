package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/components"
	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/services"
)

type CartScreen struct {
	cart *services.CartStore

	cartList   *components.CartList
	confirming bool

	width  int
	height int
}

func NewCartScreen(cart *services.CartStore) *CartScreen {
	return &CartScreen{
		cart:     cart,
		cartList: components.NewCartList(),
	}
}

func (s *CartScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *CartScreen) refresh() {
	s.cartList.SetItems(s.cart.Items())
}

func (s *CartScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.cartList.Width = msg.Width - 4
		s.cartList.Height = msg.Height - 10

	case tea.KeyMsg:
		if s.confirming {
			switch msg.String() {
			case "enter", "s", "y":
				s.confirming = false
				return s, func() tea.Msg {
					s.cart.Checkout()
					return SwitchScreenMsg{Screen: "cart"}
				}
			case "esc", "n":
				s.confirming = false
			}
			return s, nil
		}

		switch msg.String() {
		case "up", "k":
			s.cartList.Prev()
		case "down", "j":
			s.cartList.Next()
		case "+", "=":
			if item := s.cartList.Selected(); item != nil {
				s.cart.UpdateQuantity(item.Manga.ID, item.Quantity+1)
				s.refresh()
			}
		case "-":
			if item := s.cartList.Selected(); item != nil {
				s.cart.UpdateQuantity(item.Manga.ID, item.Quantity-1)
				s.refresh()
			}
		case "x", "delete":
			if item := s.cartList.Selected(); item != nil {
				s.cart.RemoveItem(item.Manga.ID)
				s.refresh()
			}
		case "C":
			s.cart.ClearCart()
			s.refresh()
		case "enter":
			if len(s.cartList.Items) > 0 {
				s.confirming = true
			}
		}
	}

	return s, nil
}

func (s *CartScreen) View() string {
	if s.width == 0 {
		return "Carregando..."
	}

	header := styles.TitleStyle.Render("🛒 Carrinho")

	if s.confirming {
		dialog := styles.DialogStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			styles.TitleStyle.Render("Confirmar pedido?"),
			styles.TextStyle.Render(fmt.Sprintf("Total: R$ %.2f", s.cart.Total())),
			"",
			styles.HelpStyle.Render("enter/s: confirmar • esc/n: cancelar"),
		))
		return fmt.Sprintf("%s\n\n%s", header,
			lipgloss.Place(s.width, s.height-6, lipgloss.Center, lipgloss.Center, dialog))
	}

	listView := s.cartList.View()

	footer := styles.SubtitleStyle.Render(
		fmt.Sprintf("%d itens • Total: R$ %.2f", s.cart.Count(), s.cart.Total()),
	)

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navegar • +/-: quantidade • x: remover • C: esvaziar • enter: finalizar • tab: trocar aba • q: sair",
	)

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, listView, footer, help)
}
