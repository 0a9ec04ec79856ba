package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/data"
)

// CartList renders the cart's line items with one selected at a time.
type CartList struct {
	Items         []data.CartItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewCartList() *CartList {
	return &CartList{
		Items:         []data.CartItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (c *CartList) SetItems(items []data.CartItem) {
	c.Items = items
	if c.SelectedIndex >= len(items) && len(items) > 0 {
		c.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		c.SelectedIndex = 0
	}
}

func (c *CartList) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex++
	if c.SelectedIndex >= len(c.Items) {
		c.SelectedIndex = 0
	}
}

func (c *CartList) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex--
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.Items) - 1
	}
}

func (c *CartList) Selected() *data.CartItem {
	if len(c.Items) == 0 || c.SelectedIndex >= len(c.Items) {
		return nil
	}
	return &c.Items[c.SelectedIndex]
}

func (c *CartList) View() string {
	if len(c.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("Seu carrinho está vazio")
		return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range c.Items {
		cardStyle := styles.CardStyle
		if i == c.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(item.Manga.Title)

		quantity := styles.TextStyle.Render(fmt.Sprintf("Quantidade: %d", item.Quantity))
		unit := styles.MutedStyle.Render(fmt.Sprintf("R$ %.2f cada", item.Manga.Price))
		subtotal := styles.PriceStyle.Render(
			fmt.Sprintf("R$ %.2f", item.Manga.Price*float64(item.Quantity)),
		)

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			quantity,
			unit,
			subtotal,
		)

		card := cardStyle.Width(c.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
