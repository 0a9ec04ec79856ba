package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/data"
)

// MangaList renders catalog entries as a vertical stack of cards with one
// selected at a time.
type MangaList struct {
	Items         []data.Manga
	SelectedIndex int
	Width         int
	Height        int
}

func NewMangaList() *MangaList {
	return &MangaList{
		Items:         []data.Manga{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (m *MangaList) SetItems(items []data.Manga) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *MangaList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *MangaList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *MangaList) Selected() *data.Manga {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

func (m *MangaList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("Nenhum mangá encontrado")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range m.Items {
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(item.Title)

		var badges []string
		if item.IsNew {
			badges = append(badges, styles.NewBadgeStyle.Render("NOVO"))
		}
		if item.OnSale() {
			badges = append(badges, styles.SaleBadgeStyle.Render("OFERTA"))
		}

		price := styles.PriceStyle.Render(fmt.Sprintf("R$ %.2f", item.Price))
		if item.OnSale() {
			price = fmt.Sprintf("%s %s",
				styles.OldPriceStyle.Render(fmt.Sprintf("R$ %.2f", *item.OriginalPrice)),
				price,
			)
		}

		meta := styles.MutedStyle.Render(fmt.Sprintf("%s • %s", item.Author, item.Genre))

		desc := item.Description
		if len(desc) > 80 {
			desc = desc[:77] + "..."
		}
		description := styles.TextStyle.Render(desc)

		rows := []string{title}
		if len(badges) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, badges...))
		}
		rows = append(rows, description, "", price, meta)

		cardContent := lipgloss.JoinVertical(lipgloss.Left, rows...)

		card := cardStyle.Width(m.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
