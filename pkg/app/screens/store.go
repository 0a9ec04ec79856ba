package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpaes/tankobon/pkg/app/components"
	"github.com/rpaes/tankobon/pkg/app/styles"
	"github.com/rpaes/tankobon/pkg/data"
	"github.com/rpaes/tankobon/pkg/services"
	"github.com/rpaes/tankobon/pkg/sources"
)

type StoreScreen struct {
	source sources.Source
	cart   *services.CartStore

	mangaList *components.MangaList
	catalog   []data.Manga

	categories    []string
	categoryIndex int

	search textinput.Model

	loading bool
	width   int
	height  int
	err     error
}

func NewStoreScreen(controller *services.Controller) *StoreScreen {
	ti := textinput.New()
	ti.Placeholder = "Buscar mangá..."
	ti.CharLimit = 100
	ti.Width = 40

	return &StoreScreen{
		source:     controller.Source,
		cart:       controller.Cart,
		mangaList:  components.NewMangaList(),
		categories: []string{data.CategoryAll},
		search:     ti,
	}
}

func (s *StoreScreen) Init() tea.Cmd {
	if len(s.catalog) > 0 {
		return nil
	}
	s.loading = true
	return s.loadCatalog
}

func (s *StoreScreen) Capturing() bool {
	return s.search.Focused()
}

func (s *StoreScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.mangaList.Width = msg.Width - 4
		s.mangaList.Height = msg.Height - 10

	case tea.KeyMsg:
		if s.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				s.search.Blur()
				s.applyFilter()
				return s, nil
			}
			s.search, cmd = s.search.Update(msg)
			s.applyFilter()
			return s, cmd
		}

		switch msg.String() {
		case "up", "k":
			s.mangaList.Prev()
		case "down", "j":
			s.mangaList.Next()
		case "left", "h":
			s.cycleCategory(-1)
		case "right", "l":
			s.cycleCategory(1)
		case "/":
			s.search.Focus()
			return s, textinput.Blink
		case "a":
			if selected := s.mangaList.Selected(); selected != nil {
				manga := *selected
				return s, func() tea.Msg {
					s.cart.AddToCart(manga)
					return nil
				}
			}
		case "enter":
			if selected := s.mangaList.Selected(); selected != nil {
				manga := *selected
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: manga}
				}
			}
		case "r":
			s.loading = true
			return s, s.loadCatalog
		}

	case catalogLoadedMsg:
		s.loading = false
		s.err = msg.err
		if msg.err == nil {
			s.catalog = msg.mangas
			s.categories = data.Categories(msg.mangas)
			s.categoryIndex = 0
			s.applyFilter()
		}
	}

	return s, nil
}

func (s *StoreScreen) cycleCategory(delta int) {
	if len(s.categories) == 0 {
		return
	}
	s.categoryIndex = (s.categoryIndex + delta + len(s.categories)) % len(s.categories)
	s.applyFilter()
}

// applyFilter narrows the catalog by the active category and the search
// query, in that order.
func (s *StoreScreen) applyFilter() {
	filtered := data.FilterByCategory(s.catalog, s.categories[s.categoryIndex])

	query := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if query != "" {
		var matched []data.Manga
		for _, m := range filtered {
			if strings.Contains(strings.ToLower(m.Title), query) {
				matched = append(matched, m)
			}
		}
		filtered = matched
	}

	s.mangaList.SetItems(filtered)
}

func (s *StoreScreen) View() string {
	if s.width == 0 {
		return "Carregando..."
	}

	header := styles.TitleStyle.Render("🛍  Loja")

	categoryBar := s.renderCategories()

	var searchView string
	if s.search.Focused() || s.search.Value() != "" {
		inputStyle := styles.InputStyle
		if s.search.Focused() {
			inputStyle = styles.FocusedInputStyle
		}
		searchView = inputStyle.Render(s.search.View()) + "\n\n"
	}

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Erro: %s", s.err))
		errorMsg += "\n\n"
	}

	var listView string
	if s.loading {
		listView = styles.StatusLoading.Render("Carregando catálogo...")
	} else {
		listView = s.mangaList.View()
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navegar • ←/→: categoria • /: buscar • a: adicionar • enter: detalhes • r: recarregar • tab: trocar aba • q: sair",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s%s\n%s",
		header,
		categoryBar,
		searchView,
		errorMsg,
		listView,
		help,
	)
}

func (s *StoreScreen) renderCategories() string {
	pills := make([]string, len(s.categories))
	for i, category := range s.categories {
		if i == s.categoryIndex {
			pills[i] = styles.ActiveCategoryStyle.Render(category)
		} else {
			pills[i] = styles.InactiveCategoryStyle.Render(category)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

// Messages
type catalogLoadedMsg struct {
	mangas []data.Manga
	err    error
}

// Commands
func (s *StoreScreen) loadCatalog() tea.Msg {
	mangas, err := s.source.Catalog(context.Background())
	return catalogLoadedMsg{mangas: mangas, err: err}
}
