package components

import (
	"strings"
	"testing"

	"github.com/rpaes/tankobon/pkg/data"
)

func cartItems() []data.CartItem {
	return []data.CartItem{
		{Manga: data.Manga{ID: "1", Title: "One Piece Vol. 1", Price: 26.90}, Quantity: 2},
		{Manga: data.Manga{ID: "2", Title: "Naruto Vol. 1", Price: 21.00}, Quantity: 1},
	}
}

func TestNewCartList(t *testing.T) {
	list := NewCartList()

	if list == nil {
		t.Fatal("Expected cart list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestCartListNavigationWraps(t *testing.T) {
	list := NewCartList()
	list.SetItems(cartItems())

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex to wrap back to 1, got %d", list.SelectedIndex)
	}
}

func TestCartListSelectionSurvivesShrink(t *testing.T) {
	list := NewCartList()
	list.SetItems(cartItems())
	list.SelectedIndex = 1

	// Removing an item clamps selection to the last remaining line
	list.SetItems(cartItems()[:1])

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0 after shrink, got %d", list.SelectedIndex)
	}

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected a selected item")
	}
	if selected.Manga.ID != "1" {
		t.Errorf("Expected selected manga ID '1', got '%s'", selected.Manga.ID)
	}
}

func TestCartListSelectedEmpty(t *testing.T) {
	list := NewCartList()

	if list.Selected() != nil {
		t.Error("Expected nil selection for empty cart")
	}

	list.Next()
	list.Prev()
}

func TestCartListViewEmpty(t *testing.T) {
	list := NewCartList()
	list.Width = 80
	list.Height = 20

	view := list.View()

	if !strings.Contains(view, "Seu carrinho está vazio") {
		t.Error("Expected empty cart message")
	}
}

func TestCartListViewShowsLineTotals(t *testing.T) {
	list := NewCartList()
	list.Width = 80
	list.Height = 20
	list.SetItems(cartItems())

	view := list.View()

	if !strings.Contains(view, "One Piece Vol. 1") {
		t.Error("Expected manga title in view")
	}

	if !strings.Contains(view, "Quantidade: 2") {
		t.Error("Expected quantity in view")
	}

	if !strings.Contains(view, "R$ 26.90 cada") {
		t.Error("Expected unit price in view")
	}

	// 2 x 26.90
	if !strings.Contains(view, "R$ 53.80") {
		t.Error("Expected line subtotal in view")
	}
}
