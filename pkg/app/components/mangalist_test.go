package components

import (
	"strings"
	"testing"

	"github.com/rpaes/tankobon/pkg/data"
)

func TestNewMangaList(t *testing.T) {
	list := NewMangaList()

	if list == nil {
		t.Fatal("Expected manga list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItems(t *testing.T) {
	list := NewMangaList()

	items := []data.Manga{
		{ID: "1", Title: "Manga 1"},
		{ID: "2", Title: "Manga 2"},
	}

	list.SetItems(items)

	if len(list.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(list.Items))
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestSetItemsClampsSelection(t *testing.T) {
	list := NewMangaList()

	list.SetItems([]data.Manga{
		{ID: "1", Title: "Manga 1"},
		{ID: "2", Title: "Manga 2"},
		{ID: "3", Title: "Manga 3"},
	})
	list.SelectedIndex = 2

	// Set fewer items
	list.SetItems([]data.Manga{
		{ID: "1", Title: "Manga 1"},
	})

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be clamped to 0, got %d", list.SelectedIndex)
	}
}

func TestNext(t *testing.T) {
	list := NewMangaList()

	list.SetItems([]data.Manga{
		{ID: "1", Title: "Manga 1"},
		{ID: "2", Title: "Manga 2"},
		{ID: "3", Title: "Manga 3"},
	})

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	// Should wrap around
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrev(t *testing.T) {
	list := NewMangaList()

	list.SetItems([]data.Manga{
		{ID: "1", Title: "Manga 1"},
		{ID: "2", Title: "Manga 2"},
		{ID: "3", Title: "Manga 3"},
	})

	// Should wrap around when at start
	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewMangaList()

	// Should not panic with empty list
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
}

func TestSelected(t *testing.T) {
	list := NewMangaList()

	// Empty list
	if list.Selected() != nil {
		t.Error("Expected nil for empty list")
	}

	list.SetItems([]data.Manga{
		{ID: "1", Title: "Manga 1"},
		{ID: "2", Title: "Manga 2"},
	})

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}

	if selected.ID != "1" {
		t.Errorf("Expected selected manga ID '1', got '%s'", selected.ID)
	}

	list.Next()
	selected = list.Selected()
	if selected.ID != "2" {
		t.Errorf("Expected selected manga ID '2', got '%s'", selected.ID)
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewMangaList()
	list.Width = 80
	list.Height = 20

	view := list.View()

	if !strings.Contains(view, "Nenhum mangá encontrado") {
		t.Error("Expected empty catalog message")
	}
}

func TestViewWithItems(t *testing.T) {
	list := NewMangaList()
	list.Width = 80
	list.Height = 20

	list.SetItems([]data.Manga{
		{
			ID:     "1",
			Title:  "Vagabond Vol. 1",
			Author: "Takehiko Inoue",
			Genre:  "Ação",
			Price:  29.90,
		},
	})

	view := list.View()

	if !strings.Contains(view, "Vagabond Vol. 1") {
		t.Error("Expected manga title in view")
	}

	if !strings.Contains(view, "R$ 29.90") {
		t.Error("Expected price in view")
	}

	if !strings.Contains(view, "Takehiko Inoue") {
		t.Error("Expected author in view")
	}
}

func TestViewShowsBadges(t *testing.T) {
	original := 45.00
	list := NewMangaList()
	list.Width = 80
	list.Height = 20

	list.SetItems([]data.Manga{
		{
			ID:            "1",
			Title:         "Berserk Vol. 1",
			Price:         35.90,
			OriginalPrice: &original,
			IsNew:         true,
		},
	})

	view := list.View()

	if !strings.Contains(view, "NOVO") {
		t.Error("Expected NOVO badge for new item")
	}

	if !strings.Contains(view, "OFERTA") {
		t.Error("Expected OFERTA badge for discounted item")
	}

	if !strings.Contains(view, "R$ 45.00") {
		t.Error("Expected original price in view")
	}
}
