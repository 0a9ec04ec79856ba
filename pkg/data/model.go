package data

// Manga is a single catalog entry. Records are immutable after they come
// back from the storefront API.
type Manga struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	ImageURL      string   `json:"imageUrl"`
	Genre         string   `json:"genre"`
	IsNew         bool     `json:"isNew,omitempty"`
}

// OnSale reports whether the entry carries a discounted price.
func (m *Manga) OnSale() bool {
	return m.OriginalPrice != nil && *m.OriginalPrice > m.Price
}

// CartItem pairs a catalog entry with a requested quantity. Quantity is
// always >= 1; the cart drops items instead of keeping them at zero.
type CartItem struct {
	Manga    Manga `json:"manga"`
	Quantity int   `json:"quantity"`
}

// UserProfile is the signed-in account record. Email never changes after
// registration.
type UserProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	FavoriteGenre string `json:"favoriteGenre,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"createdAt"`
}

// CategoryAll matches every genre in the category filter.
const CategoryAll = "Todos"

// Categories returns the distinct genres present in the catalog, in
// first-seen order, with CategoryAll prepended.
func Categories(mangas []Manga) []string {
	seen := map[string]bool{}
	out := []string{CategoryAll}
	for _, m := range mangas {
		if m.Genre == "" || seen[m.Genre] {
			continue
		}
		seen[m.Genre] = true
		out = append(out, m.Genre)
	}
	return out
}

// FilterByCategory returns the entries matching the category, or everything
// for CategoryAll.
func FilterByCategory(mangas []Manga, category string) []Manga {
	if category == CategoryAll || category == "" {
		return mangas
	}
	var out []Manga
	for _, m := range mangas {
		if m.Genre == category {
			out = append(out, m)
		}
	}
	return out
}
