package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/rpaes/tankobon/pkg/data"
)

// CartStore owns the cart line items and keeps them durable across restarts.
// Every mutation is written through to storage; write failures are logged
// and never surfaced, so a crash can lose the most recent change.
type CartStore struct {
	mu      sync.Mutex
	storage Storage
	notify  Notifier
	items   []data.CartItem
	loaded  bool
}

func NewCartStore(storage Storage, notify Notifier) *CartStore {
	return &CartStore{storage: storage, notify: notify}
}

// Load restores the persisted cart. Corrupt or missing data yields an empty
// cart. Until Load runs, mutations stay in memory only so they cannot
// clobber the not-yet-read persisted state.
func (c *CartStore) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer func() { c.loaded = true }()

	raw, ok, err := c.storage.Get(data.KeyCartItems)
	if err != nil {
		log.Printf("Warning: Failed to load cart: %v", err)
		return
	}
	if !ok {
		return
	}

	var items []data.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Warning: Discarding unreadable cart data: %v", err)
		return
	}
	c.items = items
}

// AddToCart puts one more copy of manga in the cart: an existing line item
// has its quantity bumped, otherwise a new line item is appended.
func (c *CartStore) AddToCart(manga data.Manga) {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].Manga.ID == manga.ID {
			c.items[i].Quantity++
			c.persist()
			c.mu.Unlock()
			c.notify.notify("Sucesso!", fmt.Sprintf("%s foi adicionado ao carrinho.", manga.Title))
			return
		}
	}
	c.items = append(c.items, data.CartItem{Manga: manga, Quantity: 1})
	c.persist()
	c.mu.Unlock()
	c.notify.notify("Sucesso!", fmt.Sprintf("%s foi adicionado ao carrinho.", manga.Title))
}

// UpdateQuantity sets (not adds) the quantity for the line item with the
// given manga id. Zero or negative removes the item. Unknown ids are a no-op.
func (c *CartStore) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Manga.ID == id {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// RemoveItem drops the line item with the given manga id, if present.
func (c *CartStore) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Manga.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// ClearCart empties the cart and removes the persisted entry.
func (c *CartStore) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
}

// clearLocked empties the in-memory items and, once Load has run, drops the
// persisted entry. Before Load the delete is skipped for the same reason
// persist is gated: the not-yet-read state must stay intact.
func (c *CartStore) clearLocked() {
	c.items = nil
	if !c.loaded {
		return
	}
	if err := c.storage.Delete(data.KeyCartItems); err != nil {
		log.Printf("Warning: Failed to clear persisted cart: %v", err)
	}
}

// Checkout clears the cart and emits the order confirmation. The caller owns
// the confirmation prompt; no order is submitted anywhere.
func (c *CartStore) Checkout() {
	c.mu.Lock()
	c.clearLocked()
	c.mu.Unlock()
	c.notify.notify("Pedido Confirmado!", "Seu pedido foi realizado com sucesso. Obrigado pela compra!")
}

// Items returns a copy of the line items in add order.
func (c *CartStore) Items() []data.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]data.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the sum of quantities over all line items.
func (c *CartStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all line items, recomputed
// on every read.
func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, item := range c.items {
		total += item.Manga.Price * float64(item.Quantity)
	}
	return total
}

// persist writes the full collection through to storage. Callers hold mu.
// A no-op before Load so unloaded state is never overwritten.
func (c *CartStore) persist() {
	if !c.loaded {
		return
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("Warning: Failed to serialize cart: %v", err)
		return
	}
	if err := c.storage.Put(data.KeyCartItems, raw); err != nil {
		log.Printf("Warning: Failed to save cart: %v", err)
	}
}
