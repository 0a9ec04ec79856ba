package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpaes/tankobon/pkg/config"
)

func newTestController(t *testing.T, apiURL string) *Controller {
	t.Helper()

	cfg := &config.Config{APIURL: apiURL, DataDir: t.TempDir()}
	controller, err := NewControllerWithConfig(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { controller.Close() })
	return controller
}

func TestNewControllerWithConfig(t *testing.T) {
	controller := newTestController(t, "http://localhost:8080")

	if controller.Auth == nil {
		t.Error("Controller auth store not initialized")
	}
	if controller.Cart == nil {
		t.Error("Controller cart store not initialized")
	}
	if controller.Source == nil {
		t.Error("Controller source not initialized")
	}

	// Fresh database means signed out and empty cart
	assert.False(t, controller.Auth.LoggedIn())
	assert.Empty(t, controller.Cart.Items())
}

// End to end over a scripted backend: login stores the token, and the very
// next catalog request carries it as a bearer credential.
func TestLoginThenCatalogCarriesBearerToken(t *testing.T) {
	var catalogAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"token": "tok-e2e",
				"cliente": map[string]any{
					"id":            5,
					"nome_completo": "Ana Souza",
					"email":         "ana@example.com",
					"usuario_ativo": true,
				},
				"roles": []string{"CLIENTE"},
			})
		case "/produtos":
			catalogAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{
				"page_items": []map[string]any{
					{"id": 1, "nome": "Vagabond Vol. 1", "categoria": "ACAO", "preco": 29.90, "condicao": "NOVO"},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	controller := newTestController(t, srv.URL)
	ctx := context.Background()

	// Catalog before login goes out unauthenticated
	_, err := controller.Source.Catalog(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalogAuth)

	require.NoError(t, controller.Auth.Login(ctx, "ana@example.com", "s3cret"))

	mangas, err := controller.Source.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, mangas, 1)
	assert.Equal(t, "Bearer tok-e2e", catalogAuth)
}

// Process restart: a second controller over the same data directory picks up
// the session and the cart without any network traffic.
func TestStateSurvivesRestart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-r",
			"cliente": map[string]any{
				"id":            5,
				"nome_completo": "Ana Souza",
				"email":         "ana@example.com",
				"usuario_ativo": true,
			},
		})
	}))
	defer srv.Close()

	dataDir := t.TempDir()
	cfg := &config.Config{APIURL: srv.URL, DataDir: dataDir}

	first, err := NewControllerWithConfig(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, first.Auth.Login(context.Background(), "ana@example.com", "s3cret"))
	first.Cart.AddToCart(manga("m1", 29.90))
	first.Cart.AddToCart(manga("m1", 29.90))
	require.NoError(t, first.Close())

	second, err := NewControllerWithConfig(cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	assert.True(t, second.Auth.LoggedIn())
	assert.Equal(t, "tok-r", second.Auth.Token())
	items := second.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 59.80, second.Cart.Total(), 1e-9)
}
