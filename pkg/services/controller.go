package services

import (
	"fmt"

	"github.com/rpaes/tankobon/pkg/config"
	"github.com/rpaes/tankobon/pkg/data"
	"github.com/rpaes/tankobon/pkg/sources"
)

// Controller wires configuration, persistence, the backend client and the
// two stores together, and owns their lifecycle. Consumers receive it by
// injection; there is no ambient lookup.
type Controller struct {
	Config *config.Config
	Source sources.Source
	Auth   *AuthStore
	Cart   *CartStore

	repo *data.Repository
}

// NewController loads configuration from the environment and uses the
// process-wide database handle.
func NewController(notify Notifier) (*Controller, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return build(cfg, data.NewDuckDBRepository(cfg.DatabasePath()), notify), nil
}

// NewControllerWithConfig opens a dedicated database handle for the given
// configuration. Used by tests.
func NewControllerWithConfig(cfg *config.Config, notify Notifier) (*Controller, error) {
	db, err := data.InitDuckDB(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}
	return build(cfg, data.NewRepository(db), notify), nil
}

func build(cfg *config.Config, repo *data.Repository, notify Notifier) *Controller {
	var auth *AuthStore
	backend := sources.NewBackend(cfg.APIURL, func() string {
		if auth == nil {
			return ""
		}
		return auth.Token()
	})
	auth = NewAuthStore(repo, backend, notify)
	cart := NewCartStore(repo, notify)

	// Restore persisted state before anything can mutate it.
	auth.LoadSession()
	cart.Load()

	return &Controller{
		Config: cfg,
		Source: backend,
		Auth:   auth,
		Cart:   cart,
		repo:   repo,
	}
}

func (c *Controller) Close() error {
	return c.repo.Close()
}
