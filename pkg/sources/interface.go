package sources

import (
	"context"

	"github.com/rpaes/tankobon/pkg/data"
)

// Session is what the backend hands back after login or registration: the
// bearer credential plus the account it belongs to.
type Session struct {
	Token   string
	Profile data.UserProfile
	Roles   []string
}

// Registration carries the fields the registration endpoint requires.
// ConfirmPassword only feeds client-side validation; it is never sent.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	BirthDate       string
	Gender          string
	CPF             string
	Phone           string
}

type Source interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, reg Registration) (*Session, error)
	Catalog(ctx context.Context) ([]data.Manga, error)
}
