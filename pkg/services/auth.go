package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/rpaes/tankobon/pkg/data"
	"github.com/rpaes/tankobon/pkg/sources"
)

// AuthStore owns the credential lifecycle and the signed-in profile.
// Invariant: logged-in exactly when both a user and a token are held.
type AuthStore struct {
	mu      sync.Mutex
	storage Storage
	source  sources.Source
	notify  Notifier
	user    *data.UserProfile
	token   string
}

func NewAuthStore(storage Storage, source sources.Source, notify Notifier) *AuthStore {
	return &AuthStore{storage: storage, source: source, notify: notify}
}

// ProfileUpdate carries the mutable profile fields. Nil slots are left
// untouched by UpdateProfile.
type ProfileUpdate struct {
	Name          *string
	Phone         *string
	Address       *string
	FavoriteGenre *string
}

// Token returns the current bearer credential, or "" when signed out.
func (a *AuthStore) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// User returns a copy of the signed-in profile, or nil.
func (a *AuthStore) User() *data.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	user := *a.user
	return &user
}

func (a *AuthStore) LoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.token != ""
}

// Login exchanges credentials for a session with the backend. On failure the
// session state and persisted keys are left untouched and the returned error
// carries the user-facing message.
func (a *AuthStore) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("Informe email e senha.")
	}

	session, err := a.source.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.adoptSession(session)
	return nil
}

// Register validates the required fields, creates the account remotely and
// signs in with the returned session.
func (a *AuthStore) Register(ctx context.Context, reg sources.Registration) error {
	if err := validateRegistration(reg); err != nil {
		return err
	}

	session, err := a.source.Register(ctx, reg)
	if err != nil {
		return err
	}

	a.adoptSession(session)
	a.notify.notify("Sucesso", "Cadastro realizado com sucesso!")
	return nil
}

func validateRegistration(reg sources.Registration) error {
	var missing []string
	if strings.TrimSpace(reg.Name) == "" {
		missing = append(missing, "nome")
	}
	if strings.TrimSpace(reg.Email) == "" {
		missing = append(missing, "email")
	}
	if reg.Password == "" {
		missing = append(missing, "senha")
	}
	if strings.TrimSpace(reg.BirthDate) == "" {
		missing = append(missing, "data de nascimento")
	}
	if strings.TrimSpace(reg.CPF) == "" {
		missing = append(missing, "CPF")
	}
	if len(missing) > 0 {
		return errors.New("Preencha os campos obrigatórios: " + strings.Join(missing, ", "))
	}
	if reg.Password != reg.ConfirmPassword {
		return errors.New("As senhas não coincidem!")
	}
	if len(reg.Password) < 6 {
		return errors.New("A senha deve ter pelo menos 6 caracteres!")
	}
	return nil
}

func (a *AuthStore) adoptSession(session *sources.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()

	profile := session.Profile
	a.token = session.Token
	a.user = &profile

	a.persistToken()
	a.persistProfile()
}

// Logout clears the session and its persisted keys. Safe to call while
// already signed out.
func (a *AuthStore) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = nil
	a.token = ""

	if err := a.storage.Delete(data.KeyAuthToken); err != nil {
		log.Printf("Warning: Failed to clear persisted token: %v", err)
	}
	if err := a.storage.Delete(data.KeyUserProfile); err != nil {
		log.Printf("Warning: Failed to clear persisted profile: %v", err)
	}
}

// UpdateProfile merges the given fields into the in-memory and persisted
// profile. Does nothing when signed out. The change stays local; the backend
// holds its own copy until the next login replaces ours.
func (a *AuthStore) UpdateProfile(update ProfileUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return errors.New("O nome é obrigatório!")
	}

	a.mu.Lock()
	if a.user == nil {
		a.mu.Unlock()
		return nil
	}

	if update.Name != nil {
		a.user.Name = *update.Name
	}
	if update.Phone != nil {
		a.user.Phone = *update.Phone
	}
	if update.Address != nil {
		a.user.Address = *update.Address
	}
	if update.FavoriteGenre != nil {
		a.user.FavoriteGenre = *update.FavoriteGenre
	}

	a.persistProfile()
	a.mu.Unlock()

	a.notify.notify("Sucesso", "Perfil atualizado com sucesso!")
	return nil
}

// LoadSession restores the persisted token and profile. Missing or
// unreadable data means signed out; nothing is reported to the caller. The
// restored session is only re-validated when an authorized call fails.
func (a *AuthStore) LoadSession() {
	a.mu.Lock()
	defer a.mu.Unlock()

	token, ok := a.loadString(data.KeyAuthToken)
	if !ok {
		return
	}

	raw, found, err := a.storage.Get(data.KeyUserProfile)
	if err != nil || !found {
		if err != nil {
			log.Printf("Warning: Failed to load profile: %v", err)
		}
		return
	}
	var profile data.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		log.Printf("Warning: Discarding unreadable profile data: %v", err)
		return
	}

	a.token = token
	a.user = &profile
}

func (a *AuthStore) loadString(key string) (string, bool) {
	raw, ok, err := a.storage.Get(key)
	if err != nil || !ok {
		if err != nil {
			log.Printf("Warning: Failed to load %s: %v", key, err)
		}
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("Warning: Discarding unreadable %s: %v", key, err)
		return "", false
	}
	return value, value != ""
}

// persistToken and persistProfile write independent keys; callers hold mu.
// Failures are logged, never surfaced.
func (a *AuthStore) persistToken() {
	raw, _ := json.Marshal(a.token)
	if err := a.storage.Put(data.KeyAuthToken, raw); err != nil {
		log.Printf("Warning: Failed to save token: %v", err)
	}
}

func (a *AuthStore) persistProfile() {
	raw, err := json.Marshal(a.user)
	if err != nil {
		log.Printf("Warning: Failed to serialize profile: %v", err)
		return
	}
	if err := a.storage.Put(data.KeyUserProfile, raw); err != nil {
		log.Printf("Warning: Failed to save profile: %v", err)
	}
}
