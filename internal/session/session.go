package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"smartboutique/internal/config"
	"smartboutique/internal/services"
)

// Roles recognized by the storefront. Role names match the backend seed data.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "cliente"
)

// User is the session payload persisted to disk. Only the role gates
// anything; there is no expiry and no server-side validation.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type account struct {
	email    string
	password string
	role     string
	name     string
}

// The demo credential table. Stands in for a real identity provider.
var accounts = []account{
	{email: "admin@gmail.com", password: "1234", role: RoleAdmin, name: "Administrador"},
	{email: "cliente@gmail.com", password: "1234", role: RoleCustomer, name: "Cliente Ejemplo"},
}

// ErrInvalidCredentials is returned when no account matches.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// Manager reads and writes the persisted session file.
type Manager struct {
	path string
}

// NewManager creates a session manager storing state under the config's data
// directory.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{path: cfg.SessionPath()}
}

// Login checks the credentials against the account table and persists the
// resulting user.
func (m *Manager) Login(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, acct := range accounts {
		if acct.email == email && acct.password == password {
			user := User{Email: acct.email, Name: acct.name, Role: acct.role}
			if err := m.save(user); err != nil {
				return User{}, err
			}
			return user, nil
		}
	}
	return User{}, ErrInvalidCredentials
}

// Current returns the persisted user, reporting false when no session
// exists.
func (m *Manager) Current() (User, bool, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return User{}, false, nil
		}
		return User{}, false, fmt.Errorf("read session: %w", err)
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return User{}, false, fmt.Errorf("decode session: %w", err)
	}
	if user.Role == "" {
		return User{}, false, nil
	}
	return user, true, nil
}

// Logout removes the persisted session. No-op when none exists.
func (m *Manager) Logout() error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// RequireRole returns the current user when one is logged in with the given
// role, and a precondition error otherwise.
func (m *Manager) RequireRole(role string) (User, error) {
	user, ok, err := m.Current()
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, services.Wrap(services.ErrPrecondition, "session", "require role", "log in first", nil)
	}
	if role != "" && user.Role != role {
		return User{}, services.Wrap(services.ErrPrecondition, "session", "require role",
			fmt.Sprintf("%s access required", role), nil)
	}
	return user, nil
}

func (m *Manager) save(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
