package session_test

import (
	"errors"
	"testing"

	"smartboutique/internal/services"
	"smartboutique/internal/session"
	"smartboutique/internal/testsupport"
)

func TestLoginPersistsUser(t *testing.T) {
	mgr := session.NewManager(testsupport.NewConfig(t))

	user, err := mgr.Login("admin@gmail.com", "1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != session.RoleAdmin || user.Name != "Administrador" {
		t.Fatalf("unexpected user: %+v", user)
	}

	current, ok, err := mgr.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if !ok || current.Email != "admin@gmail.com" {
		t.Fatalf("expected persisted session, got %+v ok=%v", current, ok)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	mgr := session.NewManager(testsupport.NewConfig(t))

	if _, err := mgr.Login("admin@gmail.com", "wrong"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, ok, _ := mgr.Current(); ok {
		t.Fatal("failed login must not create a session")
	}
}

func TestRequireRoleGatesAdmin(t *testing.T) {
	mgr := session.NewManager(testsupport.NewConfig(t))

	if _, err := mgr.RequireRole(session.RoleAdmin); !errors.Is(err, services.ErrPrecondition) {
		t.Fatalf("expected precondition error with no session, got %v", err)
	}

	if _, err := mgr.Login("cliente@gmail.com", "1234"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := mgr.RequireRole(session.RoleAdmin); !errors.Is(err, services.ErrPrecondition) {
		t.Fatalf("expected precondition error for customer role, got %v", err)
	}

	if _, err := mgr.Login("admin@gmail.com", "1234"); err != nil {
		t.Fatalf("login: %v", err)
	}
	user, err := mgr.RequireRole(session.RoleAdmin)
	if err != nil {
		t.Fatalf("require role: %v", err)
	}
	if user.Role != session.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	mgr := session.NewManager(testsupport.NewConfig(t))
	if _, err := mgr.Login("admin@gmail.com", "1234"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := mgr.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := mgr.Current(); ok {
		t.Fatal("expected session cleared")
	}
	// Logging out twice is fine.
	if err := mgr.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}
