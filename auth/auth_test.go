// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/models"
	"github.com/danielhkuo/quizdesk/testutil"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"bootstrap", "admin"},
		{"empty", ""},
		{"unicode", "pässwörd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := auth.HashPassword(tt.password)

			if len(hash) != auth.DigestLength {
				t.Errorf("HashPassword() length = %d, want %d", len(hash), auth.DigestLength)
			}
			// Verify it's valid hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashPassword() contains invalid hex char: %c", c)
				}
			}
			// Should be deterministic
			if hash != auth.HashPassword(tt.password) {
				t.Error("HashPassword() is not deterministic")
			}
			if hash == tt.password {
				t.Error("HashPassword() returned plaintext")
			}
		})
	}

	if auth.HashPassword("a") == auth.HashPassword("b") {
		t.Error("HashPassword() produced same digest for different passwords")
	}
}

func TestIssuer(t *testing.T) {
	issuer, err := auth.NewIssuer("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{ID: 42, Username: "alice", Role: models.RoleUser}

	token, expires, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Error("token already expired")
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	id, _ := claims.UserID()
	if id != 42 || claims.Username != "alice" || claims.Role != models.RoleUser {
		t.Errorf("unexpected claims %+v", claims)
	}

	t.Run("tampered token", func(t *testing.T) {
		if _, err := issuer.Parse(token + "x"); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("other secret", func(t *testing.T) {
		other, _ := auth.NewIssuer("other", time.Hour)
		if _, err := other.Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		short, _ := auth.NewIssuer("secret", -time.Minute)
		old, _, err := short.Issue(user)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := issuer.Parse(old); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		if _, err := auth.NewIssuer("", time.Hour); !errors.Is(err, auth.ErrMissingKey) {
			t.Errorf("expected ErrMissingKey, got %v", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := auth.NewService(store)
	ctx := context.Background()
	testutil.CreateTestUser(t, store, "alice", "wonderland")

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
		wantRole models.Role
	}{
		{"bootstrap admin", "admin", "admin", true, models.RoleAdmin},
		{"regular user", "alice", "wonderland", true, models.RoleUser},
		{"wrong password", "alice", "nope", false, ""},
		{"unknown user", "bob", "wonderland", false, ""},
		{"username is case-sensitive", "Alice", "wonderland", false, ""},
		{"digest is not accepted as password", "alice", auth.HashPassword("wonderland"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok, err := svc.Authenticate(ctx, tt.username, tt.password)
			if err != nil {
				t.Fatalf("Authenticate() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Authenticate() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && user.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", user.Role, tt.wantRole)
			}
		})
	}
}

func TestAuthenticate_AfterReinit(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := auth.NewService(store)
	ctx := context.Background()

	if err := store.Init(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := svc.Authenticate(ctx, auth.BootstrapAdminUsername, auth.BootstrapAdminPassword); err != nil || !ok {
		t.Errorf("bootstrap login after re-init: ok=%v err=%v", ok, err)
	}
}

func TestRegister(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := auth.NewService(store)
	ctx := context.Background()

	id, err := svc.Register(ctx, "carol", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	user, ok, err := svc.Authenticate(ctx, "carol", "pw")
	if err != nil || !ok || user.ID != id || user.Role != models.RoleUser {
		t.Errorf("registered user cannot log in: ok=%v err=%v user=%+v", ok, err, user)
	}
	if user.PasswordHash == "pw" {
		t.Error("password stored in plaintext")
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"admin", "admin", "pw", models.ErrReservedUsername},
		{"Admin", "Admin", "pw", models.ErrReservedUsername},
		{"ADMIN", "ADMIN", "pw", models.ErrReservedUsername},
		{"leading space admin", " admin", "pw", models.ErrReservedUsername},
		{"trailing space Admin", "Admin ", "pw", models.ErrReservedUsername},
		{"tab ADMIN", "\tADMIN", "pw", models.ErrReservedUsername},
		{"padded duplicate", "  carol\n", "other", models.ErrDuplicateUsername},
		{"duplicate", "carol", "other", models.ErrDuplicateUsername},
		{"blank username", "  ", "pw", nil},
		{"blank password", "dave", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.password)
			if !models.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	// Different case is a different account
	if _, err := svc.Register(ctx, "Carol", "pw"); err != nil {
		t.Errorf("Register(Carol) error = %v", err)
	}
}

func TestRegister_TrimsUsername(t *testing.T) {
	store := testutil.SetupTestStore(t)
	svc := auth.NewService(store)
	ctx := context.Background()

	id, err := svc.Register(ctx, "bob ", "pw")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stored, found, err := store.GetUserByUsername(ctx, "bob")
	if err != nil || !found {
		t.Fatalf("trimmed username not stored: found=%v err=%v", found, err)
	}
	if stored.ID != id {
		t.Errorf("stored id = %d, want %d", stored.ID, id)
	}

	for _, username := range []string{"bob", " bob", "bob\t"} {
		if _, ok, err := svc.Authenticate(ctx, username, "pw"); err != nil || !ok {
			t.Errorf("Authenticate(%q) ok=%v err=%v", username, ok, err)
		}
	}
}
