package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	pkgAuth "github.com/trangvu/shopmart/internal/pkg/auth"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthRegisterSuccess(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "alice@example.com", "Alice Tran", "password123")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user to have ID assigned")
	}
	if token != fmt.Sprintf("token-%d", user.ID) {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := store.Users().GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password123" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.FullName != "Alice Tran" {
		t.Fatalf("full name not stored: %v", stored.FullName)
	}
}

func TestAuthRegisterDuplicate(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob@example.com", "Bob", "password123"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob@example.com", "Bob", "password123"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthRegisterGeneratedEmails(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		email := testhelpers.RandomEmail()
		if _, _, err := uc.Register(ctx, email, "Eve", "password123"); err != nil {
			t.Fatalf("register %q failed: %v", email, err)
		}
		if _, err := store.Users().GetByEmail(ctx, email); err != nil {
			t.Fatalf("registered user %q not stored: %v", email, err)
		}
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewStore().Users(), testhelpers.HasherStub{}, newStrategyStub())
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "password123"},
		{"empty email", "", "password123"},
		{"short password", "carol@example.com", "short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.email, "Carol", tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthAuthenticate(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol@example.com", "Carol", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "absent@example.com", "password123"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol@example.com", "password123")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != fmt.Sprintf("token-%d", user.ID) {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthEmailNormalized(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAuthUseCase(store.Users(), testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "  Dave@Example.COM ", "Dave", "password123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "dave@example.com", "password123"); err != nil {
		t.Fatalf("authenticate with normalized email failed: %v", err)
	}
}

func TestAuthParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewStore().Users(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken("garbage"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
