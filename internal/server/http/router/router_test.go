package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trangvu/shopmart/internal/pkg/auth"
	"github.com/trangvu/shopmart/internal/server/http/handlers"
	"github.com/trangvu/shopmart/internal/test/facadetest"
)

var _ handlers.ShopFacade = facadetest.ShopStub{}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := Setup(facadetest.ShopStub{}, testLogger())

	body, _ := json.Marshal(map[string]string{"email": "a@b.com", "full_name": "Ann", "password": "long-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("products: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products/1", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("product detail: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/shipping/methods", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("shipping methods: expected 200, got %d", resp.Code)
	}
}

func TestSetupChatAllowsAnonymous(t *testing.T) {
	engine := Setup(facadetest.ShopStub{}, testLogger())

	body, _ := json.Marshal(map[string]string{"message": "what phones do you have"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("chat: expected 200 for anonymous caller, got %d", resp.Code)
	}
}

func TestSetupProtectedRoutes(t *testing.T) {
	engine := Setup(facadetest.ShopStub{}, testLogger())

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/user/orders", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("orders without token: expected 401, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("orders with token: expected 200, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("profile with token: expected 200, got %d", resp.Code)
	}
}

func TestSetupRejectsInvalidToken(t *testing.T) {
	facade := facadetest.ShopStub{
		AuthStub: facadetest.AuthStub{ParseTokenFn: func(string) (int64, error) {
			return 0, auth.ErrInvalidToken
		}},
	}
	engine := Setup(facade, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	req.Header.Set("Authorization", "Bearer bad")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}
}

func TestSetupAdminRoutes(t *testing.T) {
	engine := Setup(facadetest.ShopStub{}, testLogger())

	body, _ := json.Marshal(map[string]any{"name": "Phone", "price": 500.0, "stock": 10})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("admin product create: expected 201, got %d", resp.Code)
	}
}
