package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/vetcare/clinic-service/internal/api/http"
	"github.com/vetcare/clinic-service/internal/auth"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/observability"
)

func newTestApp(t *testing.T, tokens *auth.TokenManager, required domain.Role) *fiber.App {
	t.Helper()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), false)

	mw := auth.NewMiddleware(tokens)
	app.Get("/protected", mw.Handle, auth.RequireRole(required), func(c *fiber.Ctx) error {
		claims, ok := auth.ClaimsFromContext(c)
		if !ok {
			t.Fatalf("claims missing from context")
		}
		return c.JSON(fiber.Map{"sub": claims.UserID})
	})
	return app
}

func TestMiddleware_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	app := newTestApp(t, tokens, domain.RoleCliente)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	app := newTestApp(t, tokens, domain.RoleCliente)

	for _, header := range []string{"Token abc", "Bearer", "abcdef"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	app := newTestApp(t, tokens, domain.RoleCliente)

	forged, _, err := auth.NewTokenManager("other-secret").GenerateToken(7, domain.RoleCliente)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	app := newTestApp(t, tokens, domain.RoleCliente)

	token, _, err := tokens.GenerateToken(7, domain.RoleCliente)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRole_Strict(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")

	cases := []struct {
		name     string
		tokenRol domain.Role
		required domain.Role
		want     int
	}{
		{"cliente on cliente route", domain.RoleCliente, domain.RoleCliente, http.StatusOK},
		{"admin on admin route", domain.RoleAdmin, domain.RoleAdmin, http.StatusOK},
		{"admin on cliente route", domain.RoleAdmin, domain.RoleCliente, http.StatusForbidden},
		{"cliente on admin route", domain.RoleCliente, domain.RoleAdmin, http.StatusForbidden},
		{"veterinario on admin route", domain.RoleVeterinario, domain.RoleAdmin, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, tokens, tc.required)

			token, _, err := tokens.GenerateToken(1, tc.tokenRol)
			if err != nil {
				t.Fatalf("GenerateToken returned error: %v", err)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}
