package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/vetcare/clinic-service/internal/api/http"
	"github.com/vetcare/clinic-service/internal/api/http/handlers"
	"github.com/vetcare/clinic-service/internal/config"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/observability"
	"github.com/vetcare/clinic-service/internal/service"
	"github.com/vetcare/clinic-service/internal/validation"
)

type memoryUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *memoryUserRepo) List(_ context.Context, _ string) ([]domain.User, error) {
	return nil, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, _ int64, _ map[string]any) error {
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepo) GetProfile(_ context.Context, _ int64) (*domain.Profile, error) {
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, _ int64, _, _, _, _ string) error {
	return nil
}

func newAuthApp() *fiber.App {
	repo := newMemoryUserRepo()
	authService := service.NewAuthService(config.AuthConfig{JWTSecret: "test-secret", BcryptCost: bcrypt.MinCost}, repo)
	h := handlers.NewAuthHandler(authService, validation.New())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), false)
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, decoded
}

const registerBody = `{
	"nombre": "Ana",
	"apellido": "Gómez",
	"email": "ana@example.com",
	"password": "supersegura",
	"telefono": "3001234567",
	"direccion": "Calle 1 # 2-3"
}`

func TestAuthEndpoints_RegisterAndLogin(t *testing.T) {
	app := newAuthApp()

	resp, body := postJSON(t, app, "/auth/register", registerBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}
	if body["message"] != "Usuario registrado" {
		t.Fatalf("unexpected message: %v", body)
	}

	resp, body = postJSON(t, app, "/auth/login", `{"email":"ana@example.com","password":"supersegura"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if token, _ := body["token"].(string); token == "" {
		t.Fatalf("expected token in response: %v", body)
	}
	user, _ := body["user"].(map[string]any)
	if user == nil || user["rol"] != "cliente" {
		t.Fatalf("unexpected user projection: %v", body)
	}
	if _, leaked := user["email"]; leaked {
		t.Fatalf("login must not expose contact data: %v", user)
	}
}

func TestAuthEndpoints_RegisterDuplicate(t *testing.T) {
	app := newAuthApp()

	if resp, body := postJSON(t, app, "/auth/register", registerBody); resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}

	resp, body := postJSON(t, app, "/auth/register", registerBody)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", resp.StatusCode, body)
	}
	errBody, _ := body["error"].(map[string]any)
	if errBody == nil || errBody["code"] != "CONFLICT" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestAuthEndpoints_ValidationEnvelope(t *testing.T) {
	app := newAuthApp()

	resp, body := postJSON(t, app, "/auth/register", `{"email":"no-es-correo"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%v)", resp.StatusCode, body)
	}

	errBody, _ := body["error"].(map[string]any)
	if errBody == nil || errBody["code"] != "VALIDATION_FAILED" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	details, _ := errBody["details"].(map[string]any)
	for _, field := range []string{"nombre", "apellido", "email", "password"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected details for %q, got %v", field, details)
		}
	}
}

func TestAuthEndpoints_LoginBadPassword(t *testing.T) {
	app := newAuthApp()

	if resp, body := postJSON(t, app, "/auth/register", registerBody); resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", resp.StatusCode, body)
	}

	resp, body := postJSON(t, app, "/auth/login", `{"email":"ana@example.com","password":"incorrecta"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%v)", resp.StatusCode, body)
	}
	errBody, _ := body["error"].(map[string]any)
	if errBody == nil || errBody["message"] != "Credenciales inválidas" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}
