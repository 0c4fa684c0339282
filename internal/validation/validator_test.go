package validation

import (
	"encoding/json"
	"errors"
	"testing"

	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

type petPayload struct {
	Nombre  string   `json:"nombre" validate:"required,min=1"`
	Especie string   `json:"especie" validate:"required,min=1"`
	Edad    *Integer `json:"edad" validate:"required,gte=0"`
	Peso    *Number  `json:"peso" validate:"required,gte=0"`
}

type accountPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,oneof=cliente veterinario admin"`
}

func validationDetails(t *testing.T, err error) map[string]any {
	t.Helper()

	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if de.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", de.Code)
	}
	return de.Details
}

func TestValidator_Valid(t *testing.T) {
	val := New()

	var payload petPayload
	body := `{"nombre":"Luna","especie":"gato","edad":3,"peso":4.2}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if err := val.Struct(payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidator_ZeroValuesAreSupplied(t *testing.T) {
	val := New()

	var payload petPayload
	body := `{"nombre":"Luna","especie":"gato","edad":0,"peso":0}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if err := val.Struct(payload); err != nil {
		t.Fatalf("literal zero should pass required, got %v", err)
	}
}

func TestValidator_ReportsEveryField(t *testing.T) {
	val := New()

	var payload petPayload
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	details := validationDetails(t, val.Struct(payload))
	for _, field := range []string{"nombre", "especie", "edad", "peso"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected details for field %q, got %v", field, details)
		}
	}
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	val := New()

	payload := accountPayload{Email: "not-an-email", Password: "corto", Rol: "dueño"}
	details := validationDetails(t, val.Struct(payload))

	for _, field := range []string{"email", "password", "rol"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected details keyed by json name %q, got %v", field, details)
		}
	}
	if _, ok := details["Email"]; ok {
		t.Fatalf("details must not use Go field names: %v", details)
	}
}

func TestValidator_CoercedStringInputs(t *testing.T) {
	val := New()

	var payload petPayload
	body := `{"nombre":"Luna","especie":"gato","edad":"3","peso":"4.2"}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if err := val.Struct(payload); err != nil {
		t.Fatalf("quoted numerics should validate, got %v", err)
	}
	if payload.Edad.Int() != 3 || payload.Peso.Float() != 4.2 {
		t.Fatalf("coerced values wrong: edad=%d peso=%v", payload.Edad.Int(), payload.Peso.Float())
	}
}

func TestValidator_NegativeRejected(t *testing.T) {
	val := New()

	var payload petPayload
	body := `{"nombre":"Luna","especie":"gato","edad":-1,"peso":4.2}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	details := validationDetails(t, val.Struct(payload))
	if _, ok := details["edad"]; !ok {
		t.Fatalf("expected edad to fail gte=0, got %v", details)
	}
}
