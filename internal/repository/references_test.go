package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vetcare/clinic-service/internal/domain"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// probeFor answers true for every table except the named one, recording the
// lookups it served. The pool stays nil in these tests: a write reaching the
// store would panic, so a passing test proves the failed check wrote nothing.
func probeFor(missingTable string, calls *[]string) existsProbe {
	return func(_ context.Context, table, idColumn string, id int64) (bool, error) {
		if calls != nil {
			*calls = append(*calls, table)
		}
		return table != missingTable, nil
	}
}

func assertDomainError(t *testing.T, err error, code string, status int) *apperrors.DomainError {
	t.Helper()

	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if de.Code != code || de.HTTPStatus != status {
		t.Fatalf("expected %s %d, got %s %d", code, status, de.Code, de.HTTPStatus)
	}
	return de
}

func TestPatientRepository_Create_MissingOwner(t *testing.T) {
	repo := &patientRepository{exists: probeFor("usuarios", nil)}

	err := repo.Create(context.Background(), &domain.Patient{UserID: 99, Nombre: "Luna"})
	de := assertDomainError(t, err, "VALIDATION_FAILED", 400)
	if de.Message != "Usuario no existe" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestPatientRepository_Update_MissingOwner(t *testing.T) {
	repo := &patientRepository{exists: probeFor("usuarios", nil)}

	err := repo.Update(context.Background(), 1, map[string]any{"id_usuario": int64(99), "nombre": "Luna"})
	assertDomainError(t, err, "VALIDATION_FAILED", 400)
}

func TestAppointmentRepository_Create_MissingReference(t *testing.T) {
	cases := []struct {
		missingTable string
		wantMessage  string
	}{
		{"usuarios", "Usuario no existe"},
		{"pacientes", "Paciente no existe"},
		{"servicios", "Servicio no existe"},
	}

	for _, tc := range cases {
		t.Run(tc.missingTable, func(t *testing.T) {
			repo := &appointmentRepository{exists: probeFor(tc.missingTable, nil)}

			err := repo.Create(context.Background(), &domain.Appointment{
				UserID:    1,
				PatientID: 2,
				ServiceID: 3,
				FechaCita: time.Now(),
				Estado:    domain.AppointmentPendiente,
			})
			de := assertDomainError(t, err, "VALIDATION_FAILED", 400)
			if de.Message != tc.wantMessage {
				t.Fatalf("expected %q, got %q", tc.wantMessage, de.Message)
			}
		})
	}
}

func TestAppointmentRepository_CheckReferences_OnlySuppliedIDs(t *testing.T) {
	calls := []string{}
	repo := &appointmentRepository{exists: probeFor("", &calls)}

	// Only int64-typed reference fields are probed: a partial update carrying
	// just schedule and status triggers no lookup at all.
	err := repo.checkReferences(context.Background(), map[string]any{
		"fecha_cita": "2026-09-10 10:00:00",
		"estado":     "confirmada",
	})
	if err != nil {
		t.Fatalf("checkReferences returned error: %v", err)
	}
	if len(calls) != 0 {
		t.Fatalf("expected no probes, got %v", calls)
	}

	calls = calls[:0]
	err = repo.checkReferences(context.Background(), map[string]any{
		"id_paciente": int64(2),
		"estado":      "confirmada",
	})
	if err != nil {
		t.Fatalf("checkReferences returned error: %v", err)
	}
	if len(calls) != 1 || calls[0] != "pacientes" {
		t.Fatalf("expected a single pacientes probe, got %v", calls)
	}
}

func TestPaymentRepository_Create_MissingCita(t *testing.T) {
	repo := &paymentRepository{exists: probeFor("citas", nil)}

	err := repo.Create(context.Background(), &domain.Payment{
		AppointmentID: 99,
		MetodoPago:    domain.PaymentEfectivo,
		Monto:         45000,
		FechaPago:     time.Now(),
		Estado:        domain.PaymentPagado,
	})
	de := assertDomainError(t, err, "VALIDATION_FAILED", 400)
	if de.Message != "Cita no existe" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
}

func TestPaymentRepository_Update_MissingCita(t *testing.T) {
	repo := &paymentRepository{exists: probeFor("citas", nil)}

	err := repo.Update(context.Background(), 1, map[string]any{"id_cita": int64(99)})
	assertDomainError(t, err, "VALIDATION_FAILED", 400)
}

func TestPaymentRepository_Delete_Missing(t *testing.T) {
	calls := []string{}
	repo := &paymentRepository{exists: probeFor("pagos", &calls)}

	err := repo.Delete(context.Background(), 99)
	de := assertDomainError(t, err, "NOT_FOUND", 404)
	if de.Message != "Pago no encontrado" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
	if len(calls) != 1 || calls[0] != "pagos" {
		t.Fatalf("expected a single pagos probe, got %v", calls)
	}
}
