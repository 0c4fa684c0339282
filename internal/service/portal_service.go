package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/cache"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/repository"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// Dashboard aggregates everything the portal landing page shows, scoped to
// the authenticated client.
type Dashboard struct {
	Pacientes []domain.Patient              `json:"pacientes"`
	Citas     []domain.AppointmentForClient `json:"citas"`
	Pagos     []domain.PaymentForClient     `json:"pagos"`
	Examenes  []domain.ExamForClient        `json:"examenes"`
}

// PortalService covers the client portal flows. Every operation is scoped to
// the user id carried by the token; no client can reach another user's tree.
type PortalService struct {
	users        repository.UserRepository
	patients     repository.PatientRepository
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository
	payments     repository.PaymentRepository
	exams        repository.ExamRepository
	catalog      *cache.CatalogCache
}

// PortalDependencies bundles the repositories the portal needs.
type PortalDependencies struct {
	Users        repository.UserRepository
	Patients     repository.PatientRepository
	Services     repository.ServiceRepository
	Appointments repository.AppointmentRepository
	Payments     repository.PaymentRepository
	Exams        repository.ExamRepository
	Catalog      *cache.CatalogCache
}

// NewPortalService builds the service.
func NewPortalService(deps PortalDependencies) *PortalService {
	return &PortalService{
		users:        deps.Users,
		patients:     deps.Patients,
		services:     deps.Services,
		appointments: deps.Appointments,
		payments:     deps.Payments,
		exams:        deps.Exams,
		catalog:      deps.Catalog,
	}
}

// GetDashboard loads the four scoped collections in one shot.
func (s *PortalService) GetDashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	pacientes, err := s.patients.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	citas, err := s.ListAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}
	pagos, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	examenes, err := s.exams.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Pacientes: pacientes,
		Citas:     citas,
		Pagos:     pagos,
		Examenes:  examenes,
	}, nil
}

// ListPets returns the caller's pets.
func (s *PortalService) ListPets(ctx context.Context, userID int64) ([]domain.Patient, error) {
	return s.patients.ListByOwner(ctx, userID)
}

// AddPet registers a pet owned by the caller.
func (s *PortalService) AddPet(ctx context.Context, userID int64, req dto.ClientPetCreateRequest) (int64, error) {
	patient := &domain.Patient{
		UserID:  userID,
		Nombre:  req.Nombre,
		Especie: req.Especie,
		Raza:    req.Raza,
		Edad:    int(req.Edad.Int()),
		Peso:    req.Peso.Float(),
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return 0, err
	}
	return patient.ID, nil
}

// DeletePet removes an owned pet. Ownership is re-checked: a pet belonging to
// someone else looks exactly like a missing one.
func (s *PortalService) DeletePet(ctx context.Context, userID, petID int64) error {
	owned, err := s.patients.OwnedBy(ctx, petID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.NewNotFound("Mascota")
	}
	return s.patients.Delete(ctx, petID)
}

// ListAppointments returns the caller's appointments with display prices.
func (s *PortalService) ListAppointments(ctx context.Context, userID int64) ([]domain.AppointmentForClient, error) {
	citas, err := s.appointments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range citas {
		citas[i].PrecioFormateado = FormatPrecio(citas[i].Precio)
	}
	return citas, nil
}

// BookAppointment creates a booking for the caller. The status is always
// pendiente regardless of what the client sends.
func (s *PortalService) BookAppointment(ctx context.Context, userID int64, req dto.ClientAppointmentCreateRequest) (int64, error) {
	fecha, err := req.FechaCita.Time()
	if err != nil {
		return 0, apperrors.NewValidationError("Datos inválidos", map[string]any{"fecha_cita": []string{"invalid datetime"}})
	}

	appointment := &domain.Appointment{
		UserID:    userID,
		PatientID: req.IDPaciente.Int(),
		ServiceID: req.IDServicio.Int(),
		FechaCita: fecha,
		Estado:    domain.AppointmentPendiente,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return 0, err
	}
	return appointment.ID, nil
}

// ListServices returns the catalog with display prices, served from the
// Redis cache when warm.
func (s *PortalService) ListServices(ctx context.Context) ([]domain.ServiceForClient, error) {
	servicios, hit := s.catalog.Get(ctx)
	if !hit {
		var err error
		servicios, err = s.services.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		s.catalog.Set(ctx, servicios)
	}

	out := make([]domain.ServiceForClient, len(servicios))
	for i, svc := range servicios {
		out[i] = domain.ServiceForClient{Service: svc, PrecioFormateado: FormatPrecio(svc.Precio)}
	}
	return out, nil
}

// ListPayments returns the caller's payments.
func (s *PortalService) ListPayments(ctx context.Context, userID int64) ([]domain.PaymentForClient, error) {
	return s.payments.ListByUser(ctx, userID)
}

// ListExams returns the caller's exam requests.
func (s *PortalService) ListExams(ctx context.Context, userID int64) ([]domain.ExamForClient, error) {
	return s.exams.ListByOwner(ctx, userID)
}

// RequestExam files an exam request for an owned patient. Requests always
// start pendiente; a patient owned by someone else is a 403.
func (s *PortalService) RequestExam(ctx context.Context, userID int64, req dto.ClientExamCreateRequest) (int64, error) {
	owned, err := s.patients.OwnedBy(ctx, req.IDPaciente.Int(), userID)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, apperrors.NewForbidden("Mascota no encontrada")
	}

	exam := &domain.Exam{
		PatientID:     req.IDPaciente.Int(),
		TipoExamen:    req.TipoExamen,
		Observaciones: req.Observaciones,
		Estado:        domain.ExamPendiente,
	}
	if err := s.exams.Create(ctx, exam); err != nil {
		return 0, err
	}
	return exam.ID, nil
}

// GetProfile returns the caller's own account data.
func (s *PortalService) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Usuario")
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile edits the caller's own account data.
func (s *PortalService) UpdateProfile(ctx context.Context, userID int64, req dto.ProfileUpdateRequest) error {
	return s.users.UpdateProfile(ctx, userID, req.Nombre, req.Apellido, req.Telefono, req.Direccion)
}
