package domain

import "time"

// ExamStatus enumerates exam lifecycle states.
type ExamStatus string

const (
	ExamPendiente  ExamStatus = "pendiente"
	ExamEnProceso  ExamStatus = "en_proceso"
	ExamCompletado ExamStatus = "completado"
)

// Exam is a lab exam requested for a patient. Clients may only request exams
// for patients they own; requests always start pendiente.
type Exam struct {
	ID            int64      `json:"id_examen"`
	PatientID     int64      `json:"id_paciente"`
	TipoExamen    string     `json:"tipo_examen"`
	FechaExamen   time.Time  `json:"fecha_examen"`
	Resultado     string     `json:"resultado"`
	Observaciones string     `json:"observaciones"`
	Estado        ExamStatus `json:"estado"`
}

// ExamForClient is the client portal row, joined with the patient name.
type ExamForClient struct {
	Exam
	PacienteNombre string `json:"paciente_nombre"`
}
