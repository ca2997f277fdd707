package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID        int               `json:"id"`
	PatientID int               `json:"patientId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Reason    string            `json:"reason"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// AppointmentWithPatient is the read-side shape: the stored appointment plus
// the owning patient's name resolved at read time. The name is never persisted.
type AppointmentWithPatient struct {
	Appointment
	PatientName string `json:"patientName"`
}

type CreateAppointmentRequest struct {
	PatientID int               `json:"patientId" binding:"required"`
	Date      string            `json:"date" binding:"required"`
	Time      string            `json:"time" binding:"required"`
	Reason    string            `json:"reason" binding:"required"`
	Status    AppointmentStatus `json:"status"`
}

// UpdateAppointmentRequest merges field by field: a field is applied only when
// it is present in the payload with a non-zero value, otherwise the stored
// value is kept.
type UpdateAppointmentRequest struct {
	PatientID *int               `json:"patientId"`
	Date      *string            `json:"date"`
	Time      *string            `json:"time"`
	Reason    *string            `json:"reason"`
	Status    *AppointmentStatus `json:"status"`
}
