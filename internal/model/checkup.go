package model

import "time"

type Checkup struct {
	ID           int       `json:"id"`
	PatientID    int       `json:"patientId"`
	Date         string    `json:"date"`
	Symptoms     string    `json:"symptoms"`
	Diagnosis    string    `json:"diagnosis"`
	Prescription string    `json:"prescription"`
	FollowUpDate string    `json:"followUpDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CheckupWithPatient is the read-side shape with the owning patient's name
// resolved at read time. The name is never persisted.
type CheckupWithPatient struct {
	Checkup
	PatientName string `json:"patientName"`
}

type CreateCheckupRequest struct {
	PatientID    int    `json:"patientId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Symptoms     string `json:"symptoms" binding:"required"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Prescription string `json:"prescription"`
	FollowUpDate string `json:"followUpDate"`
}

// UpdateCheckupRequest carries two merge policies. Date, symptoms, and
// diagnosis are applied only when present and non-empty. Prescription and
// followUpDate are applied whenever the key is present in the payload, so an
// explicit empty string clears the stored value while an absent key keeps it.
type UpdateCheckupRequest struct {
	Date         *string `json:"date"`
	Symptoms     *string `json:"symptoms"`
	Diagnosis    *string `json:"diagnosis"`
	Prescription *string `json:"prescription"`
	FollowUpDate *string `json:"followUpDate"`
}
