package healthinfo

import "github.com/volatiletech/null/v8"

// HealthInfo is a student's standing health record, distinct from the
// point-in-time incidents tracked in core/incident.
type HealthInfo struct {
	ID              string       `json:"healthInfoId"`
	StudentID       string       `json:"studentId"`
	BloodType       null.String  `json:"bloodType,omitempty"`
	HeightCm        null.Float64 `json:"heightCm,omitempty"`
	WeightKg        null.Float64 `json:"weightKg,omitempty"`
	Allergies       null.String  `json:"allergies,omitempty"`
	ChronicDiseases null.String  `json:"chronicDiseases,omitempty"`
	Vision          null.String  `json:"vision,omitempty"`
	Hearing         null.String  `json:"hearing,omitempty"`
	Notes           null.String  `json:"notes,omitempty"`
}

type NewHealthInfo struct {
	StudentID       string       `json:"studentId" validate:"required"`
	BloodType       null.String  `json:"bloodType,omitempty"`
	HeightCm        null.Float64 `json:"heightCm,omitempty"`
	WeightKg        null.Float64 `json:"weightKg,omitempty"`
	Allergies       null.String  `json:"allergies,omitempty"`
	ChronicDiseases null.String  `json:"chronicDiseases,omitempty"`
	Vision          null.String  `json:"vision,omitempty"`
	Hearing         null.String  `json:"hearing,omitempty"`
	Notes           null.String  `json:"notes,omitempty"`
}

type UpdateHealthInfo struct {
	BloodType       null.String  `json:"bloodType,omitempty"`
	HeightCm        null.Float64 `json:"heightCm,omitempty"`
	WeightKg        null.Float64 `json:"weightKg,omitempty"`
	Allergies       null.String  `json:"allergies,omitempty"`
	ChronicDiseases null.String  `json:"chronicDiseases,omitempty"`
	Vision          null.String  `json:"vision,omitempty"`
	Hearing         null.String  `json:"hearing,omitempty"`
	Notes           null.String  `json:"notes,omitempty"`
}
