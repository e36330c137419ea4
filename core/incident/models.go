package incident

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Incident is a health incident recorded by the nurse against a student.
// It never transitions through states; it exists until deleted.
type Incident struct {
	ID           string      `json:"incidentId"`
	StudentID    string      `json:"studentId"`
	IncidentDate string      `json:"incidentDate"`
	Description  string      `json:"description"`
	Severity     null.String `json:"severity,omitempty"`
	HandledBy    null.String `json:"handledBy,omitempty"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
}

type NewIncident struct {
	StudentID    string      `json:"studentId" validate:"required"`
	IncidentDate string      `json:"incidentDate" validate:"required,incidentdate"`
	Description  string      `json:"description" validate:"required"`
	Severity     null.String `json:"severity,omitempty"`
	HandledBy    null.String `json:"handledBy,omitempty"`
}

type UpdateIncident struct {
	IncidentDate string      `json:"incidentDate,omitempty" validate:"omitempty,incidentdate"`
	Description  string      `json:"description,omitempty"`
	Severity     null.String `json:"severity,omitempty"`
	HandledBy    null.String `json:"handledBy,omitempty"`
}
