package schedule

import "github.com/volatiletech/null/v8"

// Schedule is a planned medication administration for a confirmed
// medication request.
type Schedule struct {
	ID            string      `json:"scheduleId"`
	RequestID     string      `json:"medicationRequestId"`
	StudentID     null.String `json:"studentId,omitempty"`
	StudentName   null.String `json:"studentName,omitempty"`
	ScheduledDate string      `json:"scheduledDate"`
	ScheduledTime string      `json:"scheduledTime"`
	Notes         null.String `json:"notes,omitempty"`
}

// NewSchedule optionally carries an inventory deduction pair; when set, the
// deduction is a second backend call issued right after the create.
type NewSchedule struct {
	RequestID        string      `json:"medicationRequestId" validate:"required"`
	ScheduledDate    string      `json:"scheduledDate" validate:"required,scheduledate"`
	ScheduledTime    string      `json:"scheduledTime" validate:"required"`
	InventoryID      null.String `json:"inventoryId,omitempty"`
	QuantityToDeduct null.Int    `json:"quantityToDeduct,omitempty"`
	Notes            null.String `json:"notes,omitempty"`
}

type UpdateSchedule struct {
	ScheduledDate string      `json:"scheduledDate,omitempty" validate:"omitempty,scheduledate"`
	ScheduledTime string      `json:"scheduledTime,omitempty"`
	Notes         null.String `json:"notes,omitempty"`
}
