package student

import (
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core"
)

type Student struct {
	ID          string       `json:"studentId"`
	Code        string       `json:"studentCode"`
	FullName    string       `json:"fullName"`
	DateOfBirth string       `json:"dateOfBirth"`
	Gender      string       `json:"gender"`
	ClassName   string       `json:"className"`
	BloodType   null.String  `json:"bloodType,omitempty"`
	HeightCm    null.Float64 `json:"heightCm,omitempty"`
	WeightKg    null.Float64 `json:"weightKg,omitempty"`
	IsConfirm   bool         `json:"isConfirm"`
}

// Age derives the student's age in full years from the recorded birthdate.
func (s Student) Age() (int, error) {
	return core.Age(s.DateOfBirth)
}

type NewStudent struct {
	Code        string       `json:"studentCode" validate:"required,alphanum_"`
	FullName    string       `json:"fullName" validate:"required"`
	DateOfBirth string       `json:"dateOfBirth" validate:"required,birthdate"`
	Gender      string       `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	ClassName   string       `json:"className" validate:"required"`
	BloodType   null.String  `json:"bloodType,omitempty"`
	HeightCm    null.Float64 `json:"heightCm,omitempty"`
	WeightKg    null.Float64 `json:"weightKg,omitempty"`
}

type UpdateStudent struct {
	FullName    string       `json:"fullName,omitempty"`
	DateOfBirth string       `json:"dateOfBirth,omitempty" validate:"omitempty,birthdate"`
	Gender      string       `json:"gender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	ClassName   string       `json:"className,omitempty"`
	BloodType   null.String  `json:"bloodType,omitempty"`
	HeightCm    null.Float64 `json:"heightCm,omitempty"`
	WeightKg    null.Float64 `json:"weightKg,omitempty"`
	IsConfirm   *bool        `json:"isConfirm,omitempty"`
}

// Page is the paginated student listing. Content is never nil.
type Page struct {
	Content       []Student `json:"content"`
	TotalElements int       `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Number        int       `json:"number"`
}

type Query struct {
	Page int
	Size int
	Sort string
}
