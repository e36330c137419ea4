package inventory

import "github.com/volatiletech/null/v8"

// MedicalItem is the catalog entry; Item wraps it with the tracked quantity.
type MedicalItem struct {
	ID                  string      `json:"medicalItemId"`
	Name                string      `json:"name"`
	Category            string      `json:"category"`
	Manufacturer        null.String `json:"manufacturer,omitempty"`
	ExpiryDate          string      `json:"expiryDate"`
	StorageInstructions null.String `json:"storageInstructions,omitempty"`
	Unit                string      `json:"unit"`
}

type Item struct {
	ID            string      `json:"inventoryId"`
	MedicalItem   MedicalItem `json:"medicalItem"`
	TotalQuantity int         `json:"totalQuantity"`
}

// NewItem feeds the two-step add: the catalog entry is created first, then
// the quantity-tracking inventory record pointing at it.
type NewItem struct {
	Name                string      `json:"name" validate:"required"`
	Category            string      `json:"category" validate:"required"`
	Manufacturer        null.String `json:"manufacturer,omitempty"`
	ExpiryDate          string      `json:"expiryDate" validate:"required,expirydate"`
	StorageInstructions null.String `json:"storageInstructions,omitempty"`
	Unit                string      `json:"unit" validate:"required"`
	TotalQuantity       int         `json:"totalQuantity" validate:"min=0"`
}

func (ni NewItem) medicalItem() MedicalItem {
	return MedicalItem{
		Name:                ni.Name,
		Category:            ni.Category,
		Manufacturer:        ni.Manufacturer,
		ExpiryDate:          ni.ExpiryDate,
		StorageInstructions: ni.StorageInstructions,
		Unit:                ni.Unit,
	}
}

type UpdateItem struct {
	TotalQuantity null.Int `json:"totalQuantity,omitempty"`
}

type UpdateMedicalItem struct {
	Name                string      `json:"name,omitempty"`
	Category            string      `json:"category,omitempty"`
	Manufacturer        null.String `json:"manufacturer,omitempty"`
	ExpiryDate          string      `json:"expiryDate,omitempty" validate:"omitempty,expirydate"`
	StorageInstructions null.String `json:"storageInstructions,omitempty"`
	Unit                string      `json:"unit,omitempty"`
}

// newInventoryRecord is the body of the second call of the composite add.
type newInventoryRecord struct {
	MedicalItemID string `json:"medicalItemId"`
	TotalQuantity int    `json:"totalQuantity"`
}

type deduction struct {
	Quantity int `json:"quantityToDeduct"`
}
