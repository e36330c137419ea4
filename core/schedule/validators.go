package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/schoolmed/console/core"
)

var (
	deductionPairTag  = "deduction_pair"
	deductionPairText = "inventoryId and a positive quantityToDeduct must be provided together"
)

// register custom validators
func init() {
	core.Validate.RegisterStructValidation(newScheduleStructValidation, NewSchedule{})
	core.RegisterCustomTranslation(deductionPairTag, deductionPairText)
}

// newScheduleStructValidation does NewSchedule's struct level validation
func newScheduleStructValidation(sl validator.StructLevel) {
	ns, ok := sl.Current().Interface().(NewSchedule)
	if !ok {
		return
	}
	// the deduction pair is all-or-nothing
	if ns.InventoryID.Valid != (ns.QuantityToDeduct.Valid && ns.QuantityToDeduct.Int > 0) {
		sl.ReportError(ns.InventoryID, "inventoryId", "InventoryID", deductionPairTag, "")
		sl.ReportError(ns.QuantityToDeduct, "quantityToDeduct", "QuantityToDeduct", deductionPairTag, "")
	}
}
