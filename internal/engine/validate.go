package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/BedMatch/internal/model"
)

// Input bounds, in millimeters where applicable.
const (
	MaxDimension = 10000.0
	MaxQuantity  = 10000
	MaxMargin    = 100.0
)

// ValidateWorkspaceInput checks a possibly incomplete workpiece against every
// input rule and reports all violations together. Every field is required;
// a missing one is reported as "<Field> is required". Dimensions and margin
// are converted to millimeters before their bounds are checked.
func ValidateWorkspaceInput(in model.WorkpieceInput) model.ValidationResult {
	var errs []string

	errs = append(errs, checkDimension("Length", in.Length, in.Unit)...)
	errs = append(errs, checkDimension("Width", in.Width, in.Unit)...)

	switch {
	case in.Quantity == nil:
		errs = append(errs, "Quantity is required")
	case *in.Quantity < 1:
		errs = append(errs, "Quantity must be at least 1")
	case *in.Quantity > MaxQuantity:
		errs = append(errs, fmt.Sprintf("Quantity must not exceed %d", MaxQuantity))
	}

	if in.Margin == nil {
		errs = append(errs, "Margin is required")
	} else {
		m := model.ToMillimeters(*in.Margin, in.Unit)
		switch {
		case math.IsNaN(m) || math.IsInf(m, 0):
			errs = append(errs, "Margin must be a finite number")
		case m < 0:
			errs = append(errs, "Margin must not be negative")
		case m > MaxMargin:
			errs = append(errs, fmt.Sprintf("Margin must not exceed %.0f mm", MaxMargin))
		}
	}

	if len(errs) > 0 {
		return model.ValidationResult{Valid: false, Errors: errs}
	}
	return model.ValidationResult{Valid: true, Errors: []string{}}
}

// ValidateWorkpiece validates a complete workpiece and returns a
// *model.ValidationError listing every violation, or nil.
func ValidateWorkpiece(w model.Workpiece) error {
	return ValidateWorkspaceInput(w.Input()).Err()
}

func checkDimension(name string, v *float64, u model.Unit) []string {
	if v == nil {
		return []string{name + " is required"}
	}
	mm := model.ToMillimeters(*v, u)
	switch {
	case math.IsNaN(mm) || math.IsInf(mm, 0):
		return []string{name + " must be a finite number"}
	case mm <= 0:
		return []string{name + " must be greater than 0"}
	case mm > MaxDimension:
		return []string{fmt.Sprintf("%s must not exceed %.0f mm", name, MaxDimension)}
	}
	return nil
}
