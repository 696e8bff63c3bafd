package norms

import (
	"fmt"
	"strings"
)

// CuttingType describes a conventional cutting style and its area coefficient
type CuttingType struct {
	ID          string
	Description string
	Coefficient float64
}

// CuttingTypes lists the cutting styles recognised on survey sheets
var CuttingTypes = []CuttingType{
	{
		ID:          "fresh",
		Description: "Fresh cutting (triangular section)",
		Coefficient: FreshCutting,
	},
	{
		ID:          "back",
		Description: "Back cutting (widening of an existing cut)",
		Coefficient: BackCutting,
	},
	{
		ID:          "box",
		Description: "Box cutting (full rectangular section)",
		Coefficient: BoxCutting,
	},
}

// LookupCutting finds a cutting type by its ID (case-insensitive)
func LookupCutting(id string) (CuttingType, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, ct := range CuttingTypes {
		if ct.ID == id {
			return ct, nil
		}
	}
	return CuttingType{}, fmt.Errorf("unknown cutting type %q (want fresh, back or box)", id)
}

// ClassifyCoefficient returns the cutting type whose coefficient matches ac
// within tol, if any.
func ClassifyCoefficient(ac, tol float64) (CuttingType, bool) {
	for _, ct := range CuttingTypes {
		d := ct.Coefficient - ac
		if d < 0 {
			d = -d
		}
		if d <= tol {
			return ct, true
		}
	}
	return CuttingType{}, false
}
