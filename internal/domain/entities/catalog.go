package entities

import (
	"fmt"
	"strconv"
)

// Service is an optional add-on billed at a flat fee.
type Service struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Fee   float64 `json:"fee"`
}

// DisplayLabel renders the label shown next to the checkbox, e.g.
// "Roof Cleaning ($70)".
func (s Service) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", s.Label, FormatPrice(s.Fee))
}

// The catalog ids double as the historical form values and must not change.
const (
	ServiceRoofCleaning     = 70
	ServiceDrivewayCleaning = 45
	ServiceWindowCleaning   = 35
)

var serviceCatalog = []Service{
	{ID: ServiceRoofCleaning, Label: "Roof Cleaning", Fee: 70},
	{ID: ServiceDrivewayCleaning, Label: "Driveway Cleaning", Fee: 45},
	{ID: ServiceWindowCleaning, Label: "Window Cleaning", Fee: 35},
}

var conditionMultipliers = map[int]float64{
	1: 2,
	2: 4,
	3: 5,
	4: 7,
	5: 9,
}

const (
	MinSurfaceCondition = 1
	MaxSurfaceCondition = 5
)

// MaxPropertySize caps the accepted size in sqft so every quote total stays
// finite.
const MaxPropertySize = 1_000_000_000

// ServiceCatalog returns the add-on services in display order. The slice is a
// copy; the catalog itself never changes at runtime.
func ServiceCatalog() []Service {
	out := make([]Service, len(serviceCatalog))
	copy(out, serviceCatalog)
	return out
}

// LookupService resolves a catalog id.
func LookupService(id int) (Service, bool) {
	for _, s := range serviceCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ConditionMultiplier maps a surface condition rating to the per-square-foot
// multiplier. Ratings outside the table yield 0.
func ConditionMultiplier(condition int) float64 {
	return conditionMultipliers[condition]
}

// FormatPrice renders an amount with a literal dollar prefix and the shortest
// exact decimal representation (no rounding).
func FormatPrice(v float64) string {
	return "$" + FormatNumber(v)
}

// FormatNumber renders v the way it is sent to the relay: no exponent, no
// trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
