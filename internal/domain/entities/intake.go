package entities

// PropertyType is the closed set of properties the business quotes for.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyTypeResidential, PropertyTypeCommercial:
		return true
	}
	return false
}

// DefaultSurfaceCondition is the level preselected on a fresh intake form.
const DefaultSurfaceCondition = 3

// IntakeRecord is a validated description of the property and the
// requested add-ons. Only the intake validator builds one.
type IntakeRecord struct {
	Name               string       `json:"name"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address"`
	PropertyType       PropertyType `json:"propertyType"`
	PropertySize       float64      `json:"propertySize"`
	SurfaceCondition   int          `json:"surfaceCondition"`
	AdditionalServices []int        `json:"additionalServices"`
}

// HasAdditionalServices reports whether any add-on id was selected,
// known to the catalog or not.
func (r IntakeRecord) HasAdditionalServices() bool {
	return len(r.AdditionalServices) > 0
}
