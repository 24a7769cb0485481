package request

import (
	"math"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase"
	"strconv"
	"strings"
)

// IntakeRequest is the JSON body of the intake endpoints. Missing
// surfaceCondition falls back to the form default.
type IntakeRequest struct {
	Name               string   `json:"name" example:"A"`
	Phone              string   `json:"phone" example:"555"`
	Address            string   `json:"address" example:"1 Main St"`
	PropertyType       string   `json:"propertyType" example:"residential"`
	PropertySize       *float64 `json:"propertySize" example:"1000"`
	SurfaceCondition   *int     `json:"surfaceCondition" example:"3"`
	AdditionalServices []int    `json:"additionalServices"`
}

func (r IntakeRequest) ToIntakeForm() usecase.IntakeForm {
	condition := entities.DefaultSurfaceCondition
	if r.SurfaceCondition != nil {
		condition = *r.SurfaceCondition
	}
	return usecase.IntakeForm{
		Name:               r.Name,
		Phone:              r.Phone,
		Address:            r.Address,
		PropertyType:       r.PropertyType,
		PropertySize:       r.PropertySize,
		SurfaceCondition:   condition,
		AdditionalServices: r.AdditionalServices,
	}
}

// IntakeFormRequest is the urlencoded body posted by the HTML form. Every
// value arrives as text; unparsable numbers are left for the validator to
// reject.
type IntakeFormRequest struct {
	Name               string   `form:"name"`
	Phone              string   `form:"phone"`
	Address            string   `form:"address"`
	PropertyType       string   `form:"propertyType"`
	PropertySize       string   `form:"propertySize"`
	SurfaceCondition   string   `form:"surfaceCondition"`
	AdditionalServices []string `form:"additionalServices"`
}

func (r IntakeFormRequest) ToIntakeForm() usecase.IntakeForm {
	return usecase.IntakeForm{
		Name:               r.Name,
		Phone:              r.Phone,
		Address:            r.Address,
		PropertyType:       r.PropertyType,
		PropertySize:       parseSize(r.PropertySize),
		SurfaceCondition:   parseCondition(r.SurfaceCondition),
		AdditionalServices: parseServiceIDs(r.AdditionalServices),
	}
}

func parseSize(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseCondition(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.DefaultSurfaceCondition
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func parseServiceIDs(raw []string) []int {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
