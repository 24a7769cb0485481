package usecase

import (
	"prowash_quote/internal/domain/entities"
)

// Estimate prices an intake record. It is total over its input: an
// out-of-range surface condition yields a zero multiplier and unknown
// add-on ids contribute nothing.
func Estimate(record entities.IntakeRecord) entities.Quote {
	multiplier := entities.ConditionMultiplier(record.SurfaceCondition)
	base := multiplier * record.PropertySize

	items := make([]entities.LineItem, 0, len(record.AdditionalServices))
	addOns := 0.0
	for _, id := range record.AdditionalServices {
		s, ok := entities.LookupService(id)
		if !ok {
			continue
		}
		items = append(items, entities.LineItem{ID: s.ID, Label: s.Label, Fee: s.Fee})
		addOns += s.Fee
	}

	return entities.Quote{
		Record:           record,
		Multiplier:       multiplier,
		BaseCost:         base,
		ItemizedServices: items,
		AddOnTotal:       addOns,
		TotalCost:        base + addOns,
	}
}

// CatalogView is the public pricing table.
type CatalogView struct {
	Services             []entities.Service `json:"services"`
	ConditionMultipliers map[int]float64    `json:"conditionMultipliers"`
}

// IEstimateUseCase exposes the stateless pricing operations.

type IEstimateUseCase interface {
	EstimateIntake(form IntakeForm) (entities.Quote, error)
	Catalog() CatalogView
}

type EstimateUseCase struct{}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase() *EstimateUseCase {
	return &EstimateUseCase{}
}

// EstimateIntake validates a raw form and prices it.
func (u *EstimateUseCase) EstimateIntake(form IntakeForm) (entities.Quote, error) {
	record, err := ValidateIntake(form)
	if err != nil {
		return entities.Quote{}, err
	}
	return Estimate(record), nil
}

func (u *EstimateUseCase) Catalog() CatalogView {
	multipliers := make(map[int]float64, entities.MaxSurfaceCondition)
	for c := entities.MinSurfaceCondition; c <= entities.MaxSurfaceCondition; c++ {
		multipliers[c] = entities.ConditionMultiplier(c)
	}
	return CatalogView{
		Services:             entities.ServiceCatalog(),
		ConditionMultipliers: multipliers,
	}
}
