package response

import (
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase"
)

type LineItemResponse struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Fee   float64 `json:"fee"`
}

type QuoteResponse struct {
	Name               string             `json:"name"`
	Phone              string             `json:"phone"`
	Address            string             `json:"address"`
	PropertyType       string             `json:"propertyType"`
	PropertySize       float64            `json:"propertySize"`
	SurfaceCondition   int                `json:"surfaceCondition"`
	AdditionalServices []int              `json:"additionalServices"`
	ServiceLabels      []string           `json:"serviceLabels"`
	ItemizedServices   []LineItemResponse `json:"itemizedServices"`
	Multiplier         float64            `json:"multiplier"`
	BaseCost           float64            `json:"baseCost"`
	AddOnTotal         float64            `json:"addOnTotal"`
	TotalCost          float64            `json:"totalCost"`
	DisplayTotal       string             `json:"displayTotal"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	services := q.Record.AdditionalServices
	if services == nil {
		services = []int{}
	}
	items := make([]LineItemResponse, 0, len(q.ItemizedServices))
	for _, item := range q.ItemizedServices {
		items = append(items, LineItemResponse{ID: item.ID, Label: item.Label, Fee: item.Fee})
	}
	return QuoteResponse{
		Name:               q.Record.Name,
		Phone:              q.Record.Phone,
		Address:            q.Record.Address,
		PropertyType:       string(q.Record.PropertyType),
		PropertySize:       q.Record.PropertySize,
		SurfaceCondition:   q.Record.SurfaceCondition,
		AdditionalServices: services,
		ServiceLabels:      q.ServiceLabels(),
		ItemizedServices:   items,
		Multiplier:         q.Multiplier,
		BaseCost:           q.BaseCost,
		AddOnTotal:         q.AddOnTotal,
		TotalCost:          q.TotalCost,
		DisplayTotal:       entities.FormatPrice(q.TotalCost),
	}
}

type ServiceResponse struct {
	ID           int     `json:"id"`
	Label        string  `json:"label"`
	Fee          float64 `json:"fee"`
	DisplayLabel string  `json:"displayLabel"`
}

type CatalogResponse struct {
	Services             []ServiceResponse  `json:"services"`
	ConditionMultipliers map[string]float64 `json:"conditionMultipliers"`
}

func FromCatalog(v usecase.CatalogView) CatalogResponse {
	services := make([]ServiceResponse, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, ServiceResponse{ID: s.ID, Label: s.Label, Fee: s.Fee, DisplayLabel: s.DisplayLabel()})
	}
	multipliers := make(map[string]float64, len(v.ConditionMultipliers))
	for c, m := range v.ConditionMultipliers {
		multipliers[entities.FormatNumber(float64(c))] = m
	}
	return CatalogResponse{Services: services, ConditionMultipliers: multipliers}
}
