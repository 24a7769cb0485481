package response

import (
	"prowash_quote/internal/usecase"
	"time"
)

// IntakeFormResponse carries the values a fresh form starts from.
type IntakeFormResponse struct {
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	PropertyType       string   `json:"propertyType"`
	PropertySize       *float64 `json:"propertySize"`
	SurfaceCondition   int      `json:"surfaceCondition"`
	AdditionalServices []int    `json:"additionalServices"`
}

type FlowSessionResponse struct {
	SessionID string              `json:"session_id"`
	Stage     string              `json:"stage"`
	Quote     *QuoteResponse      `json:"quote,omitempty"`
	Form      *IntakeFormResponse `json:"form,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func FromFlowView(v usecase.FlowView) FlowSessionResponse {
	out := FlowSessionResponse{
		SessionID: v.Session.ID,
		Stage:     string(v.Session.Stage),
		CreatedAt: v.Session.CreatedAt,
		UpdatedAt: v.Session.UpdatedAt,
	}
	if v.Quote != nil {
		q := FromQuote(*v.Quote)
		out.Quote = &q
	}
	if v.Form != nil {
		services := v.Form.AdditionalServices
		if services == nil {
			services = []int{}
		}
		out.Form = &IntakeFormResponse{
			Name:               v.Form.Name,
			Phone:              v.Form.Phone,
			Address:            v.Form.Address,
			PropertyType:       v.Form.PropertyType,
			PropertySize:       v.Form.PropertySize,
			SurfaceCondition:   v.Form.SurfaceCondition,
			AdditionalServices: services,
		}
	}
	return out
}

// SubmissionAckResponse is returned once the relay accepted the lead.
type SubmissionAckResponse struct {
	Message string              `json:"message"`
	Session FlowSessionResponse `json:"session"`
}
