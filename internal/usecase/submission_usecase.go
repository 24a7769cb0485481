package usecase

import (
	"context"
	"errors"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase/interfaces"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// noServicesMarker is sent instead of an empty add-on list.
const noServicesMarker = "None"

// SubmissionReceipt is the result of a successful relay submission.
type SubmissionReceipt struct {
	Quote   entities.Quote          `json:"quote"`
	Lead    entities.LeadSubmission `json:"lead"`
	Message string                  `json:"message"`
}

// ISubmissionUseCase forwards a confirmed quote to the relay.
//
// Failures are one of *ValidationError, *entities.TransportError or
// *entities.RelayRejectedError; callers transition UI state only on success.

type ISubmissionUseCase interface {
	SubmitQuote(ctx context.Context, record entities.IntakeRecord) (SubmissionReceipt, error)
}

type SubmissionUseCase struct {
	gateway interfaces.IRelayGateway
	logger  *zap.Logger
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(gateway interfaces.IRelayGateway, logger *zap.Logger) *SubmissionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionUseCase{gateway: gateway, logger: logger}
}

// SubmitQuote issues exactly one relay call. There is no retry and no
// idempotency key, so a repeated call may notify twice.
func (u *SubmissionUseCase) SubmitQuote(ctx context.Context, record entities.IntakeRecord) (SubmissionReceipt, error) {
	if err := ValidateRecord(record); err != nil {
		u.logger.Warn("[submission][usecase] record failed validation", zap.Error(err))
		return SubmissionReceipt{}, err
	}

	quote := Estimate(record)
	lead := BuildLeadSubmission(quote)
	u.logger.Info("[submission][usecase] submitting lead",
		zap.String("property_type", lead.PropertyType),
		zap.String("total_cost", lead.TotalCost))

	receipt, err := u.gateway.Submit(ctx, lead)
	if err != nil {
		var rejected *entities.RelayRejectedError
		var transport *entities.TransportError
		switch {
		case errors.As(err, &rejected):
			u.logger.Error("[submission][usecase] data submission failed",
				zap.Int("status", rejected.StatusCode),
				zap.String("relay_message", rejected.Message))
		case errors.As(err, &transport):
			u.logger.Error("[submission][usecase] error submitting the data", zap.Error(err))
		default:
			u.logger.Error("[submission][usecase] error submitting the data", zap.Error(err))
			err = &entities.TransportError{Err: err}
		}
		return SubmissionReceipt{}, err
	}

	u.logger.Info("[submission][usecase] lead submitted", zap.String("total_cost", lead.TotalCost))
	return SubmissionReceipt{Quote: quote, Lead: lead, Message: receipt.Message}, nil
}

// BuildLeadSubmission flattens a quote into the text-only relay fields.
func BuildLeadSubmission(q entities.Quote) entities.LeadSubmission {
	r := q.Record
	return entities.LeadSubmission{
		Name:               r.Name,
		Mobile:             r.Phone,
		Address:            r.Address,
		PropertyType:       string(r.PropertyType),
		PropertySize:       entities.FormatNumber(r.PropertySize),
		SurfaceCondition:   strconv.Itoa(r.SurfaceCondition),
		AdditionalServices: leadServices(r),
		TotalCost:          entities.FormatNumber(q.TotalCost),
	}
}

// leadServices lists every selected id, known to the catalog or not.
func leadServices(r entities.IntakeRecord) string {
	if !r.HasAdditionalServices() {
		return noServicesMarker
	}
	parts := make([]string, len(r.AdditionalServices))
	for i, id := range r.AdditionalServices {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
