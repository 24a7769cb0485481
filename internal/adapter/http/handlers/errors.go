package handlers

import (
	"errors"
	"net/http"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase"
	"prowash_quote/pkg"
)

var (
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
)

func mapQuoteError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Please correct the highlighted fields", err, http.StatusUnprocessableEntity).
			WithDetails(validationErr.Fields)
	case errors.Is(err, usecase.ErrInvalidFlowSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFlowSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quote session not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidFlowTransition):
		return pkg.NewDomainError("INVALID_FLOW_TRANSITION", "Operation not allowed at this stage", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "A submission for this quote is already in progress", http.StatusConflict)
	case errors.Is(err, entities.ErrRelayRejected):
		return pkg.NewDomainError("RELAY_REJECTED", "The quote request was not accepted, please try again", err, http.StatusBadGateway)
	case errors.Is(err, entities.ErrRelayTransport):
		return pkg.NewDomainError("RELAY_UNAVAILABLE", "The quote request could not be delivered, please try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
