package handlers

import (
	"errors"
	"net/http"

	"claims_processor/internal/usecase"
	"claims_processor/pkg"

	"go.uber.org/zap"
)

// Generic messages returned when a request fails for a reason the caller cannot fix.
const (
	msgSubmitFailed         = "An error occurred while processing the claim submission"
	msgGetFailed            = "An error occurred while retrieving the claim"
	msgStatusUpdateFailed   = "An error occurred while updating the claim status"
	msgLineItemUpdateFailed = "An error occurred while updating the line item status"
	msgListFailed           = "An error occurred while retrieving claims"
	msgProviderListFailed   = "An error occurred while retrieving provider claims"
	msgPaymentFailed        = "An error occurred while processing payment"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidClaimID      = pkg.NewDomainErrorSimple("INVALID_CLAIM_ID", "Invalid claim id", http.StatusBadRequest)
	errInvalidLineNumber   = pkg.NewDomainErrorSimple("INVALID_LINE_NUMBER", "Invalid line number", http.StatusBadRequest)
)

// mapClaimError turns a usecase error into the envelope the caller sees. Anything that is
// not a known domain outcome is reported with the operation's generic message.
func mapClaimError(err error, failureMessage string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Healthcare provider not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsurancePlanNotFound):
		return pkg.NewDomainErrorSimple("INSURANCE_PLAN_NOT_FOUND", "Insurance plan not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClaimType):
		return pkg.NewDomainErrorSimple("INVALID_CLAIM_TYPE", "Invalid claim type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceDate):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_DATE", "Invalid service date format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFutureServiceDate):
		return pkg.NewDomainErrorSimple("FUTURE_SERVICE_DATE", "Service date cannot be in the future", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTotalAmount):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL_AMOUNT", "Invalid total amount format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemProcedureRequired):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Line item procedure code is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineItemDate):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item service date format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClaimStatus):
		return pkg.NewDomainErrorSimple("INVALID_CLAIM_STATUS", "Invalid claim status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Claim status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProviderID):
		return pkg.NewDomainErrorSimple("INVALID_PROVIDER_ID", "Invalid provider id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", failureMessage, err, http.StatusInternalServerError)
	}
}

// logAppError records the cause of internal failures; the response only carries the message.
func logAppError(log *zap.Logger, op string, appErr *pkg.AppError) {
	if appErr.HTTPStatus < http.StatusInternalServerError {
		log.Debug(op+" rejected", zap.String("code", appErr.Code))
		return
	}
	log.Error(op+" failed", zap.String("code", appErr.Code), zap.Error(appErr.Err))
}
