package handlers

import (
	"net/http"

	request "claims_processor/internal/adapter/http/dto/request"
	response "claims_processor/internal/adapter/http/dto/response"
	"claims_processor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler posts settlements against claims.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, log: log}
}

// ProcessPayment marks the claim paid. Amounts that do not parse are left unchanged on the claim.
//
// @Summary      Process a claim payment
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id       path      int                             true  "Claim id"
// @Param        payment  body      request.ProcessPaymentRequest  true  "Settlement amounts"
// @Success      200      {object}  response.ClaimEnvelope
// @Failure      404      {object}  pkg.HTTPError
// @Router       /claims/{id}/payment [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	id, ok := claimIDParam(c)
	if !ok {
		return
	}

	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.ProcessPayment(c.Request.Context(), payload.ToInput(id))
	if err != nil {
		appErr := mapClaimError(err, msgPaymentFailed)
		logAppError(h.log, "ProcessPayment", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromClaim(claim)
	c.JSON(http.StatusOK, response.ClaimEnvelope{Success: true, Message: "Payment processed successfully", Claim: &res})
}
