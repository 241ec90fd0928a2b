package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "claims_processor/internal/adapter/http/dto/request"
	response "claims_processor/internal/adapter/http/dto/response"
	"claims_processor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimHandler handles HTTP requests for claim submission, review and queries.
type ClaimHandler struct {
	usecase usecase.IClaimUseCase
	log     *zap.Logger
}

func NewClaimHandler(uc usecase.IClaimUseCase, log *zap.Logger) *ClaimHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClaimHandler{usecase: uc, log: log}
}

// SubmitClaim godoc
// @Summary      Submit a claim
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        claim  body      request.SubmitClaimRequest  true  "Claim submission"
// @Success      201    {object}  response.ClaimEnvelope
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /claims [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var payload request.SubmitClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.SubmitClaim(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapClaimError(err, msgSubmitFailed)
		logAppError(h.log, "SubmitClaim", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromClaim(claim)
	c.JSON(http.StatusCreated, response.ClaimEnvelope{Success: true, Message: "Claim submitted successfully", Claim: &res})
}

// GetClaim godoc
// @Summary      Get a claim by id
// @Tags         claims
// @Produce      json
// @Param        id   path      int  true  "Claim id"
// @Success      200  {object}  response.ClaimEnvelope
// @Failure      404  {object}  pkg.HTTPError
// @Router       /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, ok := claimIDParam(c)
	if !ok {
		return
	}
	h.getClaim(c, usecase.ClaimLookup{ID: id})
}

// GetClaimByNumber godoc
// @Summary      Get a claim by claim number
// @Tags         claims
// @Produce      json
// @Param        claim_number  path      string  true  "Claim number, e.g. CLM-2024-000001"
// @Success      200           {object}  response.ClaimEnvelope
// @Failure      404           {object}  pkg.HTTPError
// @Router       /claims/number/{claim_number} [get]
func (h *ClaimHandler) GetClaimByNumber(c *gin.Context) {
	h.getClaim(c, usecase.ClaimLookup{Number: c.Param("claim_number")})
}

func (h *ClaimHandler) getClaim(c *gin.Context, lookup usecase.ClaimLookup) {
	details, err := h.usecase.GetClaim(c.Request.Context(), lookup)
	if err != nil {
		appErr := mapClaimError(err, msgGetFailed)
		logAppError(h.log, "GetClaim", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromClaimDetails(details)
	c.JSON(http.StatusOK, response.ClaimEnvelope{Success: true, Message: "Claim retrieved successfully", Claim: &res})
}

// UpdateClaimStatus godoc
// @Summary      Change a claim's status
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id      path      int                                true  "Claim id"
// @Param        status  body      request.UpdateClaimStatusRequest  true  "New status"
// @Success      200     {object}  response.ClaimEnvelope
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /claims/{id}/status [patch]
func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	id, ok := claimIDParam(c)
	if !ok {
		return
	}

	var payload request.UpdateClaimStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.UpdateClaimStatus(c.Request.Context(), payload.ToInput(id))
	if err != nil {
		appErr := mapClaimError(err, msgStatusUpdateFailed)
		logAppError(h.log, "UpdateClaimStatus", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromClaim(claim)
	c.JSON(http.StatusOK, response.ClaimEnvelope{Success: true, Message: "Claim status updated successfully", Claim: &res})
}

// UpdateLineItemStatus godoc
// @Summary      Change one line item's status
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id           path      int                                   true  "Claim id"
// @Param        line_number  path      int                                   true  "Line number"
// @Param        status       body      request.UpdateLineItemStatusRequest  true  "New status"
// @Success      200          {object}  response.LineItemEnvelope
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /claims/{id}/line-items/{line_number}/status [patch]
func (h *ClaimHandler) UpdateLineItemStatus(c *gin.Context) {
	id, ok := claimIDParam(c)
	if !ok {
		return
	}
	lineNumber, err := strconv.Atoi(c.Param("line_number"))
	if err != nil || lineNumber <= 0 {
		c.JSON(errInvalidLineNumber.HTTPStatus, errInvalidLineNumber.ToHTTPError())
		return
	}

	var payload request.UpdateLineItemStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	li, err := h.usecase.UpdateLineItemStatus(c.Request.Context(), payload.ToInput(id, lineNumber))
	if err != nil {
		appErr := mapClaimError(err, msgLineItemUpdateFailed)
		logAppError(h.log, "UpdateLineItemStatus", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromLineItem(li)
	c.JSON(http.StatusOK, response.LineItemEnvelope{Success: true, Message: "Line item status updated successfully", LineItem: &res})
}

// ListClaims reads its filters from the query string. Values that do not parse are ignored.
//
// @Summary      List claims
// @Tags         claims
// @Produce      json
// @Param        patient_id  query     int     false  "Patient id"
// @Param        status      query     string  false  "Status filter"
// @Param        claim_type  query     string  false  "Claim type filter"
// @Param        start_date  query     string  false  "Earliest service date (YYYY-MM-DD)"
// @Param        end_date    query     string  false  "Latest service date (YYYY-MM-DD)"
// @Param        limit       query     int     false  "Page size (default 10)"
// @Param        offset      query     int     false  "Offset"
// @Success      200         {object}  response.ClaimListEnvelope
// @Router       /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	in := usecase.ListClaimsInput{
		PatientID: queryInt64(c, "patient_id"),
		Status:    c.Query("status"),
		ClaimType: c.Query("claim_type"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     queryInt(c, "limit"),
		Offset:    queryInt(c, "offset"),
	}

	page, err := h.usecase.ListClaims(c.Request.Context(), in)
	if err != nil {
		appErr := mapClaimError(err, msgListFailed)
		logAppError(h.log, "ListClaims", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, listEnvelope(page))
}

// GetClaimsByProvider godoc
// @Summary      List a provider's claims
// @Tags         providers
// @Produce      json
// @Param        provider_id  path      int     true   "Provider id"
// @Param        status       query     string  false  "Status filter"
// @Param        limit        query     int     false  "Page size (default 10)"
// @Param        offset       query     int     false  "Offset"
// @Success      200          {object}  response.ClaimListEnvelope
// @Failure      400          {object}  pkg.HTTPError
// @Router       /providers/{provider_id}/claims [get]
func (h *ClaimHandler) GetClaimsByProvider(c *gin.Context) {
	in := usecase.ProviderClaimsInput{
		ProviderID: paramInt64(c, "provider_id"),
		Status:     c.Query("status"),
		Limit:      queryInt(c, "limit"),
		Offset:     queryInt(c, "offset"),
	}

	page, err := h.usecase.GetClaimsByProvider(c.Request.Context(), in)
	if err != nil {
		appErr := mapClaimError(err, msgProviderListFailed)
		logAppError(h.log, "GetClaimsByProvider", appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, listEnvelope(page))
}

func listEnvelope(page usecase.ClaimPage) response.ClaimListEnvelope {
	return response.ClaimListEnvelope{
		Success:    true,
		Message:    "Claims retrieved successfully",
		Claims:     response.FromClaimDetailsList(page.Claims),
		TotalCount: page.TotalCount,
	}
}

// claimIDParam writes the 400 response itself when the path id is not a positive integer.
func claimIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidClaimID.HTTPStatus, errInvalidClaimID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

func queryInt64(c *gin.Context, key string) int64 {
	return parseInt64(c.Query(key))
}

func paramInt64(c *gin.Context, key string) int64 {
	return parseInt64(c.Param(key))
}

func parseInt64(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
