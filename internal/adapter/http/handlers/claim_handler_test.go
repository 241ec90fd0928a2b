package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claims_processor/internal/adapter/http/handlers/mocks"
	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Code       string          `json:"code"`
	Claim      json.RawMessage `json:"claim"`
	Claims     []any           `json:"claims"`
	TotalCount int             `json:"total_count"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return env
}

func submittedClaim() entities.Claim {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return entities.Claim{
		ID:              1,
		ClaimNumber:     "CLM-2024-000001",
		PatientID:       1,
		ProviderID:      1,
		InsurancePlanID: 1,
		ClaimType:       entities.ClaimTypeMedical,
		Status:          entities.ClaimStatusSubmitted,
		PriorityLevel:   3,
		TotalAmount:     decimal.RequireFromString("250"),
		ServiceDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

const submitBody = `{"patient_id":1,"provider_id":1,"insurance_plan_id":1,"claim_type":"medical","total_amount":250,"service_date":"2024-01-15"}`

func submitInput() usecase.SubmitClaimInput {
	return usecase.SubmitClaimInput{
		PatientID: 1, ProviderID: 1, InsurancePlanID: 1,
		ClaimType: "medical", TotalAmount: "250", ServiceDate: "2024-01-15",
	}
}

func TestClaimHandler_SubmitClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	validation := []struct {
		name    string
		err     error
		message string
	}{
		{"patient", usecase.ErrPatientNotFound, "Patient not found"},
		{"provider", usecase.ErrProviderNotFound, "Healthcare provider not found"},
		{"plan", usecase.ErrInsurancePlanNotFound, "Insurance plan not found"},
		{"claim type", usecase.ErrInvalidClaimType, "Invalid claim type"},
		{"service date", usecase.ErrInvalidServiceDate, "Invalid service date format"},
		{"future date", usecase.ErrFutureServiceDate, "Service date cannot be in the future"},
		{"total amount", usecase.ErrInvalidTotalAmount, "Invalid total amount format"},
	}
	for _, tc := range validation {
		t.Run("validation "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIClaimUseCase(ctrl)
			h := NewClaimHandler(uc, nil)

			r := gin.New()
			r.POST("/v1/claims", h.SubmitClaim)

			uc.EXPECT().SubmitClaim(gomock.Any(), submitInput()).Return(entities.Claim{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(submitBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			env := decodeEnvelope(t, w)
			if env.Success || env.Message != tc.message {
				t.Fatalf("unexpected envelope: %+v", env)
			}
		})
	}

	t.Run("infrastructure failure hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		uc.EXPECT().SubmitClaim(gomock.Any(), gomock.Any()).Return(entities.Claim{}, errors.New("pq: connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Message != "An error occurred while processing the claim submission" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("connection refused")) {
			t.Fatalf("cause leaked into response: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims", h.SubmitClaim)

		uc.EXPECT().SubmitClaim(gomock.Any(), submitInput()).Return(submittedClaim(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims", bytes.NewBufferString(submitBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if !env.Success || env.Message != "Claim submitted successfully" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		var claim struct {
			ClaimNumber string `json:"claim_number"`
			TotalAmount string `json:"total_amount"`
			Approved    string `json:"approved_amount"`
			ServiceDate string `json:"service_date"`
			Submitted   string `json:"submitted_date"`
			Paid        string `json:"paid_date"`
		}
		if err := json.Unmarshal(env.Claim, &claim); err != nil {
			t.Fatalf("invalid claim: %v", err)
		}
		if claim.ClaimNumber != "CLM-2024-000001" || claim.TotalAmount != "250.00" || claim.Approved != "0.00" {
			t.Fatalf("unexpected claim: %+v", claim)
		}
		if claim.ServiceDate != "2024-01-15" || claim.Submitted != "2024-03-15T12:00:00Z" || claim.Paid != "" {
			t.Fatalf("unexpected dates: %+v", claim)
		}
	})
}

func TestClaimHandler_GetClaim(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims/:id", h.GetClaim)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims/:id", h.GetClaim)

		uc.EXPECT().GetClaim(gomock.Any(), usecase.ClaimLookup{ID: 99}).Return(entities.ClaimDetails{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Message != "Claim not found" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims/:id", h.GetClaim)

		uc.EXPECT().GetClaim(gomock.Any(), usecase.ClaimLookup{ID: 1}).Return(entities.ClaimDetails{}, errors.New("timeout"))

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Message != "An error occurred while retrieving the claim" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	})

	t.Run("by number with summaries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims/number/:claim_number", h.GetClaimByNumber)

		details := entities.ClaimDetails{
			Claim:   submittedClaim(),
			Patient: &entities.PatientSummary{ID: 1, PatientCode: "PAT-000001", FirstName: "Maria"},
		}
		uc.EXPECT().GetClaim(gomock.Any(), usecase.ClaimLookup{Number: "CLM-2024-000001"}).Return(details, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims/number/CLM-2024-000001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var claim struct {
			PatientInfo *struct {
				PatientID string `json:"patient_id"`
			} `json:"patient_info"`
		}
		if err := json.Unmarshal(decodeEnvelope(t, w).Claim, &claim); err != nil {
			t.Fatalf("invalid claim: %v", err)
		}
		if claim.PatientInfo == nil || claim.PatientInfo.PatientID != "PAT-000001" {
			t.Fatalf("expected patient info, got %s", w.Body.String())
		}
	})
}

func TestClaimHandler_UpdateClaimStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/status", h.UpdateClaimStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/status", h.UpdateClaimStatus)

		uc.EXPECT().UpdateClaimStatus(gomock.Any(), usecase.UpdateClaimStatusInput{ClaimID: 1, Status: "closed"}).Return(entities.Claim{}, usecase.ErrInvalidClaimStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/status", bytes.NewBufferString(`{"status":"closed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Message != "Invalid claim status" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	})

	t.Run("transition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/status", h.UpdateClaimStatus)

		uc.EXPECT().UpdateClaimStatus(gomock.Any(), gomock.Any()).Return(entities.Claim{}, usecase.ErrTransitionNotAllowed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/status", bytes.NewBufferString(`{"status":"submitted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/status", h.UpdateClaimStatus)

		processed := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
		adjuster := int64(7)
		denied := submittedClaim()
		denied.Status = entities.ClaimStatusDenied
		denied.DenialReason = "not covered"
		denied.ProcessedAt = &processed
		denied.AssignedAdjusterID = &adjuster

		want := usecase.UpdateClaimStatusInput{ClaimID: 1, Status: "denied", DenialReason: "not covered", AdjusterID: 7}
		uc.EXPECT().UpdateClaimStatus(gomock.Any(), want).Return(denied, nil)

		body := `{"status":"denied","denial_reason":"not covered","assigned_adjuster_id":7}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if !env.Success || env.Message != "Claim status updated successfully" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		if !bytes.Contains(env.Claim, []byte(`"processed_date":"2024-03-16T09:00:00Z"`)) {
			t.Fatalf("expected processed date, got %s", env.Claim)
		}
	})
}

func TestClaimHandler_UpdateLineItemStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid line number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/line-items/:line_number/status", h.UpdateLineItemStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/line-items/0/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("line item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/line-items/:line_number/status", h.UpdateLineItemStatus)

		uc.EXPECT().UpdateLineItemStatus(gomock.Any(), usecase.UpdateLineItemStatusInput{ClaimID: 1, LineNumber: 3, Status: "approved"}).
			Return(entities.LineItem{}, usecase.ErrLineItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/line-items/3/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/claims/:id/line-items/:line_number/status", h.UpdateLineItemStatus)

		li := entities.LineItem{ID: 5, ClaimID: 1, LineNumber: 1, Status: entities.ClaimStatusApproved, TotalAmount: decimal.RequireFromString("80")}
		uc.EXPECT().UpdateLineItemStatus(gomock.Any(), usecase.UpdateLineItemStatusInput{ClaimID: 1, LineNumber: 1, Status: "approved"}).Return(li, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/claims/1/line-items/1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"total_amount":"80.00"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClaimHandler_ListClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes raw filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims", h.ListClaims)

		want := usecase.ListClaimsInput{
			PatientID: 1, Status: "approved", ClaimType: "bogus",
			StartDate: "2024-01-01", EndDate: "not-a-date", Limit: 10, Offset: 0,
		}
		page := usecase.ClaimPage{
			Claims:     []entities.ClaimDetails{{Claim: submittedClaim()}},
			TotalCount: 12,
		}
		uc.EXPECT().ListClaims(gomock.Any(), want).Return(page, nil)

		url := "/v1/claims?patient_id=1&status=approved&claim_type=bogus&start_date=2024-01-01&end_date=not-a-date&limit=10&offset=x"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if !env.Success || env.TotalCount != 12 || len(env.Claims) != 1 {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})

	t.Run("empty listing renders empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims", h.ListClaims)

		uc.EXPECT().ListClaims(gomock.Any(), usecase.ListClaimsInput{}).Return(usecase.ClaimPage{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if !bytes.Contains(w.Body.Bytes(), []byte(`"claims":[]`)) {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/claims", h.ListClaims)

		uc.EXPECT().ListClaims(gomock.Any(), gomock.Any()).Return(usecase.ClaimPage{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Message != "An error occurred while retrieving claims" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	})
}

func TestClaimHandler_GetClaimsByProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/providers/:provider_id/claims", h.GetClaimsByProvider)

		uc.EXPECT().GetClaimsByProvider(gomock.Any(), usecase.ProviderClaimsInput{}).Return(usecase.ClaimPage{}, usecase.ErrInvalidProviderID)

		req := httptest.NewRequest(http.MethodGet, "/v1/providers/abc/claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/providers/:provider_id/claims", h.GetClaimsByProvider)

		uc.EXPECT().GetClaimsByProvider(gomock.Any(), usecase.ProviderClaimsInput{ProviderID: 2, Status: "paid", Limit: 5}).
			Return(usecase.ClaimPage{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/providers/2/claims?status=paid&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Message != "An error occurred while retrieving provider claims" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClaimUseCase(ctrl)
		h := NewClaimHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/providers/:provider_id/claims", h.GetClaimsByProvider)

		page := usecase.ClaimPage{Claims: []entities.ClaimDetails{{Claim: submittedClaim()}, {Claim: submittedClaim()}}, TotalCount: 2}
		uc.EXPECT().GetClaimsByProvider(gomock.Any(), usecase.ProviderClaimsInput{ProviderID: 2}).Return(page, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/providers/2/claims", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.TotalCount != 2 || len(env.Claims) != 2 {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})
}
