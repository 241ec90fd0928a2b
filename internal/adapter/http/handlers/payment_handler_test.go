package handlers

import (
	"bytes"
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

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid claim id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:id/payment", h.ProcessPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/-1/payment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("claim not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:id/payment", h.ProcessPayment)

		uc.EXPECT().ProcessPayment(gomock.Any(), usecase.ProcessPaymentInput{ClaimID: 9}).Return(entities.Claim{}, usecase.ErrClaimNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/9/payment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:id/payment", h.ProcessPayment)

		uc.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(entities.Claim{}, errors.New("write conflict"))

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/1/payment", bytes.NewBufferString(`{"approved_amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if env := decodeEnvelope(t, w); env.Message != "An error occurred while processing payment" {
			t.Fatalf("unexpected message: %s", env.Message)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/claims/:id/payment", h.ProcessPayment)

		now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		approved := decimal.RequireFromString("200")
		paid := submittedClaim()
		paid.Status = entities.ClaimStatusPaid
		paid.ApprovedAmount = &approved
		paid.ProcessedAt = &now
		paid.PaidAt = &now

		want := usecase.ProcessPaymentInput{ClaimID: 1, ApprovedAmount: "200", PatientResponsibility: "50.00", InsurancePayment: ""}
		uc.EXPECT().ProcessPayment(gomock.Any(), want).Return(paid, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/claims/1/payment", bytes.NewBufferString(`{"approved_amount":200,"patient_responsibility":"50.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if !env.Success || env.Message != "Payment processed successfully" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
		for _, frag := range []string{`"status":"paid"`, `"approved_amount":"200.00"`, `"insurance_payment":"0.00"`, `"paid_date":"2024-03-15T12:00:00Z"`} {
			if !bytes.Contains(env.Claim, []byte(frag)) {
				t.Fatalf("expected %s in %s", frag, env.Claim)
			}
		}
	})
}
