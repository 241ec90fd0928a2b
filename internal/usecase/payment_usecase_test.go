package usecase

import (
	"context"
	"errors"
	"testing"

	"claims_processor/internal/domain/entities"
	mock_interfaces "claims_processor/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPaymentUseCase_ProcessPayment(t *testing.T) {
	ctx := context.Background()

	newUC := func(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIClaimRepository, *mock_interfaces.MockIEventEmitter) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		events := mock_interfaces.NewMockIEventEmitter(ctrl)
		return NewPaymentUseCase(repo, events, zap.NewNop(), WithClock(fixedClock)), repo, events
	}

	t.Run("claim not found", func(t *testing.T) {
		uc, repo, _ := newUC(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Claim{}, nil)

		_, err := uc.ProcessPayment(ctx, ProcessPaymentInput{ClaimID: 9})
		if !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("non-positive id", func(t *testing.T) {
		uc, _, _ := newUC(t)
		if _, err := uc.ProcessPayment(ctx, ProcessPaymentInput{}); !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("pays from submitted and skips bad amounts", func(t *testing.T) {
		uc, repo, events := newUC(t)
		prior := decimal.RequireFromString("5.00")
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Claim{
			ID:               1,
			PatientID:        3,
			Status:           entities.ClaimStatusSubmitted,
			InsurancePayment: &prior,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim) (entities.Claim, error) {
				return c, nil
			},
		)
		events.EXPECT().Emit(gomock.Any(), entities.ClaimEvent{
			EventType: entities.EventClaimPaymentProcessed,
			ClaimID:   1,
			PatientID: 3,
			Timestamp: fixedClock(),
		}).Return(nil)

		got, err := uc.ProcessPayment(ctx, ProcessPaymentInput{
			ClaimID:               1,
			ApprovedAmount:        "200.00",
			PatientResponsibility: "50",
			InsurancePayment:      "n/a",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ClaimStatusPaid || got.ProcessedAt == nil || got.PaidAt == nil {
			t.Fatalf("unexpected claim: %+v", got)
		}
		if entities.FormatOptionalAmount(got.ApprovedAmount) != "200.00" || entities.FormatOptionalAmount(got.PatientResponsibility) != "50.00" {
			t.Fatalf("unexpected amounts: %v %v", got.ApprovedAmount, got.PatientResponsibility)
		}
		if entities.FormatOptionalAmount(got.InsurancePayment) != "5.00" {
			t.Fatalf("expected prior insurance payment kept, got %v", got.InsurancePayment)
		}
	})

	t.Run("update error", func(t *testing.T) {
		uc, repo, _ := newUC(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Claim{ID: 1}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Claim{}, errors.New("db"))

		_, err := uc.ProcessPayment(ctx, ProcessPaymentInput{ClaimID: 1})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("event failure swallowed", func(t *testing.T) {
		uc, repo, events := newUC(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Claim{ID: 1, Status: entities.ClaimStatusDenied}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Claim) (entities.Claim, error) { return c, nil },
		)
		events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("broker"))

		got, err := uc.ProcessPayment(ctx, ProcessPaymentInput{ClaimID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ClaimStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})
}
