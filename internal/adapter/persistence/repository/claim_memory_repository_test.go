package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"claims_processor/internal/domain/entities"
	"claims_processor/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestClaimMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewClaimMemoryRepository()

	c := entities.Claim{
		ClaimNumber:    "CLM-2024-000001",
		DiagnosisCodes: []string{"J45.909"},
		LineItems:      []entities.LineItem{{LineNumber: 1}, {LineNumber: 2}},
	}
	created, err := r.Create(ctx, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 || created.LineItems[1].ID == 0 || created.LineItems[1].ClaimID != 1 {
		t.Fatalf("unexpected ids: %+v", created)
	}

	created.DiagnosisCodes[0] = "mutated"
	got, _ := r.GetByID(ctx, 1)
	if got.DiagnosisCodes[0] != "J45.909" {
		t.Fatalf("expected store to be isolated from callers")
	}

	byNumber, _ := r.GetByNumber(ctx, "CLM-2024-000001")
	if byNumber.ID != 1 {
		t.Fatalf("expected lookup by number, got %+v", byNumber)
	}
	if missing, _ := r.GetByNumber(ctx, "CLM-2024-000002"); missing.ID != 0 {
		t.Fatalf("expected zero claim, got %+v", missing)
	}

	if _, err := r.Create(ctx, c); !errors.Is(err, interfaces.ErrDuplicateClaimNumber) {
		t.Fatalf("expected ErrDuplicateClaimNumber, got %v", err)
	}
}

func TestClaimMemoryRepository_UpdateKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	r := NewClaimMemoryRepository()
	created, _ := r.Create(ctx, entities.Claim{ClaimNumber: "CLM-2024-000001", LineItems: []entities.LineItem{{LineNumber: 1}}})

	approved := decimal.RequireFromString("100")
	change := created
	change.ClaimNumber = "other"
	change.Status = entities.ClaimStatusPaid
	change.ApprovedAmount = &approved
	change.LineItems = nil

	updated, err := r.Update(ctx, change)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ClaimNumber != "CLM-2024-000001" || len(updated.LineItems) != 1 || updated.Status != entities.ClaimStatusPaid {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if missing, _ := r.Update(ctx, entities.Claim{ID: 99}); missing.ID != 0 {
		t.Fatalf("expected zero claim for missing id")
	}
}

func TestClaimMemoryRepository_UpdateLineItem(t *testing.T) {
	ctx := context.Background()
	r := NewClaimMemoryRepository()
	created, _ := r.Create(ctx, entities.Claim{ClaimNumber: "CLM-2024-000001", LineItems: []entities.LineItem{{LineNumber: 1}}})

	li := created.LineItems[0]
	li.Status = entities.ClaimStatusDenied
	li.DenialReason = "duplicate"
	if err := r.UpdateLineItem(ctx, li); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := r.GetByID(ctx, created.ID)
	if got.LineItems[0].Status != entities.ClaimStatusDenied || got.LineItems[0].DenialReason != "duplicate" {
		t.Fatalf("unexpected line item: %+v", got.LineItems[0])
	}
}

func TestClaimMemoryRepository_ListOrdersAndCounts(t *testing.T) {
	ctx := context.Background()
	r := NewClaimMemoryRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		provider := int64(1)
		if i%2 == 0 {
			provider = 2
		}
		_, _ = r.Create(ctx, entities.Claim{
			ClaimNumber: fmt.Sprintf("CLM-2024-%06d", i),
			ProviderID:  provider,
			SubmittedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	page, total, err := r.List(ctx, entities.ClaimFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 || len(page) != 2 || page[0].ID != 4 || page[1].ID != 3 {
		t.Fatalf("unexpected page: total=%d %+v", total, page)
	}

	page, total, _ = r.List(ctx, entities.ClaimFilter{ProviderID: 2})
	if total != 2 || len(page) != 2 || page[0].ID != 4 {
		t.Fatalf("unexpected provider page: total=%d %+v", total, page)
	}

	n, _ := r.CountByNumberPrefix(ctx, "CLM-2024-")
	if n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}
	if n, _ := r.CountByNumberPrefix(ctx, "CLM-2025-"); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestClaimMemoryRepository_NextIsUniqueUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	r := NewClaimMemoryRepository()

	const workers = 50
	seen := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := r.Next(ctx, "CLM-2024")
			seen <- v
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[int64]bool{}
	for v := range seen {
		if unique[v] {
			t.Fatalf("duplicate sequence value %d", v)
		}
		unique[v] = true
	}
	if len(unique) != workers || !unique[1] || !unique[workers] {
		t.Fatalf("expected 1..%d, got %v", workers, unique)
	}

	if v, _ := r.Next(ctx, "CLM-2025"); v != 1 {
		t.Fatalf("expected new bucket to start at 1, got %d", v)
	}
}

func TestReferenceMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewReferenceMemoryRepository()
	r.SeedDemo()

	if ok, _ := r.PatientExists(ctx, 1); !ok {
		t.Fatalf("expected seeded patient")
	}
	if ok, _ := r.ProviderExists(ctx, 3); ok {
		t.Fatalf("expected unknown provider")
	}
	if ok, _ := r.InsurancePlanExists(ctx, 2); !ok {
		t.Fatalf("expected seeded plan")
	}

	p, _ := r.GetProvider(ctx, 2)
	if p == nil || len(p.Specialties) != 2 {
		t.Fatalf("unexpected provider: %+v", p)
	}
	p.Specialties[0] = "mutated"
	again, _ := r.GetProvider(ctx, 2)
	if again.Specialties[0] == "mutated" {
		t.Fatalf("expected isolated specialties")
	}

	if missing, err := r.GetPatient(ctx, 42); missing != nil || err != nil {
		t.Fatalf("expected nil patient, got %+v %v", missing, err)
	}
}

func TestClaimMemoryRepository_ListWhileUpdatingLineItems(t *testing.T) {
	ctx := context.Background()
	r := NewClaimMemoryRepository()
	created, err := r.Create(ctx, entities.Claim{
		ClaimNumber: "CLM-2024-000001",
		LineItems:   []entities.LineItem{{LineNumber: 1}, {LineNumber: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			li := created.LineItems[i%2]
			li.Status = entities.ClaimStatusDenied
			li.DenialReason = fmt.Sprintf("round %d", i)
			if err := r.UpdateLineItem(ctx, li); err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			page, _, err := r.List(ctx, entities.ClaimFilter{})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if len(page) != 1 || len(page[0].LineItems) != 2 {
				t.Errorf("unexpected page: %+v", page)
				return
			}
			page[0].LineItems[0].DenialReason = "mutated by caller"
		}
	}()
	wg.Wait()

	got, _ := r.GetByID(ctx, created.ID)
	for _, li := range got.LineItems {
		if li.DenialReason == "mutated by caller" {
			t.Fatalf("listing leaked stored line items")
		}
	}
}
