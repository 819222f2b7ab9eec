package tests

import (
	"context"
	"errors"
	"testing"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 5. CONDITION CHECKS
// ──────────────────────────────────────────────

func fullPhotoSet() domain.PhotoSet {
	return domain.PhotoSet{
		Front: "front.jpg",
		Back:  "back.jpg",
		Left:  "left.jpg",
		Right: "right.jpg",
	}
}

func TestCondition_RecordRequiresAllFourSides(t *testing.T) {
	t.Parallel()

	conditionRepo := NewMockConditionRepository()
	conditionService := service.NewConditionService(conditionRepo)
	ctx := context.Background()

	photos := fullPhotoSet()
	photos.Left = ""

	_, err := conditionService.RecordCondition(ctx, service.RecordConditionRequest{
		BookingID: "booking-1",
		Phase:     domain.ConditionPhaseBefore,
		Photos:    photos,
	})
	if !errors.Is(err, service.ErrIncompletePhotoSet) {
		t.Fatalf("expected ErrIncompletePhotoSet, got %v", err)
	}
	if conditionRepo.CountRecords() != 0 {
		t.Errorf("expected no stored records, got %d", conditionRepo.CountRecords())
	}
}

func TestCondition_RecordRejectsUnknownPhase(t *testing.T) {
	t.Parallel()

	conditionService := service.NewConditionService(NewMockConditionRepository())

	_, err := conditionService.RecordCondition(context.Background(), service.RecordConditionRequest{
		BookingID: "booking-1",
		Phase:     "during",
		Photos:    fullPhotoSet(),
	})
	if !errors.Is(err, service.ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase, got %v", err)
	}
}

func TestCondition_ResubmissionOverwrites(t *testing.T) {
	t.Parallel()

	conditionRepo := NewMockConditionRepository()
	conditionService := service.NewConditionService(conditionRepo)
	ctx := context.Background()

	first := fullPhotoSet()
	if _, err := conditionService.RecordCondition(ctx, service.RecordConditionRequest{
		BookingID: "booking-1",
		Phase:     domain.ConditionPhaseBefore,
		Photos:    first,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := fullPhotoSet()
	second.Front = "front-v2.jpg"
	if _, err := conditionService.RecordCondition(ctx, service.RecordConditionRequest{
		BookingID: "booking-1",
		Phase:     domain.ConditionPhaseBefore,
		Photos:    second,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conditionRepo.CountRecords() != 1 {
		t.Fatalf("expected 1 stored record, got %d", conditionRepo.CountRecords())
	}

	record, err := conditionService.GetCondition(ctx, "booking-1", domain.ConditionPhaseBefore)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Photos.Front != "front-v2.jpg" {
		t.Errorf("expected the resubmitted photo set, got %q", record.Photos.Front)
	}
}

func TestCondition_PhasesAreIndependent(t *testing.T) {
	t.Parallel()

	conditionRepo := NewMockConditionRepository()
	conditionService := service.NewConditionService(conditionRepo)
	ctx := context.Background()

	if _, err := conditionService.RecordCondition(ctx, service.RecordConditionRequest{
		BookingID: "booking-1",
		Phase:     domain.ConditionPhaseBefore,
		Photos:    fullPhotoSet(),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, err := conditionService.IsComplete(ctx, "booking-1", domain.ConditionPhaseBefore)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !before {
		t.Error("expected the before phase to be complete")
	}

	after, err := conditionService.IsComplete(ctx, "booking-1", domain.ConditionPhaseAfter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after {
		t.Error("expected the after phase to be incomplete")
	}
}
