package tests

import (
	"testing"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 1. PRICING
// ──────────────────────────────────────────────

func TestPricing_DayAndHourSplit(t *testing.T) {
	t.Parallel()

	car := &domain.Car{
		PricePerHour: 500,
		PricePerDay:  3000,
	}

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Hour)

	quote := service.ComputeQuote(car, start, end)

	if quote.Hours != 25 {
		t.Errorf("expected 25 billable hours, got %d", quote.Hours)
	}
	if quote.Days != 1 || quote.ExtraHours != 1 {
		t.Errorf("expected 1 day + 1 hour, got %d days + %d hours", quote.Days, quote.ExtraHours)
	}
	if quote.Subtotal != 3500 {
		t.Errorf("expected subtotal 3500, got %v", quote.Subtotal)
	}
	if quote.ServiceFee != 175 {
		t.Errorf("expected service fee 175, got %v", quote.ServiceFee)
	}
	if quote.Insurance != 105 {
		t.Errorf("expected insurance 105, got %v", quote.Insurance)
	}
	if quote.Total != 3780 {
		t.Errorf("expected total 3780, got %v", quote.Total)
	}
}

func TestPricing_PartialHourRoundsUp(t *testing.T) {
	t.Parallel()

	car := &domain.Car{
		PricePerHour: 500,
		PricePerDay:  3000,
	}

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	quote := service.ComputeQuote(car, start, end)

	if quote.Hours != 2 {
		t.Errorf("expected 90 minutes to bill as 2 hours, got %d", quote.Hours)
	}
	if quote.Subtotal != 1000 {
		t.Errorf("expected subtotal 1000, got %v", quote.Subtotal)
	}
}

func TestPricing_FeesRoundHalfUp(t *testing.T) {
	t.Parallel()

	// 1 hour at 250: service fee 12.5 -> 13, insurance 7.5 -> 8.
	car := &domain.Car{
		PricePerHour: 250,
		PricePerDay:  2000,
	}

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	quote := service.ComputeQuote(car, start, end)

	if quote.ServiceFee != 13 {
		t.Errorf("expected service fee 13, got %v", quote.ServiceFee)
	}
	if quote.Insurance != 8 {
		t.Errorf("expected insurance 8, got %v", quote.Insurance)
	}
	if quote.Total != 271 {
		t.Errorf("expected total 271, got %v", quote.Total)
	}
}

func TestPricing_ExactDayUsesDayRateOnly(t *testing.T) {
	t.Parallel()

	car := &domain.Car{
		PricePerHour: 500,
		PricePerDay:  3000,
	}

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	quote := service.ComputeQuote(car, start, end)

	if quote.Days != 2 || quote.ExtraHours != 0 {
		t.Errorf("expected 2 days + 0 hours, got %d days + %d hours", quote.Days, quote.ExtraHours)
	}
	if quote.Subtotal != 6000 {
		t.Errorf("expected subtotal 6000, got %v", quote.Subtotal)
	}
}
