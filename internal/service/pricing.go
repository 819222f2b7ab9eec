package service

import (
	"math"
	"time"

	"swiftride/internal/domain"
)

const (
	serviceFeeRate = 0.05
	insuranceRate  = 0.03
)

// Quote is the price breakdown for a booking interval.
type Quote struct {
	Hours      int
	Days       int
	ExtraHours int
	Subtotal   float64
	ServiceFee float64
	Insurance  float64
	Total      float64
}

// ComputeQuote prices a rental interval against a car's rates.
// Billable hours are rounded up to the next whole hour, split into full
// days billed at the day rate and a remainder billed hourly. The 5%
// service fee and 3% insurance are each rounded half-up; the subtotal
// is not rounded.
func ComputeQuote(car *domain.Car, start, end time.Time) Quote {
	hours := int(math.Ceil(end.Sub(start).Hours()))
	days := hours / 24
	extra := hours % 24

	subtotal := float64(days)*car.PricePerDay + float64(extra)*car.PricePerHour
	serviceFee := roundHalfUp(subtotal * serviceFeeRate)
	insurance := roundHalfUp(subtotal * insuranceRate)

	return Quote{
		Hours:      hours,
		Days:       days,
		ExtraHours: extra,
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Insurance:  insurance,
		Total:      subtotal + serviceFee + insurance,
	}
}

// roundHalfUp rounds to the nearest integer with ties going up.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
