package domain

import "time"

// ConditionPhase indicates whether a condition check documents the car
// before or after a trip.
type ConditionPhase string

const (
	ConditionPhaseBefore ConditionPhase = "before"
	ConditionPhaseAfter  ConditionPhase = "after"
)

// PhotoSet holds one photo reference per side of the car.
type PhotoSet struct {
	Front string
	Back  string
	Left  string
	Right string
}

// ConditionRecord is the photographic documentation of a car's state
// for one phase of a booking. A booking needs a complete "before"
// record to start and a complete "after" record to complete.
type ConditionRecord struct {
	BookingID   string
	Phase       ConditionPhase
	Photos      PhotoSet
	CompletedAt time.Time
}

// Complete reports whether all four sides have a photo.
func (r *ConditionRecord) Complete() bool {
	return r.Photos.Front != "" && r.Photos.Back != "" &&
		r.Photos.Left != "" && r.Photos.Right != ""
}
