package service

import "swiftride/internal/domain"

// allowedTransitions is the booking lifecycle as a directed graph.
// upcoming is the only initial state; completed and cancelled are
// terminal.
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusUpcoming:  {domain.BookingStatusActive, domain.BookingStatusCancelled},
	domain.BookingStatusActive:    {domain.BookingStatusCompleted},
	domain.BookingStatusCompleted: {},
	domain.BookingStatusCancelled: {},
}

// CanTransition reports whether from -> to is an allowed booking
// status transition.
func CanTransition(from, to domain.BookingStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
