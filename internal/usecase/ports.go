package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"

	"riad-booking/internal/domain/booking"
)

// Ports implemented by infra/bookingapi. The booking API is the authority
// for rooms, prices, availability and reservations.

type RoomCatalog interface {
	ListRooms(ctx context.Context) (booking.Catalog, error)
}

type PricingService interface {
	Quote(ctx context.Context, criteria booking.Criteria) (booking.PriceQuote, error)
}

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, criteria booking.Criteria) (bool, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, draft booking.ReservationDraft) (string, error)
}
