package storage

import (
	"errors"

	"photizon/internal/models"
)

var (
	ErrChurchNotFound     = errors.New("church not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrOrderNotFound      = errors.New("order not found")

	// ErrInsufficientInventory is returned whenever a requested
	// quantity exceeds the remaining availability of the selected
	// capacity pool, at order creation or at issue time.
	ErrInsufficientInventory = errors.New("not enough tickets available")

	ErrInvalidTier       = errors.New("invalid ticket tier")
	ErrTierRequired      = errors.New("ticket tier is required for this event")
	ErrCapacityExceeded  = errors.New("tier quantities exceed event capacity")
	ErrNotAnEvent        = errors.New("tickets can only be purchased for events")
	ErrDuplicateName     = errors.New("ticket type name already exists for this event")
	ErrAlreadyIssued     = errors.New("tickets already issued for this order")
	ErrNotTicketOrder    = errors.New("order is not a ticket order")
	ErrOwnChurch         = errors.New("church owners cannot order from their own church")
	ErrCodeRetryExceeded = errors.New("church code allocation retries exhausted")
)

// OrderParams carries everything a buyer submits at checkout.
type OrderParams struct {
	UserID       string
	DeliveryType models.DeliveryType
	Quantity     int
	IsTicket     bool
	TicketTypeID *int
	TicketTier   *models.TicketTier
}

// ReservationParams describes a short-lived hold request against a
// ticket type, a tier, or the flat event capacity.
type ReservationParams struct {
	UserID       string
	Quantity     int
	TicketTypeID *int
	TicketTier   *models.TicketTier
}
