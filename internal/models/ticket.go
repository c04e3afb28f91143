package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketType struct {
	ID          int             `json:"id"`
	ContentID   int             `json:"content_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int            `json:"quantity,omitempty"`
	TicketsSold int             `json:"tickets_sold"`

	// Filled by read paths, never stored.
	Available *int `json:"available,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type TicketReservation struct {
	ID           int         `json:"id"`
	ContentID    int         `json:"content_id"`
	TicketTypeID *int        `json:"ticket_type_id,omitempty"`
	Tier         *TicketTier `json:"ticket_tier,omitempty"`
	UserID       string      `json:"user_id"`
	Quantity     int         `json:"quantity"`
	ExpiresAt    time.Time   `json:"expires_at"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (r *TicketReservation) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

type TicketStatus string

const (
	TicketStatusNew       TicketStatus = "NEW"
	TicketStatusUsed      TicketStatus = "USED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

type Ticket struct {
	ID           int             `json:"id"`
	Code         uuid.UUID       `json:"code"`
	OrderID      int             `json:"order_id"`
	ContentID    int             `json:"content_id"`
	TicketTypeID *int            `json:"ticket_type_id,omitempty"`
	Tier         *TicketTier     `json:"ticket_tier,omitempty"`
	UserID       string          `json:"user_id"`
	Price        decimal.Decimal `json:"price"`
	Status       TicketStatus    `json:"status"`
	Seat         *string         `json:"seat,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
