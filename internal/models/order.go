package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int          `json:"id"`
	UserID       string       `json:"user_id"`
	ContentID    int          `json:"content_id"`
	DeliveryType DeliveryType `json:"delivery_type"`
	Quantity     int          `json:"quantity"`

	TotalPrice decimal.Decimal `json:"total_price"`

	IsTicket     bool        `json:"is_ticket"`
	TicketTypeID *int        `json:"ticket_type_id,omitempty"`
	TicketTier   *TicketTier `json:"ticket_tier,omitempty"`

	PaymentTransactionID *string `json:"payment_transaction_id,omitempty"`
	Issued               bool    `json:"issued"`

	Shipped     bool       `json:"shipped"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
