package postgres

import (
	"database/sql"
	"fmt"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/google/uuid"
)

// CompleteOrder finalizes a paid order. Non-ticket orders just get
// the payment transaction id stamped; a second stamp is rejected so
// one payment cannot overwrite another. Ticket orders run the issuer:
// one transaction that re-locks the governing ledger row, drops the
// buyer's own reservations, re-validates availability, creates one
// ticket row per unit with the price re-derived from the locked
// source, applies the relative decrement, and marks the order issued.
// Any failure rolls the whole thing back: no partial tickets, no
// partial decrement.
func (s *Storage) CompleteOrder(orderID int, paymentTxID, userID string) (*models.Order, []models.Ticket, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Locking the order row serializes double completions.
	order, err := scanOrder(tx.QueryRow(orderSelect+` WHERE id = $1 FOR UPDATE`, orderID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, storage.ErrOrderNotFound
		}
		return nil, nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.IsTicket {
		if order.PaymentTransactionID != nil {
			return nil, nil, storage.ErrAlreadyIssued
		}

		err = s.stampPayment(tx, order, paymentTxID)
		if err != nil {
			return nil, nil, err
		}

		if err = tx.Commit(); err != nil {
			return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
		}

		return order, nil, nil
	}

	if order.Issued {
		return nil, nil, storage.ErrAlreadyIssued
	}

	src, err := s.lockSource(tx, order.ContentID, order.TicketTypeID, order.TicketTier)
	if err != nil {
		return nil, nil, err
	}

	// The buyer's own holds are consumed by this sale, so they must
	// stop counting before the availability re-check.
	if err = src.clearReservations(tx, order.UserID); err != nil {
		return nil, nil, err
	}

	available, err := src.available(tx)
	if err != nil {
		return nil, nil, err
	}
	if available != nil && order.Quantity > *available {
		return nil, nil, storage.ErrInsufficientInventory
	}

	// Price is re-derived from the locked source rather than taken
	// from the order, so price edits between checkout and payment
	// land on the issued tickets.
	unitPrice := src.unitPrice()

	insertQuery := `
		INSERT INTO tickets (code, order_id, content_id, ticket_type_id, ticket_tier, user_id, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	tickets := make([]models.Ticket, 0, order.Quantity)
	for i := 0; i < order.Quantity; i++ {
		ticket := models.Ticket{
			Code:         uuid.New(),
			OrderID:      order.ID,
			ContentID:    order.ContentID,
			TicketTypeID: order.TicketTypeID,
			Tier:         order.TicketTier,
			UserID:       userID,
			Price:        unitPrice,
			Status:       models.TicketStatusNew,
		}

		err = tx.QueryRow(insertQuery,
			ticket.Code,
			ticket.OrderID,
			ticket.ContentID,
			ticket.TicketTypeID,
			tierOrNil(ticket.Tier),
			ticket.UserID,
			ticket.Price,
			ticket.Status,
		).Scan(&ticket.ID, &ticket.CreatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create ticket: %w", err)
		}

		tickets = append(tickets, ticket)
	}

	if err = src.decrement(tx, order.Quantity); err != nil {
		return nil, nil, err
	}

	order.Issued = true
	if err = s.stampPayment(tx, order, paymentTxID); err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return order, tickets, nil
}

func (s *Storage) stampPayment(tx *sql.Tx, order *models.Order, paymentTxID string) error {
	query := `
		UPDATE book_orders
		SET payment_transaction_id = $2, issued = $3
		WHERE id = $1`

	if _, err := tx.Exec(query, order.ID, paymentTxID, order.Issued); err != nil {
		return fmt.Errorf("failed to stamp payment: %w", err)
	}

	order.PaymentTransactionID = &paymentTxID

	return nil
}
