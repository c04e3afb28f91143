package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/shopspring/decimal"
)

const orderSelect = `
	SELECT id, user_id, content_id, delivery_type, quantity, total_price,
	       is_ticket, ticket_type_id, ticket_tier,
	       payment_transaction_id, issued, shipped, delivered_at, created_at
	FROM book_orders`

func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order

	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.ContentID,
		&o.DeliveryType,
		&o.Quantity,
		&o.TotalPrice,
		&o.IsTicket,
		&o.TicketTypeID,
		&o.TicketTier,
		&o.PaymentTransactionID,
		&o.Issued,
		&o.Shipped,
		&o.DeliveredAt,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// CreateOrder validates availability under the ledger row lock,
// freezes the total price, and persists the order. Inventory counters
// are untouched here: the sale only lands when the order completes,
// so a pending order holds no inventory beyond any reservation the
// buyer created separately.
func (s *Storage) CreateOrder(contentID int, p storage.OrderParams) (*models.Order, error) {
	content, err := s.GetContent(contentID)
	if err != nil {
		return nil, err
	}

	owner, err := s.churchOwner(content.ChurchID)
	if err != nil {
		return nil, err
	}
	if owner != "" && owner == p.UserID {
		return nil, storage.ErrOwnChurch
	}

	isTicket := p.IsTicket
	if content.IsEvent() {
		isTicket = true
	}
	if isTicket && !content.IsEvent() {
		return nil, storage.ErrNotAnEvent
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var unitPrice decimal.Decimal
	if isTicket {
		src, err := s.lockSource(tx, contentID, p.TicketTypeID, p.TicketTier)
		if err != nil {
			return nil, err
		}

		available, err := src.available(tx)
		if err != nil {
			return nil, err
		}
		if available != nil && p.Quantity > *available {
			return nil, storage.ErrInsufficientInventory
		}

		unitPrice = src.unitPrice()
	} else {
		unitPrice = content.UnitPrice(nil, nil)
	}

	order := models.Order{
		UserID:       p.UserID,
		ContentID:    contentID,
		DeliveryType: p.DeliveryType,
		Quantity:     p.Quantity,
		TotalPrice:   unitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))),
		IsTicket:     isTicket,
		TicketTypeID: p.TicketTypeID,
		TicketTier:   p.TicketTier,
	}

	// Digital goods need no shipping step.
	if order.DeliveryType == models.DeliveryDigital {
		order.Shipped = true
		now := time.Now()
		order.DeliveredAt = &now
	}

	query := `
		INSERT INTO book_orders (user_id, content_id, delivery_type, quantity, total_price,
		                         is_ticket, ticket_type_id, ticket_tier, shipped, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err = tx.QueryRow(query,
		order.UserID,
		order.ContentID,
		order.DeliveryType,
		order.Quantity,
		order.TotalPrice,
		order.IsTicket,
		order.TicketTypeID,
		tierOrNil(order.TicketTier),
		order.Shipped,
		order.DeliveredAt,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &order, nil
}

func (s *Storage) GetOrder(id int) (*models.Order, error) {
	order, err := scanOrder(s.DB.QueryRow(orderSelect+` WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Storage) churchOwner(churchID int) (string, error) {
	var owner string
	err := s.DB.QueryRow(`SELECT owner_id FROM churches WHERE id = $1`, churchID).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get church owner: %w", err)
	}

	return owner, nil
}
