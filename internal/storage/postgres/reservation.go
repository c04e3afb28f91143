package postgres

import (
	"fmt"
	"time"

	"photizon/internal/models"
	"photizon/internal/storage"
)

// ReserveTickets places a time-boxed hold against the requested pool.
// The availability check and the insert share one transaction and one
// exclusive row lock, so two concurrent holds cannot both observe the
// same free inventory.
func (s *Storage) ReserveTickets(contentID int, p storage.ReservationParams, ttl time.Duration) (*models.TicketReservation, error) {
	content, err := s.GetContent(contentID)
	if err != nil {
		return nil, err
	}
	if !content.IsEvent() {
		return nil, storage.ErrNotAnEvent
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

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

	reservation := models.TicketReservation{
		ContentID:    contentID,
		TicketTypeID: p.TicketTypeID,
		Tier:         p.TicketTier,
		UserID:       p.UserID,
		Quantity:     p.Quantity,
		ExpiresAt:    time.Now().Add(ttl),
	}

	query := `
		INSERT INTO ticket_reservations (content_id, ticket_type_id, ticket_tier, user_id, quantity, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err = tx.QueryRow(query,
		reservation.ContentID,
		reservation.TicketTypeID,
		tierOrNil(reservation.Tier),
		reservation.UserID,
		reservation.Quantity,
		reservation.ExpiresAt,
	).Scan(&reservation.ID, &reservation.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &reservation, nil
}

// DeleteExpiredReservations is housekeeping only: availability math
// already ignores expired rows, this just stops the table growing
// without bound.
func (s *Storage) DeleteExpiredReservations() (int64, error) {
	result, err := s.DB.Exec(`DELETE FROM ticket_reservations WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired reservations: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted reservations: %w", err)
	}

	return deleted, nil
}

func tierOrNil(tier *models.TicketTier) interface{} {
	if tier == nil {
		return nil
	}
	return string(*tier)
}
