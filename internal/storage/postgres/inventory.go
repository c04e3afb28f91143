package postgres

import (
	"database/sql"
	"fmt"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/shopspring/decimal"
)

// inventorySource is a tagged variant over the three capacity pools a
// ticket order can draw from: a TicketType row, a named tier on the
// event, or the event's flat capacity counter. The variant owns the
// row that must be locked for any availability decision, so every
// check-then-write sequence goes through lockSource within one
// transaction.
type sourceKind int

const (
	sourceTicketType sourceKind = iota
	sourceTier
	sourceFlat
)

type inventorySource struct {
	kind       sourceKind
	content    *models.Content
	ticketType *models.TicketType
	tier       models.TicketTier
}

// lockSource acquires an exclusive lock on the row governing the
// requested pool and returns the variant built from the locked state.
// For ticket type orders only the ticket_types row is locked; tier
// and flat orders lock the contents row.
func (s *Storage) lockSource(tx *sql.Tx, contentID int, ticketTypeID *int, tier *models.TicketTier) (*inventorySource, error) {
	if ticketTypeID != nil {
		tt, err := lockTicketType(tx, *ticketTypeID)
		if err != nil {
			return nil, err
		}
		if tt.ContentID != contentID {
			return nil, storage.ErrTicketTypeNotFound
		}

		return &inventorySource{kind: sourceTicketType, ticketType: tt}, nil
	}

	content, err := lockContent(tx, contentID)
	if err != nil {
		return nil, err
	}

	if tier != nil {
		if !tier.Valid() {
			return nil, storage.ErrInvalidTier
		}
		if !content.HasTier(*tier) {
			return nil, storage.ErrInvalidTier
		}

		return &inventorySource{kind: sourceTier, content: content, tier: *tier}, nil
	}

	if content.Tiered() {
		return nil, storage.ErrTierRequired
	}

	return &inventorySource{kind: sourceFlat, content: content}, nil
}

// available recomputes remaining inventory under the lock taken by
// lockSource: pool quantity minus sold minus unexpired reservations.
// A nil result means the pool is unlimited.
func (src *inventorySource) available(tx *sql.Tx) (*int, error) {
	reserved, err := src.reservedSum(tx)
	if err != nil {
		return nil, err
	}

	switch src.kind {
	case sourceTicketType:
		return models.AvailableUnits(src.ticketType.Quantity, src.ticketType.TicketsSold, reserved), nil
	case sourceTier:
		return models.AvailableUnits(src.content.TierQuantity(src.tier), src.content.TierSold(src.tier), reserved), nil
	default:
		return models.AvailableUnits(src.content.Capacity, src.content.TicketsSold, reserved), nil
	}
}

// reservedSum counts unexpired reservations against this pool.
// Expired rows are filtered by timestamp, never deleted here.
func (src *inventorySource) reservedSum(tx *sql.Tx) (int, error) {
	var (
		query string
		args  []interface{}
	)

	switch src.kind {
	case sourceTicketType:
		query = `
			SELECT COALESCE(SUM(quantity), 0)
			FROM ticket_reservations
			WHERE ticket_type_id = $1 AND expires_at > NOW()`
		args = []interface{}{src.ticketType.ID}
	case sourceTier:
		query = `
			SELECT COALESCE(SUM(quantity), 0)
			FROM ticket_reservations
			WHERE content_id = $1 AND ticket_tier = $2 AND expires_at > NOW()`
		args = []interface{}{src.content.ID, string(src.tier)}
	default:
		query = `
			SELECT COALESCE(SUM(quantity), 0)
			FROM ticket_reservations
			WHERE content_id = $1 AND ticket_type_id IS NULL AND ticket_tier IS NULL AND expires_at > NOW()`
		args = []interface{}{src.content.ID}
	}

	var reserved int
	if err := tx.QueryRow(query, args...).Scan(&reserved); err != nil {
		return 0, fmt.Errorf("failed to sum reservations: %w", err)
	}

	return reserved, nil
}

func (src *inventorySource) unitPrice() decimal.Decimal {
	switch src.kind {
	case sourceTicketType:
		return src.ticketType.Price
	case sourceTier:
		tier := src.tier
		return src.content.UnitPrice(nil, &tier)
	default:
		return src.content.UnitPrice(nil, nil)
	}
}

// decrement applies the sale to the ledger with a relative update.
// The tickets_sold <= capacity invariant is enforced in the UPDATE
// predicate itself: zero affected rows means the write would have
// oversold and the caller must abort the transaction.
func (src *inventorySource) decrement(tx *sql.Tx, quantity int) error {
	var (
		query string
		args  []interface{}
	)

	switch src.kind {
	case sourceTicketType:
		query = `
			UPDATE ticket_types
			SET tickets_sold = tickets_sold + $2
			WHERE id = $1
			AND (quantity IS NULL OR tickets_sold + $2 <= quantity)`
		args = []interface{}{src.ticketType.ID, quantity}
	case sourceTier:
		query = fmt.Sprintf(`
			UPDATE contents
			SET tickets_sold = tickets_sold + $2, %[1]s_sold = %[1]s_sold + $2
			WHERE id = $1
			AND (%[1]s_quantity IS NULL OR %[1]s_sold + $2 <= %[1]s_quantity)
			AND (capacity IS NULL OR tickets_sold + $2 <= capacity)`, tierColumn(src.tier))
		args = []interface{}{src.content.ID, quantity}
	default:
		query = `
			UPDATE contents
			SET tickets_sold = tickets_sold + $2
			WHERE id = $1
			AND (capacity IS NULL OR tickets_sold + $2 <= capacity)`
		args = []interface{}{src.content.ID, quantity}
	}

	result, err := tx.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement inventory: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check decrement result: %w", err)
	}
	if affected == 0 {
		return storage.ErrInsufficientInventory
	}

	return nil
}

// clearReservations drops the buyer's own holds against this pool so
// they stop counting against availability once the sale lands.
func (src *inventorySource) clearReservations(tx *sql.Tx, userID string) error {
	var (
		query string
		args  []interface{}
	)

	switch src.kind {
	case sourceTicketType:
		query = `DELETE FROM ticket_reservations WHERE ticket_type_id = $1 AND user_id = $2`
		args = []interface{}{src.ticketType.ID, userID}
	case sourceTier:
		query = `DELETE FROM ticket_reservations WHERE content_id = $1 AND ticket_tier = $2 AND user_id = $3`
		args = []interface{}{src.content.ID, string(src.tier), userID}
	default:
		query = `
			DELETE FROM ticket_reservations
			WHERE content_id = $1 AND ticket_type_id IS NULL AND ticket_tier IS NULL AND user_id = $2`
		args = []interface{}{src.content.ID, userID}
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}

	return nil
}

func tierColumn(tier models.TicketTier) string {
	switch tier {
	case models.TierVIP:
		return "vip"
	case models.TierPremium:
		return "premium"
	default:
		return "classic"
	}
}

func lockTicketType(tx *sql.Tx, id int) (*models.TicketType, error) {
	query := `
		SELECT id, content_id, name, price, quantity, tickets_sold, created_at
		FROM ticket_types
		WHERE id = $1
		FOR UPDATE`

	var tt models.TicketType
	err := tx.QueryRow(query, id).Scan(
		&tt.ID,
		&tt.ContentID,
		&tt.Name,
		&tt.Price,
		&tt.Quantity,
		&tt.TicketsSold,
		&tt.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to lock ticket type: %w", err)
	}

	return &tt, nil
}

func lockContent(tx *sql.Tx, id int) (*models.Content, error) {
	row := tx.QueryRow(contentSelect+` WHERE id = $1 FOR UPDATE`, id)

	content, err := scanContent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to lock content: %w", err)
	}

	return content, nil
}
