package postgres

import (
	"fmt"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/shopspring/decimal"
)

func (s *Storage) CreateTicketType(contentID int, name string, price decimal.Decimal, quantity *int) (int, error) {
	content, err := s.GetContent(contentID)
	if err != nil {
		return 0, err
	}
	if !content.IsEvent() {
		return 0, storage.ErrNotAnEvent
	}

	query := `
		INSERT INTO ticket_types (content_id, name, price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err = s.DB.QueryRow(query, contentID, name, price, quantity).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrDuplicateName
		}
		return 0, fmt.Errorf("failed to create ticket type: %w", err)
	}

	return id, nil
}

// GetTicketTypes lists an event's ticket types with computed
// availability: quantity minus sold minus unexpired reservations.
func (s *Storage) GetTicketTypes(contentID int) ([]models.TicketType, error) {
	if _, err := s.GetContent(contentID); err != nil {
		return nil, err
	}

	query := `
		SELECT tt.id, tt.content_id, tt.name, tt.price, tt.quantity, tt.tickets_sold, tt.created_at,
		       COALESCE((SELECT SUM(r.quantity)
		                 FROM ticket_reservations r
		                 WHERE r.ticket_type_id = tt.id AND r.expires_at > NOW()), 0)
		FROM ticket_types tt
		WHERE tt.content_id = $1
		ORDER BY tt.id`

	rows, err := s.DB.Query(query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket types: %w", err)
	}
	defer rows.Close()

	var types []models.TicketType
	for rows.Next() {
		var (
			tt       models.TicketType
			reserved int
		)

		err = rows.Scan(
			&tt.ID,
			&tt.ContentID,
			&tt.Name,
			&tt.Price,
			&tt.Quantity,
			&tt.TicketsSold,
			&tt.CreatedAt,
			&reserved,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket type: %w", err)
		}

		tt.Available = models.AvailableUnits(tt.Quantity, tt.TicketsSold, reserved)

		types = append(types, tt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket types: %w", err)
	}

	return types, nil
}
