package postgres

import (
	"database/sql"
	"fmt"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/shopspring/decimal"
)

const contentSelect = `
	SELECT id, church_id, type, title, description, delivery_type,
	       is_paid, price, currency, start_at, end_at, location,
	       capacity, tickets_sold,
	       classic_price, classic_quantity, classic_sold,
	       vip_price, vip_quantity, vip_sold,
	       premium_price, premium_quantity, premium_sold,
	       published, created_at
	FROM contents`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContent(row rowScanner) (*models.Content, error) {
	var c models.Content

	err := row.Scan(
		&c.ID,
		&c.ChurchID,
		&c.Type,
		&c.Title,
		&c.Description,
		&c.DeliveryType,
		&c.IsPaid,
		&c.Price,
		&c.Currency,
		&c.StartAt,
		&c.EndAt,
		&c.Location,
		&c.Capacity,
		&c.TicketsSold,
		&c.ClassicPrice,
		&c.ClassicQuantity,
		&c.ClassicSold,
		&c.VIPPrice,
		&c.VIPQuantity,
		&c.VIPSold,
		&c.PremiumPrice,
		&c.PremiumQuantity,
		&c.PremiumSold,
		&c.Published,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Storage) CreateContent(content models.Content) (int, error) {
	if content.IsEvent() && !content.TierQuantitiesFitCapacity() {
		return 0, storage.ErrCapacityExceeded
	}

	query := `
		INSERT INTO contents (church_id, type, title, description, delivery_type,
		                      is_paid, price, currency, start_at, end_at, location,
		                      capacity,
		                      classic_price, classic_quantity,
		                      vip_price, vip_quantity,
		                      premium_price, premium_quantity,
		                      published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		content.ChurchID,
		content.Type,
		content.Title,
		content.Description,
		content.DeliveryType,
		content.IsPaid,
		decimalOrNil(content.Price),
		content.Currency,
		content.StartAt,
		content.EndAt,
		content.Location,
		content.Capacity,
		decimalOrNil(content.ClassicPrice),
		content.ClassicQuantity,
		decimalOrNil(content.VIPPrice),
		content.VIPQuantity,
		decimalOrNil(content.PremiumPrice),
		content.PremiumQuantity,
		content.Published,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create content: %w", err)
	}

	return id, nil
}

// GetContent loads one content row and, for events, fills the
// computed availability net of unexpired reservations. Reads here are
// advisory; the authoritative check happens under the row lock at
// order and issue time.
func (s *Storage) GetContent(id int) (*models.Content, error) {
	row := s.DB.QueryRow(contentSelect+` WHERE id = $1`, id)

	content, err := scanContent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	if content.IsEvent() {
		if err = s.fillAvailability(content); err != nil {
			return nil, err
		}
	}

	return content, nil
}

func (s *Storage) GetAllContents() ([]models.Content, error) {
	rows, err := s.DB.Query(contentSelect + ` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get contents: %w", err)
	}
	defer rows.Close()

	var contents []models.Content
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}

		if content.IsEvent() {
			if err = s.fillAvailability(content); err != nil {
				return nil, err
			}
		}

		contents = append(contents, *content)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contents: %w", err)
	}

	return contents, nil
}

func (s *Storage) fillAvailability(content *models.Content) error {
	var reserved int
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM ticket_reservations
		WHERE content_id = $1 AND ticket_type_id IS NULL AND ticket_tier IS NULL AND expires_at > NOW()`

	if err := s.DB.QueryRow(query, content.ID).Scan(&reserved); err != nil {
		return fmt.Errorf("failed to sum reservations: %w", err)
	}

	content.AvailableTickets = models.AvailableUnits(content.Capacity, content.TicketsSold, reserved)

	if !content.Tiered() {
		return nil
	}

	reservedByTier, err := s.tierReservations(content.ID)
	if err != nil {
		return err
	}

	if content.ClassicPrice != nil {
		content.ClassicAvailable = models.AvailableUnits(content.ClassicQuantity, content.ClassicSold, reservedByTier[models.TierClassic])
	}
	if content.VIPPrice != nil {
		content.VIPAvailable = models.AvailableUnits(content.VIPQuantity, content.VIPSold, reservedByTier[models.TierVIP])
	}
	if content.PremiumPrice != nil {
		content.PremiumAvailable = models.AvailableUnits(content.PremiumQuantity, content.PremiumSold, reservedByTier[models.TierPremium])
	}

	return nil
}

func (s *Storage) tierReservations(contentID int) (map[models.TicketTier]int, error) {
	query := `
		SELECT ticket_tier, COALESCE(SUM(quantity), 0)
		FROM ticket_reservations
		WHERE content_id = $1 AND ticket_tier IS NOT NULL AND expires_at > NOW()
		GROUP BY ticket_tier`

	rows, err := s.DB.Query(query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum tier reservations: %w", err)
	}
	defer rows.Close()

	reserved := make(map[models.TicketTier]int)
	for rows.Next() {
		var (
			tier  models.TicketTier
			count int
		)
		if err = rows.Scan(&tier, &count); err != nil {
			return nil, fmt.Errorf("failed to scan tier reservations: %w", err)
		}
		reserved[tier] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tier reservations: %w", err)
	}

	return reserved, nil
}

func decimalOrNil(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}
