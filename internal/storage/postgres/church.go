package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/lib/pq"
)

// codeAllocRetries bounds the max(code)+1 allocation loop. Exhausting
// it means pathological contention on church creation and is fatal.
const codeAllocRetries = 5

// CreateChurch inserts a church with the next free numeric code.
// Each attempt runs in its own transaction: read max(code), insert
// with max+1, and on a uniqueness conflict with a concurrent creator
// retry with a freshly derived value.
func (s *Storage) CreateChurch(church models.Church) (*models.Church, error) {
	var lastErr error

	for attempt := 0; attempt < codeAllocRetries; attempt++ {
		created, err := s.tryCreateChurch(church)
		if err == nil {
			return created, nil
		}

		if !isUniqueViolation(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", storage.ErrCodeRetryExceeded, lastErr)
}

func (s *Storage) tryCreateChurch(church models.Church) (*models.Church, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var nextCode int
	err = tx.QueryRow(`SELECT COALESCE(MAX(code), 0) + 1 FROM churches`).Scan(&nextCode)
	if err != nil {
		return nil, fmt.Errorf("failed to derive next church code: %w", err)
	}

	query := `
		INSERT INTO churches (code, title, description, city, country, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	created := church
	created.Code = nextCode

	err = tx.QueryRow(query,
		created.Code,
		created.Title,
		created.Description,
		created.City,
		created.Country,
		created.OwnerID,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create church: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetChurch(id int) (*models.Church, error) {
	query := `
		SELECT id, code, title, description, city, country, owner_id, created_at
		FROM churches
		WHERE id = $1`

	var church models.Church
	err := s.DB.QueryRow(query, id).Scan(
		&church.ID,
		&church.Code,
		&church.Title,
		&church.Description,
		&church.City,
		&church.Country,
		&church.OwnerID,
		&church.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to get church: %w", err)
	}

	return &church, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
