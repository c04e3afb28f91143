package postgres

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestStorage connects to the database named by TEST_DB, applies
// the schema and truncates every table. Tests sharing the database
// must not run in parallel.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("TEST_DB")
	if dsn == "" {
		t.Skip("TEST_DB is not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../../migrations/0001_init.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	_, err = db.Exec(`TRUNCATE tickets, book_orders, ticket_reservations, ticket_types, contents, churches RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return &Storage{DB: db}
}

func mustChurch(t *testing.T, s *Storage, owner string) *models.Church {
	t.Helper()

	church, err := s.CreateChurch(models.Church{
		Title:   "Grace Chapel",
		City:    "Douala",
		Country: "Cameroon",
		OwnerID: owner,
	})
	require.NoError(t, err)

	return church
}

func mustEvent(t *testing.T, s *Storage, churchID int, capacity *int) int {
	t.Helper()

	id, err := s.CreateContent(models.Content{
		ChurchID:     churchID,
		Type:         models.ContentTypeEvent,
		Title:        "Annual Conference",
		DeliveryType: models.DeliveryDigital,
		IsPaid:       true,
		Price:        decPtr("25.00"),
		Currency:     "XAF",
		Capacity:     capacity,
		Published:    true,
	})
	require.NoError(t, err)

	return id
}

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateChurchConcurrentCodesDistinct(t *testing.T) {
	s := newTestStorage(t)

	const n = 5

	var wg sync.WaitGroup
	churches := make([]*models.Church, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			churches[i], errs[i] = s.CreateChurch(models.Church{
				Title:   fmt.Sprintf("Church %d", i),
				OwnerID: fmt.Sprintf("owner-%d", i),
			})
		}(i)
	}
	wg.Wait()

	codes := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.False(t, codes[churches[i].Code], "code %d allocated twice", churches[i].Code)
		codes[churches[i].Code] = true
	}
}

func TestCompleteOrderConcurrentNoOversale(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")
	contentID := mustEvent(t, s, church.ID, intPtr(10))

	const buyers = 10

	var wg sync.WaitGroup
	errs := make([]error, buyers)

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			buyer := fmt.Sprintf("buyer-%d", i)
			order, err := s.CreateOrder(contentID, storage.OrderParams{
				UserID:       buyer,
				DeliveryType: models.DeliveryDigital,
				Quantity:     2,
				IsTicket:     true,
			})
			if err != nil {
				errs[i] = err
				return
			}

			_, _, errs[i] = s.CompleteOrder(order.ID, fmt.Sprintf("tx-%d", i), buyer)
		}(i)
	}
	wg.Wait()

	issued := 0
	for _, err := range errs {
		if err == nil {
			issued++
			continue
		}
		require.ErrorIs(t, err, storage.ErrInsufficientInventory)
	}
	require.Equal(t, 5, issued)

	content, err := s.GetContent(contentID)
	require.NoError(t, err)
	require.Equal(t, 10, content.TicketsSold)
	require.NotNil(t, content.AvailableTickets)
	require.Equal(t, 0, *content.AvailableTickets)

	var ticketCount int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM tickets`).Scan(&ticketCount))
	require.Equal(t, 10, ticketCount)
}

func TestCompleteOrderTwiceRejected(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")
	contentID := mustEvent(t, s, church.ID, intPtr(10))

	order, err := s.CreateOrder(contentID, storage.OrderParams{
		UserID:       "buyer-1",
		DeliveryType: models.DeliveryDigital,
		Quantity:     2,
		IsTicket:     true,
	})
	require.NoError(t, err)

	completed, tickets, err := s.CompleteOrder(order.ID, "tx-1", "buyer-1")
	require.NoError(t, err)
	require.True(t, completed.Issued)
	require.Len(t, tickets, 2)

	_, _, err = s.CompleteOrder(order.ID, "tx-2", "buyer-1")
	require.ErrorIs(t, err, storage.ErrAlreadyIssued)

	// The failed second attempt must leave nothing behind.
	var ticketCount int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM tickets WHERE order_id = $1`, order.ID).Scan(&ticketCount))
	require.Equal(t, 2, ticketCount)

	stored, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentTransactionID)
	require.Equal(t, "tx-1", *stored.PaymentTransactionID)

	content, err := s.GetContent(contentID)
	require.NoError(t, err)
	require.Equal(t, 2, content.TicketsSold)
}

func TestCompleteNonTicketOrderTwiceRejected(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")

	contentID, err := s.CreateContent(models.Content{
		ChurchID:     church.ID,
		Type:         models.ContentTypeBook,
		Title:        "Daily Devotional",
		DeliveryType: models.DeliveryDigital,
		IsPaid:       true,
		Price:        decPtr("12.50"),
		Currency:     "XAF",
		Published:    true,
	})
	require.NoError(t, err)

	order, err := s.CreateOrder(contentID, storage.OrderParams{
		UserID:       "buyer-1",
		DeliveryType: models.DeliveryDigital,
		Quantity:     1,
	})
	require.NoError(t, err)

	completed, tickets, err := s.CompleteOrder(order.ID, "tx-1", "buyer-1")
	require.NoError(t, err)
	require.Empty(t, tickets)
	require.NotNil(t, completed.PaymentTransactionID)

	_, _, err = s.CompleteOrder(order.ID, "tx-2", "buyer-1")
	require.ErrorIs(t, err, storage.ErrAlreadyIssued)

	stored, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentTransactionID)
	require.Equal(t, "tx-1", *stored.PaymentTransactionID)
}

func TestDecrementRejectsOversale(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")
	contentID := mustEvent(t, s, church.ID, intPtr(3))

	tx, err := s.DB.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	src, err := s.lockSource(tx, contentID, nil, nil)
	require.NoError(t, err)

	require.ErrorIs(t, src.decrement(tx, 5), storage.ErrInsufficientInventory)

	require.NoError(t, src.decrement(tx, 3))
	require.ErrorIs(t, src.decrement(tx, 1), storage.ErrInsufficientInventory)
}

func TestReservationHoldsInventory(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")
	contentID := mustEvent(t, s, church.ID, intPtr(10))

	_, err := s.ReserveTickets(contentID, storage.ReservationParams{
		UserID:   "holder-1",
		Quantity: 8,
	}, 15*time.Minute)
	require.NoError(t, err)

	_, err = s.CreateOrder(contentID, storage.OrderParams{
		UserID:       "buyer-1",
		DeliveryType: models.DeliveryDigital,
		Quantity:     3,
		IsTicket:     true,
	})
	require.ErrorIs(t, err, storage.ErrInsufficientInventory)

	order, err := s.CreateOrder(contentID, storage.OrderParams{
		UserID:       "buyer-1",
		DeliveryType: models.DeliveryDigital,
		Quantity:     2,
		IsTicket:     true,
	})
	require.NoError(t, err)

	_, tickets, err := s.CompleteOrder(order.ID, "tx-1", "buyer-1")
	require.NoError(t, err)
	require.Len(t, tickets, 2)
}

func TestExpiredReservationReleasesInventory(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")
	contentID := mustEvent(t, s, church.ID, intPtr(10))

	_, err := s.ReserveTickets(contentID, storage.ReservationParams{
		UserID:   "holder-1",
		Quantity: 10,
	}, -time.Minute)
	require.NoError(t, err)

	content, err := s.GetContent(contentID)
	require.NoError(t, err)
	require.NotNil(t, content.AvailableTickets)
	require.Equal(t, 10, *content.AvailableTickets)

	order, err := s.CreateOrder(contentID, storage.OrderParams{
		UserID:       "buyer-1",
		DeliveryType: models.DeliveryDigital,
		Quantity:     10,
		IsTicket:     true,
	})
	require.NoError(t, err)

	_, tickets, err := s.CompleteOrder(order.ID, "tx-1", "buyer-1")
	require.NoError(t, err)
	require.Len(t, tickets, 10)

	deleted, err := s.DeleteExpiredReservations()
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)
}

func TestGetContentFillsTierAvailability(t *testing.T) {
	s := newTestStorage(t)

	church := mustChurch(t, s, "owner-1")

	contentID, err := s.CreateContent(models.Content{
		ChurchID:        church.ID,
		Type:            models.ContentTypeEvent,
		Title:           "Annual Conference",
		DeliveryType:    models.DeliveryDigital,
		IsPaid:          true,
		Currency:        "XAF",
		Capacity:        intPtr(10),
		ClassicPrice:    decPtr("10.00"),
		ClassicQuantity: intPtr(4),
		VIPPrice:        decPtr("25.00"),
		VIPQuantity:     intPtr(6),
		Published:       true,
	})
	require.NoError(t, err)

	vip := models.TierVIP
	_, err = s.ReserveTickets(contentID, storage.ReservationParams{
		UserID:     "holder-1",
		Quantity:   2,
		TicketTier: &vip,
	}, 15*time.Minute)
	require.NoError(t, err)

	content, err := s.GetContent(contentID)
	require.NoError(t, err)

	require.NotNil(t, content.ClassicAvailable)
	require.Equal(t, 4, *content.ClassicAvailable)
	require.NotNil(t, content.VIPAvailable)
	require.Equal(t, 4, *content.VIPAvailable)
	require.Nil(t, content.PremiumAvailable)

	order, err := s.CreateOrder(contentID, storage.OrderParams{
		UserID:       "buyer-1",
		DeliveryType: models.DeliveryDigital,
		Quantity:     2,
		IsTicket:     true,
		TicketTier:   &vip,
	})
	require.NoError(t, err)
	require.True(t, order.TotalPrice.Equal(decimal.RequireFromString("50.00")))

	_, _, err = s.CompleteOrder(order.ID, "tx-1", "buyer-1")
	require.NoError(t, err)

	content, err = s.GetContent(contentID)
	require.NoError(t, err)
	require.Equal(t, 2, content.VIPSold)
	require.NotNil(t, content.VIPAvailable)
	require.Equal(t, 2, *content.VIPAvailable)
}
