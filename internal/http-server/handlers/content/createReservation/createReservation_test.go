package createReservation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photizon/internal/http-server/handlers/content/createReservation"
	"photizon/internal/http-server/handlers/content/createReservation/mocks"
	"photizon/internal/lib/logger/handlers/slogdiscard"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationHandler(t *testing.T) {
	const ttl = 15 * time.Minute

	vip := models.TierVIP

	cases := []struct {
		name       string
		contentID  string
		body       string
		mockResult *models.TicketReservation
		mockError  error
		respCode   int
		respError  string
	}{
		{
			name:      "Success",
			contentID: "10",
			body:      `{"user_id": "user-1", "quantity": 2, "ticket_tier": "VIP"}`,
			mockResult: &models.TicketReservation{
				ID:        7,
				ContentID: 10,
				UserID:    "user-1",
				Quantity:  2,
				Tier:      &vip,
				ExpiresAt: time.Now().Add(ttl),
			},
			respCode: http.StatusCreated,
		},
		{
			name:      "Missing user id",
			contentID: "10",
			body:      `{"quantity": 2}`,
			respCode:  http.StatusBadRequest,
			respError: "field UserID is a required field",
		},
		{
			name:      "Zero quantity",
			contentID: "10",
			body:      `{"user_id": "user-1", "quantity": 0}`,
			respCode:  http.StatusBadRequest,
			respError: "field Quantity is a required field",
		},
		{
			name:      "Invalid tier",
			contentID: "10",
			body:      `{"user_id": "user-1", "quantity": 1, "ticket_tier": "GOLD"}`,
			respCode:  http.StatusBadRequest,
			respError: "field TicketTier is not one of the allowed values",
		},
		{
			name:      "Sold out",
			contentID: "10",
			body:      `{"user_id": "user-1", "quantity": 5, "ticket_tier": "VIP"}`,
			mockError: storage.ErrInsufficientInventory,
			respCode:  http.StatusBadRequest,
			respError: "Not enough tickets available for the selected tier",
		},
		{
			name:      "Tier required",
			contentID: "10",
			body:      `{"user_id": "user-1", "quantity": 1}`,
			mockError: storage.ErrTierRequired,
			respCode:  http.StatusBadRequest,
			respError: "ticket tier is required for this event",
		},
		{
			name:      "Content not found",
			contentID: "99",
			body:      `{"user_id": "user-1", "quantity": 1}`,
			mockError: storage.ErrContentNotFound,
			respCode:  http.StatusNotFound,
			respError: "content not found",
		},
		{
			name:      "Not an event",
			contentID: "10",
			body:      `{"user_id": "user-1", "quantity": 1}`,
			mockError: storage.ErrNotAnEvent,
			respCode:  http.StatusBadRequest,
			respError: "tickets can only be reserved for events",
		},
		{
			name:      "Invalid content id",
			contentID: "abc",
			body:      `{"user_id": "user-1", "quantity": 1}`,
			respCode:  http.StatusBadRequest,
			respError: "invalid content id format",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reserverMock := mocks.NewTicketReserver(t)

			if tc.mockResult != nil || tc.mockError != nil {
				reserverMock.On("ReserveTickets",
					mock.AnythingOfType("int"),
					mock.AnythingOfType("storage.ReservationParams"),
					ttl,
				).Return(tc.mockResult, tc.mockError).Once()
			}

			handler := createReservation.New(slogdiscard.NewDiscardLogger(), reserverMock, ttl)

			router := chi.NewRouter()
			router.Post("/contents/{id}/reservations", handler)

			req, err := http.NewRequest(http.MethodPost,
				"/contents/"+tc.contentID+"/reservations",
				bytes.NewReader([]byte(tc.body)),
			)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.respCode, rr.Code)

			var resp createReservation.ReservationResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)

			if tc.mockResult != nil {
				require.NotNil(t, resp.Reservation)
				assert.Equal(t, tc.mockResult.ID, resp.Reservation.ID)
				assert.Equal(t, tc.mockResult.Quantity, resp.Reservation.Quantity)
			}
		})
	}
}
