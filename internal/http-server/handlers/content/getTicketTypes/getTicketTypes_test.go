package getTicketTypes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"photizon/internal/http-server/handlers/content/getTicketTypes/mocks"
	"photizon/internal/lib/logger/handlers/slogdiscard"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestGetTicketTypesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success with availability", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewTicketTypesGetter(t)
		mockGetter.On("GetTicketTypes", 1).Return([]models.TicketType{
			{ID: 1, ContentID: 1, Name: "Standard", Price: decimal.RequireFromString("10.00"), Quantity: intPtr(5), Available: intPtr(2)},
		}, nil)

		router := chi.NewRouter()
		router.Get("/contents/{id}/ticket-types", New(logger, mockGetter))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/contents/1/ticket-types", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"available":2`)
	})

	t.Run("Content not found", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewTicketTypesGetter(t)
		mockGetter.On("GetTicketTypes", 99).Return(nil, storage.ErrContentNotFound)

		router := chi.NewRouter()
		router.Get("/contents/{id}/ticket-types", New(logger, mockGetter))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/contents/99/ticket-types", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
