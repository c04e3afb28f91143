package completeOrder

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"photizon/internal/lib/api/response"
	"photizon/internal/lib/logger/sl"
	"photizon/internal/models"
	"photizon/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type CompleteRequest struct {
	UserID               string `json:"user_id" validate:"required"`
	PaymentTransactionID string `json:"payment_transaction_id" validate:"required"`
}

type CompleteResponse struct {
	response.Response
	Order   *models.Order   `json:"order"`
	Tickets []models.Ticket `json:"tickets,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderCompleter
type OrderCompleter interface {
	CompleteOrder(orderID int, paymentTxID, userID string) (*models.Order, []models.Ticket, error)
}

func New(log *slog.Logger, orders OrderCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.completeOrder.New"

		log = log.With(slog.String("op", op))

		orderIdStr := chi.URLParam(r, "id")
		if orderIdStr == "" {
			log.Error("order id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("order id is required"))
			return
		}

		orderID, err := strconv.Atoi(orderIdStr)
		if err != nil {
			log.Error("invalid order id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid order id format"))
			return
		}

		log = log.With(slog.Int("order_id", orderID))

		var req CompleteRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		order, tickets, err := orders.CompleteOrder(orderID, req.PaymentTransactionID, req.UserID)
		if err != nil {
			log.Error("failed to complete order", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrOrderNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("order not found"))
			case errors.Is(err, storage.ErrInsufficientInventory):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Not enough tickets available for the selected tier"))
			case errors.Is(err, storage.ErrAlreadyIssued):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("tickets already issued for this order"))
			case errors.Is(err, storage.ErrContentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("content not found"))
			case errors.Is(err, storage.ErrTicketTypeNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket type not found"))
			case errors.Is(err, storage.ErrTierRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket tier is required for this event"))
			case errors.Is(err, storage.ErrInvalidTier):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid ticket tier"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to complete order"))
			}
			return
		}

		log.Info("order completed",
			slog.Int("tickets_issued", len(tickets)),
			slog.String("payment_transaction_id", req.PaymentTransactionID),
		)

		responseOK(w, r, order, tickets)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, order *models.Order, tickets []models.Ticket) {
	render.JSON(w, r, CompleteResponse{
		Response: response.OK(),
		Order:    order,
		Tickets:  tickets,
	})
}
